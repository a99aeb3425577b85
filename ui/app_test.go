package ui

import (
	"testing"

	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/activity"
	"github.com/jmnolasco/pasedelista/core/attendance"
	"github.com/jmnolasco/pasedelista/core/group"
	"github.com/jmnolasco/pasedelista/core/session"
	"github.com/jmnolasco/pasedelista/core/student"
	"github.com/jmnolasco/pasedelista/core/user"
	"github.com/jmnolasco/pasedelista/storage/kvmem"
	"github.com/jmnolasco/pasedelista/storage/statedb"
)

type testLogger struct{}

func (testLogger) Debug(format string, args ...interface{}) {}
func (testLogger) Info(format string, args ...interface{})  {}
func (testLogger) Warn(format string, args ...interface{})  {}
func (testLogger) Error(format string, args ...interface{}) {}
func (testLogger) Fatal(format string, args ...interface{}) {}

type fixture struct {
	kv   *kvmem.Store
	sess *session.Store
	svc  Services
}

func setup(t *testing.T) *fixture {
	t.Helper()

	kv := kvmem.Open()
	db, err := statedb.Open(kv, testLogger{})
	if err != nil {
		t.Fatalf("setup: statedb.Open() error = %v", err)
	}
	return &fixture{
		kv:   kv,
		sess: session.NewStore(kvmem.Open()),
		svc: Services{
			Users:      user.NewService(statedb.NewUserRepository(db)),
			Groups:     group.NewService(statedb.NewGroupRepository(db)),
			Students:   student.NewService(statedb.NewStudentRepository(db)),
			Attendance: attendance.NewService(statedb.NewAttendanceRepository(db)),
			Activity:   activity.NewService(statedb.NewActivityRepository(db)),
		},
	}
}

func (f *fixture) login(t *testing.T, usr user.User) *App {
	t.Helper()
	if err := f.sess.Set(usr); err != nil {
		t.Fatalf("login: session.Set() error = %v", err)
	}
	app, err := NewApp(f.kv, f.sess, f.svc, testLogger{})
	if err != nil {
		t.Fatalf("login: NewApp() error = %v", err)
	}
	return app
}

func (f *fixture) createUser(t *testing.T, usr user.User) user.User {
	t.Helper()
	created, err := f.svc.Users.Register(user.NewUser{
		FullName: usr.FullName, Email: usr.Email,
		Password: usr.Password, PasswordConfirm: usr.Password,
	})
	if err != nil {
		t.Fatalf("createUser: Register() error = %v", err)
	}
	if usr.Role != "" && usr.Role != user.RolePersonal {
		if created, err = f.svc.Users.ChangeRole(created.ID, usr.Role); err != nil {
			t.Fatalf("createUser: ChangeRole() error = %v", err)
		}
	}
	return created
}

func (f *fixture) createGroup(t *testing.T, name string) group.Group {
	t.Helper()
	grp, err := f.svc.Groups.Create(group.NewGroup{Name: name})
	if err != nil {
		t.Fatalf("createGroup: Create() error = %v", err)
	}
	return grp
}

func (f *fixture) createStudent(t *testing.T, matricula, nombre string, groupID int) student.Student {
	t.Helper()
	st, err := f.svc.Students.Create(student.NewStudent{Matricula: matricula, Nombre: nombre, GroupID: groupID})
	if err != nil {
		t.Fatalf("createStudent: Create() error = %v", err)
	}
	return st
}

var (
	adminUser   = user.User{ID: 1, FullName: "Admin", Email: "admin@test.test", Role: user.RoleAdministrador}
	personalPat = user.User{FullName: "Pat", Email: "pat@test.test", Password: "Xyz!784#ab", Role: user.RolePersonal}
)

func maestroWith(groups ...int) user.User {
	return user.User{ID: 2, FullName: "Luis", Email: "luis@test.test", Role: user.RoleMaestro, AssignedGroups: groups}
}

func TestNewApp_failsClosed(t *testing.T) {
	f := setup(t)

	if _, err := NewApp(f.kv, f.sess, f.svc, testLogger{}); err != ErrNotAuthenticated {
		t.Errorf("NewApp() error = %v, want ErrNotAuthenticated", err)
	}

	// a cleared session reads the same as one that never existed
	if err := f.sess.Set(adminUser); err != nil {
		t.Fatal(err)
	}
	if err := f.sess.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, err := NewApp(f.kv, f.sess, f.svc, testLogger{}); err != ErrNotAuthenticated {
		t.Errorf("NewApp() after Clear() error = %v, want ErrNotAuthenticated", err)
	}
}

func TestApp_Logout(t *testing.T) {
	f := setup(t)
	app := f.login(t, adminUser)

	if err := app.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, ok := f.sess.Get(); ok {
		t.Error("session must be empty after Logout()")
	}
}

func TestApp_HardReset(t *testing.T) {
	f := setup(t)
	f.createGroup(t, "3A")
	app := f.login(t, adminUser)

	if err := app.HardReset(); err != nil {
		t.Fatalf("HardReset() error = %v", err)
	}
	if _, err := f.kv.Get("groups"); err != core.ErrKeyNotFound {
		t.Errorf("Get(groups) after HardReset() error = %v, want ErrKeyNotFound", err)
	}
	if _, ok := f.sess.Get(); ok {
		t.Error("session must be empty after HardReset()")
	}
}

func TestApp_SwitchTo_unknownView(t *testing.T) {
	f := setup(t)
	app := f.login(t, adminUser)

	if _, err := app.SwitchTo(View("nope")); err != ErrUnknownView {
		t.Errorf("SwitchTo() error = %v, want ErrUnknownView", err)
	}
}
