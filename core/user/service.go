package user

import (
	"errors"

	"github.com/jmnolasco/pasedelista/core"
)

var (
	// errors
	ErrNotFound             = errors.New("user not found")
	ErrEmailExists          = errors.New("a user with this email already exists")
	ErrAuthenticationFailed = errors.New("incorrect email or password")
	ErrNotMaestro           = errors.New("user is not a maestro")
)

type (
	Repository interface {
		CheckEmailUniqueness(email string, excludedUsers ...User) error
		CreateUser(usr User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByID(id int) (User, error)
		GetUserByEmail(email string) (User, error)
		UpdateUser(usr User) (User, error)
		DeleteUser(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CheckEmailUniqueness(email string, exclUsers ...User) error {
	if err := svc.repo.CheckEmailUniqueness(email, exclUsers...); err != nil {
		if err == ErrEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

// Register creates a new account with the default Personal role and a
// time-based id.
func (svc *Service) Register(nu NewUser) (User, error) {
	usr := User{
		ID:       core.EpochMillisID(),
		FullName: nu.FullName,
		Email:    nu.Email,
		Password: nu.Password,
		Role:     RolePersonal,
	}
	return svc.repo.CreateUser(usr)
}

// Authenticate matches email and password exactly, case-sensitively.
func (svc *Service) Authenticate(email, password string) (User, error) {
	usr, err := svc.repo.GetUserByEmail(email)
	if err != nil {
		if err == ErrNotFound {
			return User{}, ErrAuthenticationFailed
		}
		return User{}, err
	}
	if usr.Password != password {
		return User{}, ErrAuthenticationFailed
	}
	return usr, nil
}

// EnsureDefaultAdmin seeds the configured Administrador account when the
// users collection is empty.
func (svc *Service) EnsureDefaultAdmin() error {
	users, err := svc.repo.QueryAllUsers()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}
	admin := User{
		ID:       1,
		FullName: core.Conf.GetString("defaultAdminName"),
		Email:    core.Conf.GetString("defaultAdminEmail"),
		Password: core.Conf.GetString("defaultAdminPassword"),
		Role:     RoleAdministrador,
	}
	_, err = svc.repo.CreateUser(admin)
	return err
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByID(id int) (User, error) {
	return svc.repo.GetUserByID(id)
}

// ChangeRole toggles a non-Administrador account between Personal and
// Maestro. Leaving Maestro clears the group assignments.
func (svc *Service) ChangeRole(id int, role string) (User, error) {
	if role != RoleMaestro && role != RolePersonal {
		err := errors.New("invalid role")
		return User{}, core.NewValidationError(err, core.FieldError{Field: "role", Error: err.Error()})
	}
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}
	if usr.IsAdministrador() {
		return User{}, core.ErrPermissionDenied
	}
	usr.Role = role
	if role != RoleMaestro {
		usr.AssignedGroups = []int{}
	}
	return svc.repo.UpdateUser(usr)
}

// AssignGroups replaces a Maestro's group assignments wholesale.
func (svc *Service) AssignGroups(id int, groupIDs []int) (User, error) {
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}
	if !usr.IsMaestro() {
		return User{}, ErrNotMaestro
	}
	if groupIDs == nil {
		groupIDs = []int{}
	}
	usr.AssignedGroups = groupIDs
	return svc.repo.UpdateUser(usr)
}

// Rename updates an account's display name.
func (svc *Service) Rename(id int, fullName string) (User, error) {
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}
	usr.FullName = fullName
	return svc.repo.UpdateUser(usr)
}

// Delete removes an account. The acting identity's own account and
// Administrador accounts cannot be deleted.
func (svc *Service) Delete(id, actorID int) error {
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return err
	}
	if usr.ID == actorID || usr.IsAdministrador() {
		return core.ErrPermissionDenied
	}
	return svc.repo.DeleteUser(id)
}
