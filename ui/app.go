// Package ui is the rendering-agnostic view layer: each view is a function
// from domain state + identity + local view state to a view model, and every
// mutation enters through the intent dispatch table. Front-ends only draw
// view models and emit intents.
package ui

import (
	"errors"

	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/activity"
	"github.com/jmnolasco/pasedelista/core/attendance"
	"github.com/jmnolasco/pasedelista/core/group"
	"github.com/jmnolasco/pasedelista/core/session"
	"github.com/jmnolasco/pasedelista/core/student"
	"github.com/jmnolasco/pasedelista/core/user"
)

var ErrNotAuthenticated = errors.New("no authenticated identity")

// Services bundles the domain services the views depend on.
type Services struct {
	Users      *user.Service
	Groups     *group.Service
	Students   *student.Service
	Attendance *attendance.Service
	Activity   *activity.Service
}

type App struct {
	log     core.Logger
	kv      core.Store // persistent store; only touched directly by HardReset
	session *session.Store
	svc     Services

	identity user.User
	current  View

	// local view state, reset when a view is (re)entered
	homeGroupID       int
	alumnosGroupID    int
	asistenciaGroupID int
	asistenciaDate    string
}

// NewApp is the authentication gate: it fails closed when the session store
// holds no identity, and nothing renders.
func NewApp(kv core.Store, sess *session.Store, svc Services, logger core.Logger) (*App, error) {
	usr, ok := sess.Get()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return &App{
		log:      logger,
		kv:       kv,
		session:  sess,
		svc:      svc,
		identity: usr,
		current:  ViewHome,
	}, nil
}

func (app *App) Identity() user.User { return app.identity }

func (app *App) Logout() error {
	return app.session.Clear()
}

// HardReset wipes both stores. Irreversible; the front-end asks for
// confirmation, nothing here does.
func (app *App) HardReset() error {
	if err := app.kv.Clear(); err != nil {
		return err
	}
	return app.session.Clear()
}

// logActivity records an audit line; failures are logged, never surfaced,
// so a full store can not block the mutation that triggered the entry.
func (app *App) logActivity(description string) {
	if err := app.svc.Activity.Log(app.identity, description); err != nil {
		app.log.Error("ui: logging activity: %v", err)
	}
}

// scopedGroups returns the selector options for the current identity:
// a Maestro only sees their assigned groups, everyone else sees all.
func (app *App) scopedGroups() ([]group.Group, error) {
	groups, err := app.svc.Groups.QueryAll()
	if err != nil {
		return nil, err
	}
	if app.identity.IsMaestro() {
		return group.Filter(groups, app.identity.AssignedGroups), nil
	}
	return groups, nil
}

func groupInScope(groups []group.Group, id int) bool {
	for _, grp := range groups {
		if grp.ID == id {
			return true
		}
	}
	return false
}

// defaultGroupID picks the initial selection: a Maestro starts on the first
// of their assigned groups that still exists, everyone else on the first
// group in the collection.
func (app *App) defaultGroupID(groups []group.Group) int {
	if app.identity.IsMaestro() {
		for _, id := range app.identity.AssignedGroups {
			if groupInScope(groups, id) {
				return id
			}
		}
		return 0
	}
	if len(groups) == 0 {
		return 0
	}
	return groups[0].ID
}
