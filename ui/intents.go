package ui

import (
	"fmt"

	"github.com/jmnolasco/pasedelista/core/group"
	"github.com/jmnolasco/pasedelista/core/student"
)

// Discrete UI intents. The dispatch table maps each one to a mutation
// handler; front-ends never call the handlers directly.
const (
	IntentGroupCreate     = "group/create"
	IntentGroupRename     = "group/rename"
	IntentGroupDelete     = "group/delete"
	IntentStudentCreate   = "student/create"
	IntentStudentUpdate   = "student/update"
	IntentStudentDelete   = "student/delete"
	IntentMarkStatus      = "attendance/status"
	IntentEditObservation = "attendance/observations"
	IntentUserRole        = "user/role"
	IntentUserAssign      = "user/assign-groups"
	IntentUserDelete      = "user/delete"
	IntentProfileRename   = "profile/rename"
)

type Intent struct {
	Name    string
	Payload interface{}
}

// Intent payloads.
type (
	RenameGroup struct {
		ID   int
		Name string
	}
	DeleteGroup struct{ ID int }

	EditStudent struct {
		ID int
		student.UpdateStudent
	}
	DeleteStudent struct{ ID int }

	MarkStatus struct {
		StudentID int
		Status    string
	}
	EditObservations struct {
		StudentID    int
		Observations string
	}

	ChangeUserRole struct {
		UserID int
		Role   string
	}
	AssignUserGroups struct {
		UserID   int
		GroupIDs []int
	}
	DeleteUser struct{ UserID int }

	RenameProfile struct{ FullName string }
)

// Dispatch validates, mutates, persists, and re-renders the active view.
func (app *App) Dispatch(intent Intent) (ViewData, error) {
	handler, ok := app.dispatchTable()[intent.Name]
	if !ok {
		return nil, fmt.Errorf("unknown intent %q", intent.Name)
	}
	if err := handler(intent.Payload); err != nil {
		return nil, err
	}
	return app.Rerender()
}

func (app *App) dispatchTable() map[string]func(interface{}) error {
	return map[string]func(interface{}) error{
		IntentGroupCreate: func(p interface{}) error {
			ng, ok := p.(group.NewGroup)
			if !ok {
				return badPayload(IntentGroupCreate)
			}
			return app.createGroup(ng)
		},
		IntentGroupRename: func(p interface{}) error {
			rg, ok := p.(RenameGroup)
			if !ok {
				return badPayload(IntentGroupRename)
			}
			return app.renameGroup(rg)
		},
		IntentGroupDelete: func(p interface{}) error {
			dg, ok := p.(DeleteGroup)
			if !ok {
				return badPayload(IntentGroupDelete)
			}
			return app.deleteGroup(dg.ID)
		},
		IntentStudentCreate: func(p interface{}) error {
			ns, ok := p.(student.NewStudent)
			if !ok {
				return badPayload(IntentStudentCreate)
			}
			return app.createStudent(ns)
		},
		IntentStudentUpdate: func(p interface{}) error {
			es, ok := p.(EditStudent)
			if !ok {
				return badPayload(IntentStudentUpdate)
			}
			return app.updateStudent(es)
		},
		IntentStudentDelete: func(p interface{}) error {
			ds, ok := p.(DeleteStudent)
			if !ok {
				return badPayload(IntentStudentDelete)
			}
			return app.deleteStudent(ds.ID)
		},
		IntentMarkStatus: func(p interface{}) error {
			ms, ok := p.(MarkStatus)
			if !ok {
				return badPayload(IntentMarkStatus)
			}
			return app.markStatus(ms)
		},
		IntentEditObservation: func(p interface{}) error {
			eo, ok := p.(EditObservations)
			if !ok {
				return badPayload(IntentEditObservation)
			}
			return app.editObservations(eo)
		},
		IntentUserRole: func(p interface{}) error {
			cr, ok := p.(ChangeUserRole)
			if !ok {
				return badPayload(IntentUserRole)
			}
			return app.changeUserRole(cr)
		},
		IntentUserAssign: func(p interface{}) error {
			ag, ok := p.(AssignUserGroups)
			if !ok {
				return badPayload(IntentUserAssign)
			}
			return app.assignUserGroups(ag)
		},
		IntentUserDelete: func(p interface{}) error {
			du, ok := p.(DeleteUser)
			if !ok {
				return badPayload(IntentUserDelete)
			}
			return app.deleteUser(du.UserID)
		},
		IntentProfileRename: func(p interface{}) error {
			rp, ok := p.(RenameProfile)
			if !ok {
				return badPayload(IntentProfileRename)
			}
			return app.renameProfile(rp.FullName)
		},
	}
}

func badPayload(intent string) error {
	return fmt.Errorf("invalid payload for intent %q", intent)
}
