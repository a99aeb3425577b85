package ui

import (
	"fmt"

	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/group"
	"github.com/jmnolasco/pasedelista/core/student"
)

// AlumnosData is the roster view for one selected group.
type AlumnosData struct {
	Groups        []group.Group
	SelectedGroup int
	Students      []student.Student // ascending by matricula

	// role-gated capabilities, for the front-end to show/hide controls
	CanManageGroups bool
	CanEditStudents bool
}

func (app *App) enterAlumnos() error {
	groups, err := app.scopedGroups()
	if err != nil {
		return err
	}
	app.alumnosGroupID = app.defaultGroupID(groups)
	return nil
}

func (app *App) Alumnos() (AlumnosData, error) {
	groups, err := app.scopedGroups()
	if err != nil {
		return AlumnosData{}, err
	}
	data := AlumnosData{
		Groups:          groups,
		SelectedGroup:   app.alumnosGroupID,
		CanManageGroups: app.identity.IsAdministrador(),
		CanEditStudents: !app.identity.IsMaestro(),
	}
	if app.alumnosGroupID == 0 {
		return data, nil
	}
	if data.Students, err = app.svc.Students.ListByGroup(app.alumnosGroupID); err != nil {
		return AlumnosData{}, err
	}
	return data, nil
}

func (app *App) SelectAlumnosGroup(groupID int) (AlumnosData, error) {
	groups, err := app.scopedGroups()
	if err != nil {
		return AlumnosData{}, err
	}
	if !groupInScope(groups, groupID) {
		return AlumnosData{}, core.ErrPermissionDenied
	}
	app.alumnosGroupID = groupID
	return app.Alumnos()
}

// SuggestMatricula proposes the next matricula for the selected group; the
// user may still edit it before submitting.
func (app *App) SuggestMatricula() (string, error) {
	return app.svc.Students.SuggestMatricula(app.alumnosGroupID)
}

// group mutations — Administrador only

func (app *App) createGroup(ng group.NewGroup) error {
	if !app.identity.IsAdministrador() {
		return core.ErrPermissionDenied
	}
	if err := ng.Validate(); err != nil {
		return err
	}
	grp, err := app.svc.Groups.Create(ng)
	if err != nil {
		return err
	}
	app.logActivity(fmt.Sprintf("[+] Creó salón %q.", grp.Name))
	app.alumnosGroupID = grp.ID
	return nil
}

func (app *App) renameGroup(rg RenameGroup) error {
	if !app.identity.IsAdministrador() {
		return core.ErrPermissionDenied
	}
	ng := group.NewGroup{Name: rg.Name}
	if err := ng.Validate(); err != nil {
		return err
	}
	grp, err := app.svc.Groups.GetByID(rg.ID)
	if err != nil {
		return err
	}
	if ng.Name == grp.Name {
		return nil
	}
	if _, err = app.svc.Groups.Rename(rg.ID, ng); err != nil {
		return err
	}
	app.logActivity(fmt.Sprintf("[~] Salón %q a %q.", grp.Name, ng.Name))
	return nil
}

func (app *App) deleteGroup(id int) error {
	if !app.identity.IsAdministrador() {
		return core.ErrPermissionDenied
	}
	grp, err := app.svc.Groups.GetByID(id)
	if err != nil {
		return err
	}
	if err = app.svc.Groups.Delete(id); err != nil {
		return err
	}
	app.logActivity(fmt.Sprintf("[-] Eliminó salón %q.", grp.Name))
	if app.alumnosGroupID == id {
		app.alumnosGroupID = 0
	}
	return nil
}

// student mutations — unavailable to the Maestro role

func (app *App) createStudent(ns student.NewStudent) error {
	if app.identity.IsMaestro() {
		return core.ErrPermissionDenied
	}
	if err := ns.Validate(app.svc.Students); err != nil {
		return err
	}
	st, err := app.svc.Students.Create(ns)
	if err != nil {
		return err
	}
	app.logActivity(fmt.Sprintf("[+] Agregó a %s %s.", st.Nombre, st.ApellidoPaterno))
	return nil
}

func (app *App) updateStudent(es EditStudent) error {
	if app.identity.IsMaestro() {
		return core.ErrPermissionDenied
	}
	orig, err := app.svc.Students.GetByID(es.ID)
	if err != nil {
		return err
	}
	if err := es.UpdateStudent.Validate(orig, app.svc.Students); err != nil {
		return err
	}
	st, err := app.svc.Students.Update(es.ID, es.UpdateStudent)
	if err != nil {
		return err
	}
	app.logActivity(fmt.Sprintf("[~] Actualizó a %s %s.", st.Nombre, st.ApellidoPaterno))
	return nil
}

func (app *App) deleteStudent(id int) error {
	if app.identity.IsMaestro() {
		return core.ErrPermissionDenied
	}
	st, err := app.svc.Students.GetByID(id)
	if err != nil {
		return err
	}
	if err = app.svc.Students.Delete(id); err != nil {
		return err
	}
	app.logActivity(fmt.Sprintf("[-] Eliminó al alumno %s.", st.Nombre))
	return nil
}
