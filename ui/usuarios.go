package ui

import (
	"fmt"

	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/group"
	"github.com/jmnolasco/pasedelista/core/user"
)

// UserRow is one account plus what the viewer may do with it: the role is
// only editable on non-self, non-Administrador rows, "Asignar" only shows on
// Maestro rows.
type UserRow struct {
	User        user.User
	CanEditRole bool
	CanAssign   bool
	CanDelete   bool
}

// UsuariosData is the Administrador-only account list. Groups carries the
// checkbox options for the assign dialog.
type UsuariosData struct {
	Rows   []UserRow
	Groups []group.Group
}

func (app *App) Usuarios() (UsuariosData, error) {
	if !app.identity.IsAdministrador() {
		return UsuariosData{}, core.ErrPermissionDenied
	}
	users, err := app.svc.Users.QueryAll()
	if err != nil {
		return UsuariosData{}, err
	}
	groups, err := app.svc.Groups.QueryAll()
	if err != nil {
		return UsuariosData{}, err
	}

	data := UsuariosData{Rows: make([]UserRow, len(users)), Groups: groups}
	for i, usr := range users {
		isSelf := usr.ID == app.identity.ID
		data.Rows[i] = UserRow{
			User:        usr,
			CanEditRole: !isSelf && !usr.IsAdministrador(),
			CanAssign:   usr.IsMaestro(),
			CanDelete:   !isSelf && !usr.IsAdministrador(),
		}
	}
	return data, nil
}

func (app *App) changeUserRole(cr ChangeUserRole) error {
	if !app.identity.IsAdministrador() {
		return core.ErrPermissionDenied
	}
	if cr.UserID == app.identity.ID {
		return core.ErrPermissionDenied
	}
	usr, err := app.svc.Users.ChangeRole(cr.UserID, cr.Role)
	if err != nil {
		return err
	}
	app.logActivity(fmt.Sprintf("[~] Rol de %s a %s.", usr.FullName, usr.Role))
	return nil
}

func (app *App) assignUserGroups(ag AssignUserGroups) error {
	if !app.identity.IsAdministrador() {
		return core.ErrPermissionDenied
	}
	usr, err := app.svc.Users.AssignGroups(ag.UserID, ag.GroupIDs)
	if err != nil {
		return err
	}
	app.logActivity(fmt.Sprintf("[~] Actualizó grupos de %s.", usr.FullName))
	return nil
}

func (app *App) deleteUser(userID int) error {
	if !app.identity.IsAdministrador() {
		return core.ErrPermissionDenied
	}
	usr, err := app.svc.Users.GetByID(userID)
	if err != nil {
		return err
	}
	if err = app.svc.Users.Delete(userID, app.identity.ID); err != nil {
		return err
	}
	app.logActivity(fmt.Sprintf("[-] Eliminó al usuario %s.", usr.FullName))
	return nil
}
