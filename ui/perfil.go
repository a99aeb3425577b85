package ui

import (
	"fmt"

	"github.com/jmnolasco/pasedelista/core/user"
)

type PerfilData struct {
	FullName string
	Email    string
	Role     string
}

func (app *App) Perfil() (PerfilData, error) {
	return PerfilData{
		FullName: app.identity.FullName,
		Email:    app.identity.Email,
		Role:     app.identity.Role,
	}, nil
}

func (app *App) renameProfile(fullName string) error {
	up := user.UpdateProfile{FullName: fullName}
	if err := up.Validate(); err != nil {
		return err
	}
	usr, err := app.svc.Users.Rename(app.identity.ID, up.FullName)
	if err != nil {
		return err
	}
	app.identity = usr
	return app.session.Set(usr)
}

// RecoverPassword only acknowledges the request; no mail ever goes out.
func (app *App) RecoverPassword() string {
	return fmt.Sprintf("Si el correo %q está registrado, se ha enviado un enlace de recuperación.", app.identity.Email)
}
