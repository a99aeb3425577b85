package ui

import "errors"

// View names the single active screen. There is no history stack; switching
// fully resets the target view.
type View string

const (
	ViewHome       View = "home"
	ViewAlumnos    View = "alumnos"
	ViewAsistencia View = "asistencia"
	ViewUsuarios   View = "usuarios"
	ViewPerfil     View = "perfil"
)

// ViewData is a rendered view model; front-ends type-switch on it.
type ViewData interface{}

var ErrUnknownView = errors.New("unknown view")

func (app *App) Current() View { return app.current }

// SwitchTo activates a view and renders it fresh from domain state; no
// render is ever reused across visits.
func (app *App) SwitchTo(view View) (ViewData, error) {
	loader, ok := app.viewLoaders()[view]
	if !ok {
		return nil, ErrUnknownView
	}
	app.current = view
	return loader()
}

// Rerender renders the active view again without resetting its local state;
// it is what mutations trigger after persisting.
func (app *App) Rerender() (ViewData, error) {
	switch app.current {
	case ViewHome:
		return app.Home()
	case ViewAlumnos:
		return app.Alumnos()
	case ViewAsistencia:
		return app.Asistencia()
	case ViewUsuarios:
		return app.Usuarios()
	case ViewPerfil:
		return app.Perfil()
	}
	return nil, ErrUnknownView
}

// viewLoaders is the view table: entering a view resets its local state
// and triggers a fresh data load.
func (app *App) viewLoaders() map[View]func() (ViewData, error) {
	return map[View]func() (ViewData, error){
		ViewHome: func() (ViewData, error) {
			if err := app.enterHome(); err != nil {
				return nil, err
			}
			return app.Home()
		},
		ViewAlumnos: func() (ViewData, error) {
			if err := app.enterAlumnos(); err != nil {
				return nil, err
			}
			return app.Alumnos()
		},
		ViewAsistencia: func() (ViewData, error) {
			if err := app.enterAsistencia(); err != nil {
				return nil, err
			}
			return app.Asistencia()
		},
		ViewUsuarios: func() (ViewData, error) { return app.Usuarios() },
		ViewPerfil:   func() (ViewData, error) { return app.Perfil() },
	}
}
