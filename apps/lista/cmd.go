package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/go-playground/validator/v10"

	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/session"
	"github.com/jmnolasco/pasedelista/core/user"
	"github.com/jmnolasco/pasedelista/ui"
)

var readPasswordFunc = term.ReadPassword // mockable

type commandLine struct {
	in   *bufio.Scanner
	log  core.Logger
	kv   core.Store
	sess *session.Store
	svc  ui.Services
}

// run alternates between the auth screen and an authenticated session until
// the user quits.
func (cli *commandLine) run() error {
	auth := ui.NewAuth(cli.svc.Users, cli.sess)
	for {
		quit, err := cli.authScreen(auth)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		app, err := ui.NewApp(cli.kv, cli.sess, cli.svc, cli.log)
		if err != nil {
			return err
		}
		if err := cli.sessionLoop(app); err != nil {
			return err
		}
	}
}

func (cli *commandLine) authScreen(auth *ui.Auth) (quit bool, err error) {
	for {
		fmt.Println()
		fmt.Println("=== Pase de Lista ===")
		fmt.Println("  1) Iniciar sesión")
		fmt.Println("  2) Registrarse")
		fmt.Println("  3) Recuperar contraseña")
		fmt.Println("  0) Salir")
		switch cli.prompt("> ") {
		case "1":
			email := cli.prompt("Correo: ")
			pwd, err := cli.promptPassword("Contraseña: ")
			if err != nil {
				return false, err
			}
			usr, err := auth.Login(email, pwd)
			if err != nil {
				printErr(err)
				continue
			}
			fmt.Printf("Bienvenido(a), %s.\n", usr.FullName)
			return false, nil
		case "2":
			cli.register(auth)
		case "3":
			fmt.Println(auth.RecoverPassword(cli.prompt("Correo: ")))
		case "0":
			return true, nil
		}
	}
}

func (cli *commandLine) register(auth *ui.Auth) {
	nu := user.NewUser{FullName: cli.prompt("Nombre completo: "), Email: cli.prompt("Correo: ")}
	var err error
	if nu.Password, err = cli.promptPassword("Contraseña: "); err != nil {
		printErr(err)
		return
	}
	if nu.PasswordConfirm, err = cli.promptPassword("Confirmar contraseña: "); err != nil {
		printErr(err)
		return
	}
	if _, err = auth.Register(nu); err != nil {
		printErr(err)
		return
	}
	fmt.Println("Cuenta creada. Ahora puedes iniciar sesión.")
}

func (cli *commandLine) sessionLoop(app *ui.App) error {
	for {
		fmt.Println()
		fmt.Println("  1) Inicio")
		fmt.Println("  2) Alumnos")
		fmt.Println("  3) Asistencia")
		if app.Identity().IsAdministrador() {
			fmt.Println("  4) Usuarios")
		}
		fmt.Println("  5) Perfil")
		if app.Identity().IsAdministrador() {
			fmt.Println("  9) Restablecer datos")
		}
		fmt.Println("  0) Cerrar sesión")
		switch cli.prompt("> ") {
		case "1":
			cli.visit(app, ui.ViewHome)
		case "2":
			cli.visit(app, ui.ViewAlumnos)
		case "3":
			cli.visit(app, ui.ViewAsistencia)
		case "4":
			cli.visit(app, ui.ViewUsuarios)
		case "5":
			cli.visit(app, ui.ViewPerfil)
		case "9":
			if !app.Identity().IsAdministrador() {
				continue
			}
			if cli.confirm("Esto borra TODOS los datos. ¿Continuar?") {
				if err := app.HardReset(); err != nil {
					return err
				}
				fmt.Println("Datos restablecidos.")
				return nil
			}
		case "0":
			return app.Logout()
		}
	}
}

// visit enters a view and runs its action loop until the user goes back.
func (cli *commandLine) visit(app *ui.App, view ui.View) {
	data, err := app.SwitchTo(view)
	if err != nil {
		printErr(err)
		return
	}
	for {
		render(data)
		done, next, err := cli.viewActions(app, view, data)
		if err != nil {
			printErr(err)
			next, err = app.Rerender()
			if err != nil {
				printErr(err)
				return
			}
		}
		if done {
			return
		}
		data = next
	}
}

// input helpers

func (cli *commandLine) prompt(label string) string {
	fmt.Print(label)
	if !cli.in.Scan() {
		return ""
	}
	return strings.TrimSpace(cli.in.Text())
}

func (cli *commandLine) promptInt(label string) (int, bool) {
	n, err := strconv.Atoi(cli.prompt(label))
	if err != nil {
		fmt.Println("Número inválido.")
		return 0, false
	}
	return n, true
}

func (cli *commandLine) promptPassword(label string) (string, error) {
	fmt.Print(label)
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	return string(pwd), err
}

func (cli *commandLine) confirm(label string) bool {
	return strings.EqualFold(cli.prompt(label+" [s/N] "), "s")
}

func printErr(err error) {
	switch verr := err.(type) {
	case *core.ValidationError:
		fmt.Printf("Error: %s\n", verr.Error())
		for _, fld := range verr.Fields {
			fmt.Printf("  - %s: %s\n", fld.Field, fld.Error)
		}
	case validator.ValidationErrors:
		fmt.Println("Error: datos inválidos")
		for _, fld := range verr {
			fmt.Printf("  - %s: %s\n", fld.Field(), fld.Translate(core.Translator))
		}
	default:
		fmt.Printf("Error: %s\n", err)
	}
}
