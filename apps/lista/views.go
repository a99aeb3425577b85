package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jmnolasco/pasedelista/core/attendance"
	"github.com/jmnolasco/pasedelista/core/group"
	"github.com/jmnolasco/pasedelista/core/student"
	"github.com/jmnolasco/pasedelista/core/user"
	"github.com/jmnolasco/pasedelista/ui"
)

func render(data ui.ViewData) {
	switch d := data.(type) {
	case ui.HomeData:
		renderHome(d)
	case ui.AlumnosData:
		renderAlumnos(d)
	case ui.AsistenciaData:
		renderAsistencia(d)
	case ui.UsuariosData:
		renderUsuarios(d)
	case ui.PerfilData:
		renderPerfil(d)
	}
}

func (cli *commandLine) viewActions(app *ui.App, view ui.View, data ui.ViewData) (done bool, next ui.ViewData, err error) {
	switch view {
	case ui.ViewHome:
		return cli.homeActions(app, data.(ui.HomeData))
	case ui.ViewAlumnos:
		return cli.alumnosActions(app, data.(ui.AlumnosData))
	case ui.ViewAsistencia:
		return cli.asistenciaActions(app, data.(ui.AsistenciaData))
	case ui.ViewUsuarios:
		return cli.usuariosActions(app, data.(ui.UsuariosData))
	case ui.ViewPerfil:
		return cli.perfilActions(app)
	}
	return true, nil, nil
}

// --- Inicio ---

func renderHome(d ui.HomeData) {
	fmt.Printf("\n--- Inicio (%s) ---\n", d.Date)
	if len(d.GroupOptions) > 0 {
		fmt.Printf("Grupo: %s\n", groupName(d.GroupOptions, d.SelectedGroup))
	}
	fmt.Printf("Total de alumnos : %d\n", d.TotalStudents)
	fmt.Printf("Retardos de hoy  : %d\n", d.Retardos)
	fmt.Printf("Asistencia de hoy: %d%%\n", d.Percentage)
	if d.ShowLog {
		fmt.Println("\nRegistro de actividad:")
		if len(d.ActivityLog) == 0 {
			fmt.Println("  (vacío)")
		}
		for _, e := range d.ActivityLog {
			fmt.Printf("  %s  %s\n", e.Timestamp.Local().Format("2006-01-02 15:04"), e.Description)
		}
	}
}

func (cli *commandLine) homeActions(app *ui.App, d ui.HomeData) (bool, ui.ViewData, error) {
	if len(d.GroupOptions) > 0 {
		fmt.Println("  g) Cambiar grupo   0) Volver")
		if cli.prompt("> ") == "g" {
			listGroups(d.GroupOptions)
			if id, ok := cli.promptInt("ID del grupo: "); ok {
				next, err := app.SelectHomeGroup(id)
				return false, next, err
			}
			return false, d, nil
		}
	}
	return true, nil, nil
}

// --- Alumnos ---

func renderAlumnos(d ui.AlumnosData) {
	fmt.Println("\n--- Alumnos ---")
	listGroups(d.Groups)
	if d.SelectedGroup == 0 {
		fmt.Println("No hay salones.")
		return
	}
	fmt.Printf("\nSalón: %s\n", groupName(d.Groups, d.SelectedGroup))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMATRÍCULA\tNOMBRE COMPLETO")
	for _, st := range d.Students {
		fmt.Fprintf(w, "%d\t%s\t%s\n", st.ID, st.Matricula, st.FullName())
	}
	w.Flush()
}

func (cli *commandLine) alumnosActions(app *ui.App, d ui.AlumnosData) (bool, ui.ViewData, error) {
	opts := []string{"g) Cambiar salón"}
	if d.CanManageGroups {
		opts = append(opts, "n) Nuevo salón", "r) Renombrar salón", "x) Eliminar salón")
	}
	if d.CanEditStudents && d.SelectedGroup != 0 {
		opts = append(opts, "a) Agregar alumno", "e) Editar alumno", "d) Eliminar alumno")
	}
	fmt.Printf("  %s   0) Volver\n", strings.Join(opts, "   "))

	switch cli.prompt("> ") {
	case "g":
		if id, ok := cli.promptInt("ID del salón: "); ok {
			next, err := app.SelectAlumnosGroup(id)
			return false, next, err
		}
	case "n":
		next, err := app.Dispatch(ui.Intent{Name: ui.IntentGroupCreate, Payload: group.NewGroup{Name: cli.prompt("Nombre del salón: ")}})
		return false, next, err
	case "r":
		id, ok := cli.promptInt("ID del salón: ")
		if !ok {
			break
		}
		next, err := app.Dispatch(ui.Intent{Name: ui.IntentGroupRename, Payload: ui.RenameGroup{ID: id, Name: cli.prompt("Nuevo nombre: ")}})
		return false, next, err
	case "x":
		id, ok := cli.promptInt("ID del salón: ")
		if !ok || !cli.confirm("Se eliminarán también sus alumnos y asistencias. ¿Continuar?") {
			break
		}
		next, err := app.Dispatch(ui.Intent{Name: ui.IntentGroupDelete, Payload: ui.DeleteGroup{ID: id}})
		return false, next, err
	case "a":
		ns := student.NewStudent{GroupID: d.SelectedGroup}
		if sugg, err := app.SuggestMatricula(); err == nil {
			fmt.Printf("Matrícula sugerida: %s\n", sugg)
		}
		ns.Matricula = cli.prompt("Matrícula: ")
		ns.Nombre = cli.prompt("Nombre(s): ")
		ns.ApellidoPaterno = cli.prompt("Apellido paterno: ")
		ns.ApellidoMaterno = cli.prompt("Apellido materno: ")
		next, err := app.Dispatch(ui.Intent{Name: ui.IntentStudentCreate, Payload: ns})
		return false, next, err
	case "e":
		id, ok := cli.promptInt("ID del alumno: ")
		if !ok {
			break
		}
		es := ui.EditStudent{ID: id}
		es.Matricula = cli.prompt("Matrícula: ")
		es.Nombre = cli.prompt("Nombre(s): ")
		es.ApellidoPaterno = cli.prompt("Apellido paterno: ")
		es.ApellidoMaterno = cli.prompt("Apellido materno: ")
		next, err := app.Dispatch(ui.Intent{Name: ui.IntentStudentUpdate, Payload: es})
		return false, next, err
	case "d":
		id, ok := cli.promptInt("ID del alumno: ")
		if !ok || !cli.confirm("¿Eliminar al alumno?") {
			break
		}
		next, err := app.Dispatch(ui.Intent{Name: ui.IntentStudentDelete, Payload: ui.DeleteStudent{ID: id}})
		return false, next, err
	case "0":
		return true, nil, nil
	}
	return false, d, nil
}

// --- Asistencia ---

func renderAsistencia(d ui.AsistenciaData) {
	fmt.Printf("\n--- Asistencia (%s) ---\n", d.Date)
	if d.SelectedGroup == 0 {
		fmt.Println("No hay salones.")
		return
	}
	fmt.Printf("Salón: %s", groupName(d.Groups, d.SelectedGroup))
	if d.ReadOnly {
		fmt.Print("  [solo lectura]")
	}
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMATRÍCULA\tNOMBRE COMPLETO\tESTATUS\tOBSERVACIONES")
	for _, row := range d.Rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			row.Student.ID, row.Student.Matricula, row.Student.FullName(),
			strings.ToUpper(row.Record.Status), row.Record.Observations)
	}
	w.Flush()
}

func (cli *commandLine) asistenciaActions(app *ui.App, d ui.AsistenciaData) (bool, ui.ViewData, error) {
	opts := []string{"g) Cambiar salón", "f) Cambiar fecha"}
	if !d.ReadOnly && len(d.Rows) > 0 {
		opts = append(opts, "m) Marcar estatus", "o) Observaciones")
	}
	if len(d.Rows) > 0 {
		opts = append(opts, "c) Exportar CSV")
	}
	fmt.Printf("  %s   0) Volver\n", strings.Join(opts, "   "))

	switch cli.prompt("> ") {
	case "g":
		listGroups(d.Groups)
		if id, ok := cli.promptInt("ID del salón: "); ok {
			next, err := app.SelectAsistenciaGroup(id)
			return false, next, err
		}
	case "f":
		next, err := app.SelectAsistenciaDate(cli.prompt("Fecha (YYYY-MM-DD): "))
		return false, next, err
	case "m":
		id, ok := cli.promptInt("ID del alumno: ")
		if !ok {
			break
		}
		status := cli.prompt(fmt.Sprintf("Estatus (%s): ", strings.Join(attendance.AllStatuses, "/")))
		next, err := app.Dispatch(ui.Intent{Name: ui.IntentMarkStatus, Payload: ui.MarkStatus{StudentID: id, Status: status}})
		return false, next, err
	case "o":
		id, ok := cli.promptInt("ID del alumno: ")
		if !ok {
			break
		}
		next, err := app.Dispatch(ui.Intent{Name: ui.IntentEditObservation, Payload: ui.EditObservations{StudentID: id, Observations: cli.prompt("Observaciones: ")}})
		return false, next, err
	case "c":
		path, err := app.ExportAsistencia()
		if err != nil {
			return false, d, err
		}
		fmt.Printf("Exportado: %s\n", path)
	case "0":
		return true, nil, nil
	}
	return false, d, nil
}

// --- Usuarios ---

func renderUsuarios(d ui.UsuariosData) {
	fmt.Println("\n--- Usuarios ---")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tCORREO\tROL\tGRUPOS")
	for _, row := range d.Rows {
		names := make([]string, 0, len(row.User.AssignedGroups))
		for _, id := range row.User.AssignedGroups {
			names = append(names, groupName(d.Groups, id))
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			row.User.ID, row.User.FullName, row.User.Email, row.User.Role, strings.Join(names, ", "))
	}
	w.Flush()
}

func (cli *commandLine) usuariosActions(app *ui.App, d ui.UsuariosData) (bool, ui.ViewData, error) {
	fmt.Println("  r) Cambiar rol   a) Asignar grupos   d) Eliminar usuario   0) Volver")
	switch cli.prompt("> ") {
	case "r":
		id, ok := cli.promptInt("ID del usuario: ")
		if !ok {
			break
		}
		role := cli.prompt(fmt.Sprintf("Rol (%s/%s): ", user.RoleMaestro, user.RolePersonal))
		next, err := app.Dispatch(ui.Intent{Name: ui.IntentUserRole, Payload: ui.ChangeUserRole{UserID: id, Role: role}})
		return false, next, err
	case "a":
		id, ok := cli.promptInt("ID del usuario: ")
		if !ok {
			break
		}
		listGroups(d.Groups)
		ids, err := parseIDList(cli.prompt("IDs de grupos (separados por coma): "))
		if err != nil {
			return false, d, err
		}
		next, err := app.Dispatch(ui.Intent{Name: ui.IntentUserAssign, Payload: ui.AssignUserGroups{UserID: id, GroupIDs: ids}})
		return false, next, err
	case "d":
		id, ok := cli.promptInt("ID del usuario: ")
		if !ok || !cli.confirm("¿Eliminar al usuario?") {
			break
		}
		next, err := app.Dispatch(ui.Intent{Name: ui.IntentUserDelete, Payload: ui.DeleteUser{UserID: id}})
		return false, next, err
	case "0":
		return true, nil, nil
	}
	return false, d, nil
}

// --- Perfil ---

func renderPerfil(d ui.PerfilData) {
	fmt.Println("\n--- Perfil ---")
	fmt.Printf("Nombre: %s\nCorreo: %s\nRol   : %s\n", d.FullName, d.Email, d.Role)
}

func (cli *commandLine) perfilActions(app *ui.App) (bool, ui.ViewData, error) {
	fmt.Println("  n) Cambiar nombre   c) Recuperar contraseña   0) Volver")
	switch cli.prompt("> ") {
	case "n":
		next, err := app.Dispatch(ui.Intent{Name: ui.IntentProfileRename, Payload: ui.RenameProfile{FullName: cli.prompt("Nuevo nombre: ")}})
		return false, next, err
	case "c":
		fmt.Println(app.RecoverPassword())
	case "0":
		return true, nil, nil
	}
	data, err := app.Perfil()
	return false, data, err
}

// --- helpers ---

func listGroups(groups []group.Group) {
	for _, grp := range groups {
		fmt.Printf("  [%d] %s\n", grp.ID, grp.Name)
	}
}

func groupName(groups []group.Group, id int) string {
	for _, grp := range groups {
		if grp.ID == id {
			return grp.Name
		}
	}
	return "-"
}

func parseIDList(s string) ([]int, error) {
	ids := []int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("id inválido %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
