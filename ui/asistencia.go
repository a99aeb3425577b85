package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/attendance"
	"github.com/jmnolasco/pasedelista/core/group"
	"github.com/jmnolasco/pasedelista/core/student"
)

var (
	ErrNoScope    = errors.New("select a group and a date first")
	ErrNoStudents = errors.New("no students in this group")
)

type AsistenciaRow struct {
	Student student.Student
	Record  attendance.Record
}

// AsistenciaData is the marking sheet for one (group, date) pair. Rendering
// it materializes (and persists) any missing records with the default
// "falta" status.
type AsistenciaData struct {
	Groups        []group.Group
	SelectedGroup int
	Date          string
	Rows          []AsistenciaRow

	// Administrador sees the sheet view-only
	ReadOnly bool
}

func (app *App) enterAsistencia() error {
	groups, err := app.scopedGroups()
	if err != nil {
		return err
	}
	app.asistenciaGroupID = app.defaultGroupID(groups)
	app.asistenciaDate = core.LocalDateString()
	return nil
}

func (app *App) Asistencia() (AsistenciaData, error) {
	groups, err := app.scopedGroups()
	if err != nil {
		return AsistenciaData{}, err
	}
	data := AsistenciaData{
		Groups:        groups,
		SelectedGroup: app.asistenciaGroupID,
		Date:          app.asistenciaDate,
		ReadOnly:      app.identity.IsAdministrador(),
	}
	if app.asistenciaGroupID == 0 {
		return data, nil
	}

	students, err := app.svc.Students.ListByGroup(app.asistenciaGroupID)
	if err != nil {
		return AsistenciaData{}, err
	}
	ids := make([]int, len(students))
	for i, st := range students {
		ids[i] = st.ID
	}
	records, err := app.svc.Attendance.Materialize(ids, app.asistenciaDate)
	if err != nil {
		return AsistenciaData{}, err
	}
	data.Rows = make([]AsistenciaRow, len(students))
	for i := range students {
		data.Rows[i] = AsistenciaRow{Student: students[i], Record: records[i]}
	}
	return data, nil
}

// SelectAsistenciaGroup re-renders the sheet from scratch for another group,
// materializing any missing records for the new scope.
func (app *App) SelectAsistenciaGroup(groupID int) (AsistenciaData, error) {
	groups, err := app.scopedGroups()
	if err != nil {
		return AsistenciaData{}, err
	}
	if !groupInScope(groups, groupID) {
		return AsistenciaData{}, core.ErrPermissionDenied
	}
	app.asistenciaGroupID = groupID
	return app.Asistencia()
}

func (app *App) SelectAsistenciaDate(date string) (AsistenciaData, error) {
	date = core.CleanString(date)
	if !core.ValidISODate(date) {
		err := errors.New("must be a date in YYYY-MM-DD format")
		return AsistenciaData{}, core.NewValidationError(err, core.FieldError{Field: "date", Error: err.Error()})
	}
	app.asistenciaDate = date
	return app.Asistencia()
}

// onSheet checks the target student belongs to the selected group; marks on
// students outside the sheet are refused even when the id itself is valid.
func (app *App) onSheet(studentID int) error {
	if app.asistenciaGroupID == 0 {
		return ErrNoScope
	}
	st, err := app.svc.Students.GetByID(studentID)
	if err != nil {
		return err
	}
	if st.GroupID != app.asistenciaGroupID {
		return core.ErrPermissionDenied
	}
	return nil
}

func (app *App) markStatus(ms MarkStatus) error {
	if app.identity.IsAdministrador() {
		return core.ErrPermissionDenied
	}
	if err := app.onSheet(ms.StudentID); err != nil {
		return err
	}
	m := attendance.Mark{StudentID: ms.StudentID, Date: app.asistenciaDate, Status: ms.Status}
	if err := m.Validate(); err != nil {
		return err
	}
	_, err := app.svc.Attendance.SetStatus(m)
	return err
}

func (app *App) editObservations(eo EditObservations) error {
	if app.identity.IsAdministrador() {
		return core.ErrPermissionDenied
	}
	if err := app.onSheet(eo.StudentID); err != nil {
		return err
	}
	_, err := app.svc.Attendance.SetObservations(eo.StudentID, app.asistenciaDate, eo.Observations)
	return err
}

// ExportAsistencia writes the CSV download for the selected (group, date)
// into the configured export directory and returns its path.
func (app *App) ExportAsistencia() (string, error) {
	if app.asistenciaGroupID == 0 || app.asistenciaDate == "" {
		return "", ErrNoScope
	}
	grp, err := app.svc.Groups.GetByID(app.asistenciaGroupID)
	if err != nil {
		return "", err
	}
	students, err := app.svc.Students.ListByGroup(grp.ID)
	if err != nil {
		return "", err
	}
	if len(students) == 0 {
		return "", ErrNoStudents
	}

	records := make(map[int]attendance.Record, len(students))
	for _, st := range students {
		rec, err := app.svc.Attendance.Get(st.ID, app.asistenciaDate)
		if err != nil {
			if err == attendance.ErrNotFound {
				continue // exports as FALTA
			}
			return "", err
		}
		records[st.ID] = rec
	}

	csv := attendance.BuildCSV(students, records)
	path := filepath.Join(core.Conf.GetString("exportDir"), attendance.ExportFilename(grp.Name, app.asistenciaDate))
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		return "", err
	}
	app.logActivity(fmt.Sprintf("[~] Descargó asistencia para salón %q del %s.", grp.Name, app.asistenciaDate))
	return path, nil
}
