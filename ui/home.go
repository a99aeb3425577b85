package ui

import (
	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/activity"
	"github.com/jmnolasco/pasedelista/core/group"
	"github.com/jmnolasco/pasedelista/core/student"
)

// HomeData are today's counters over the identity's scope, plus the activity
// log for Administrador eyes only.
type HomeData struct {
	Date          string
	TotalStudents int
	Retardos      int
	Percentage    int

	// Maestro stats scope selector; empty for other roles.
	GroupOptions  []group.Group
	SelectedGroup int

	ShowLog     bool
	ActivityLog []activity.Entry
}

// enterHome resets the Maestro scope selector to the first assigned group.
func (app *App) enterHome() error {
	app.homeGroupID = 0
	if !app.identity.IsMaestro() {
		return nil
	}
	groups, err := app.scopedGroups()
	if err != nil {
		return err
	}
	app.homeGroupID = app.defaultGroupID(groups)
	return nil
}

func (app *App) Home() (HomeData, error) {
	date := core.LocalDateString()
	data := HomeData{Date: date}

	var scope []student.Student
	if app.identity.IsMaestro() {
		groups, err := app.scopedGroups()
		if err != nil {
			return HomeData{}, err
		}
		data.GroupOptions = groups
		data.SelectedGroup = app.homeGroupID
		// no assigned group: empty scope, all counters zero
		if app.homeGroupID != 0 {
			if scope, err = app.svc.Students.ListByGroup(app.homeGroupID); err != nil {
				return HomeData{}, err
			}
		}
	} else {
		var err error
		if scope, err = app.svc.Students.QueryAll(); err != nil {
			return HomeData{}, err
		}
	}

	ids := make([]int, len(scope))
	for i, st := range scope {
		ids[i] = st.ID
	}
	stats, err := app.svc.Attendance.StatsForDay(ids, date)
	if err != nil {
		return HomeData{}, err
	}
	data.TotalStudents = stats.TotalStudents
	data.Retardos = stats.Retardos
	data.Percentage = stats.Percentage

	if app.identity.IsAdministrador() {
		entries, err := app.svc.Activity.Recent()
		if err != nil {
			return HomeData{}, err
		}
		data.ShowLog = true
		data.ActivityLog = entries
	}
	return data, nil
}

// SelectHomeGroup recomputes the stats for another of the Maestro's assigned
// groups and re-renders immediately.
func (app *App) SelectHomeGroup(groupID int) (HomeData, error) {
	if !app.identity.IsMaestro() {
		return HomeData{}, core.ErrPermissionDenied
	}
	groups, err := app.scopedGroups()
	if err != nil {
		return HomeData{}, err
	}
	if !groupInScope(groups, groupID) {
		return HomeData{}, core.ErrPermissionDenied
	}
	app.homeGroupID = groupID
	return app.Home()
}
