package attendance

import "github.com/jmnolasco/pasedelista/core"

// Statuses
const (
	StatusAsistio = "asistio"
	StatusFalta   = "falta"
	StatusRetardo = "retardo"
)

var AllStatuses = []string{StatusAsistio, StatusFalta, StatusRetardo}

func ValidStatus(status string) bool {
	for _, s := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Record is one student's attendance for one local calendar day. Absence of
// a record reads as "falta"; the record is materialized the first time the
// (group, date) pair is rendered.
type Record struct {
	StudentID    int    `json:"studentId"`
	Date         string `json:"date"` // YYYY-MM-DD
	Status       string `json:"status"`
	Observations string `json:"observations"`
}

// Mark contains a status change for one (student, date) pair.
type Mark struct {
	StudentID int    `json:"studentId" validate:"required"`
	Date      string `json:"date" validate:"required,isodate"`
	Status    string `json:"status" validate:"required,attstatus"`
}

func (m *Mark) Validate() error {
	m.Date = core.CleanString(m.Date)
	m.Status = core.CleanString(m.Status, true /* lower */)
	return core.Validate.Struct(m)
}

// DayStats summarizes one day's attendance over a set of students.
type DayStats struct {
	TotalStudents int
	Retardos      int
	// Percentage is (asistio+retardo)/total*100 rounded to the nearest
	// integer; 0 when there are no students in scope.
	Percentage int
}
