package attendance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jmnolasco/pasedelista/core/student"
)

// CSVHeader is the fixed export header. Every field in every row is
// double-quote-wrapped with internal quotes doubled.
const CSVHeader = "Matrícula,Nombre Completo,Estatus,Observaciones"

var whitespaceRegex = regexp.MustCompile(`\s`)

// BuildCSV renders the export for one (group, date) roster. Students must
// already be sorted by matricula; records maps student id to that day's
// record, students without one export as FALTA.
func BuildCSV(students []student.Student, records map[int]Record) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')

	for _, st := range students {
		status := strings.ToUpper(StatusFalta)
		observations := ""
		if rec, ok := records[st.ID]; ok {
			status = strings.ToUpper(rec.Status)
			observations = rec.Observations
		}
		fields := []string{st.Matricula, st.FullName(), status, observations}
		for i, f := range fields {
			fields[i] = csvEscape(f)
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// ExportFilename names the download: Asistencia_<group>_<date>.csv with the
// group name's whitespace turned into underscores.
func ExportFilename(groupName, date string) string {
	return fmt.Sprintf("Asistencia_%s_%s.csv", whitespaceRegex.ReplaceAllString(groupName, "_"), date)
}

func csvEscape(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
