package attendance

import (
	"testing"

	"github.com/jmnolasco/pasedelista/core/student"
)

func TestBuildCSV(t *testing.T) {
	students := []student.Student{
		{ID: 1, Matricula: "1", Nombre: "Ana", ApellidoPaterno: "García"},
		{ID: 2, Matricula: "2", Nombre: "Luis", ApellidoPaterno: "Pérez"},
		{ID: 7, Matricula: "7", Nombre: `José "Pepe"`, ApellidoPaterno: "Ruiz"},
	}
	records := map[int]Record{
		1: {StudentID: 1, Date: "2026-03-02", Status: StatusAsistio, Observations: ""},
		2: {StudentID: 2, Date: "2026-03-02", Status: StatusRetardo, Observations: "llegó 8:15"},
		// student 7 has no record: exports as FALTA
	}

	want := "Matrícula,Nombre Completo,Estatus,Observaciones\n" +
		`"1","Ana García","ASISTIO",""` + "\n" +
		`"2","Luis Pérez","RETARDO","llegó 8:15"` + "\n" +
		`"7","José ""Pepe"" Ruiz","FALTA",""` + "\n"

	if got := BuildCSV(students, records); got != want {
		t.Errorf("BuildCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestBuildCSV_emptyRoster(t *testing.T) {
	want := CSVHeader + "\n"
	if got := BuildCSV(nil, nil); got != want {
		t.Errorf("BuildCSV() = %q, want %q", got, want)
	}
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name      string
		groupName string
		date      string
		want      string
	}{
		{name: "plain", groupName: "3A", date: "2026-03-02", want: "Asistencia_3A_2026-03-02.csv"},
		{name: "spaces to underscores", groupName: "3 A Matutino", date: "2026-03-02", want: "Asistencia_3_A_Matutino_2026-03-02.csv"},
		{name: "tab counts as whitespace", groupName: "3\tA", date: "2026-03-02", want: "Asistencia_3_A_2026-03-02.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExportFilename(tt.groupName, tt.date); got != tt.want {
				t.Errorf("ExportFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}
