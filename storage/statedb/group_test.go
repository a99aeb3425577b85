package statedb

import (
	"testing"

	"github.com/jmnolasco/pasedelista/core/attendance"
	"github.com/jmnolasco/pasedelista/core/group"
	"github.com/jmnolasco/pasedelista/core/student"
	"github.com/jmnolasco/pasedelista/storage/kvmem"
)

func seedTwoGroups(t *testing.T, db *DB) (grpA, grpB group.Group) {
	t.Helper()
	grpRepo := NewGroupRepository(db)
	stRepo := NewStudentRepository(db)
	attRepo := NewAttendanceRepository(db)

	var err error
	if grpA, err = grpRepo.CreateGroup(group.Group{ID: 10, Name: "3A"}); err != nil {
		t.Fatalf("CreateGroup() error = %v", err)
	}
	if grpB, err = grpRepo.CreateGroup(group.Group{ID: 20, Name: "3B"}); err != nil {
		t.Fatalf("CreateGroup() error = %v", err)
	}
	for _, st := range []student.Student{
		{Matricula: "1", Nombre: "Ana", GroupID: grpA.ID},
		{Matricula: "2", Nombre: "Luis", GroupID: grpA.ID},
		{Matricula: "1", Nombre: "Eva", GroupID: grpB.ID},
	} {
		if _, err = stRepo.CreateStudent(st); err != nil {
			t.Fatalf("CreateStudent() error = %v", err)
		}
	}
	if _, err = attRepo.MaterializeRecords([]int{1, 2, 3}, "2026-03-02"); err != nil {
		t.Fatalf("MaterializeRecords() error = %v", err)
	}
	return grpA, grpB
}

func TestGroupRepository_DeleteGroup_cascades(t *testing.T) {
	db := openDB(t, kvmem.Open())
	grpA, grpB := seedTwoGroups(t, db)

	if err := NewGroupRepository(db).DeleteGroup(grpA.ID); err != nil {
		t.Fatalf("DeleteGroup() error = %v", err)
	}

	if len(db.c.groups) != 1 || db.c.groups[0].ID != grpB.ID {
		t.Errorf("groups after cascade = %v, want only %d", db.c.groups, grpB.ID)
	}
	for _, st := range db.c.students {
		if st.GroupID == grpA.ID {
			t.Errorf("student %d must be removed with its group", st.ID)
		}
	}
	if len(db.c.students) != 1 {
		t.Errorf("students after cascade = %v, want 1", db.c.students)
	}
	for _, rec := range db.c.attendance {
		if rec.StudentID == 1 || rec.StudentID == 2 {
			t.Errorf("attendance record for removed student %d must be removed", rec.StudentID)
		}
	}
	if len(db.c.attendance) != 1 {
		t.Errorf("attendance after cascade = %v, want 1", db.c.attendance)
	}
}

func TestGroupRepository_DeleteGroup_missing(t *testing.T) {
	db := openDB(t, kvmem.Open())

	if err := NewGroupRepository(db).DeleteGroup(99); err != group.ErrNotFound {
		t.Errorf("DeleteGroup() error = %v, want ErrNotFound", err)
	}
}

func TestStudentRepository_idsNeverReused(t *testing.T) {
	db := openDB(t, kvmem.Open())
	grpRepo := NewGroupRepository(db)
	stRepo := NewStudentRepository(db)

	grp, err := grpRepo.CreateGroup(group.Group{ID: 10, Name: "3A"})
	if err != nil {
		t.Fatalf("CreateGroup() error = %v", err)
	}

	first, err := stRepo.CreateStudent(student.Student{Matricula: "1", Nombre: "Ana", GroupID: grp.ID})
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}
	if err = stRepo.DeleteStudent(first.ID); err != nil {
		t.Fatalf("DeleteStudent() error = %v", err)
	}

	second, err := stRepo.CreateStudent(student.Student{Matricula: "2", Nombre: "Luis", GroupID: grp.ID})
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}
	if second.ID != first.ID+1 {
		t.Errorf("student id = %d, want %d; deleted ids must not be reused", second.ID, first.ID+1)
	}
}

func TestStudentRepository_matriculaUniqueness(t *testing.T) {
	db := openDB(t, kvmem.Open())
	seedTwoGroups(t, db)
	repo := NewStudentRepository(db)

	// taken within the same group
	if err := repo.CheckMatriculaUniqueness(10, "1"); err != student.ErrMatriculaExists {
		t.Errorf("CheckMatriculaUniqueness() error = %v, want ErrMatriculaExists", err)
	}
	// the same matricula is fine in another group
	if err := repo.CheckMatriculaUniqueness(20, "2"); err != nil {
		t.Errorf("CheckMatriculaUniqueness() error = %v, want nil", err)
	}
	// the record being edited does not conflict with itself
	ana, err := repo.GetStudentByID(1)
	if err != nil {
		t.Fatalf("GetStudentByID() error = %v", err)
	}
	if err = repo.CheckMatriculaUniqueness(10, "1", ana); err != nil {
		t.Errorf("CheckMatriculaUniqueness() with exclusion error = %v, want nil", err)
	}
}

func TestAttendanceRepository_Materialize(t *testing.T) {
	db := openDB(t, kvmem.Open())
	repo := NewAttendanceRepository(db)
	date := "2026-03-02"

	records, err := repo.MaterializeRecords([]int{1, 2}, date)
	if err != nil {
		t.Fatalf("MaterializeRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("MaterializeRecords() len = %d, want 2", len(records))
	}
	for i, rec := range records {
		if rec.Status != attendance.StatusFalta {
			t.Errorf("record %d status = %q, want falta", i, rec.Status)
		}
	}

	// marking then re-materializing keeps the mark; nothing is duplicated
	records[0].Status = attendance.StatusAsistio
	if _, err = repo.UpdateRecord(records[0]); err != nil {
		t.Fatalf("UpdateRecord() error = %v", err)
	}
	records, err = repo.MaterializeRecords([]int{1, 2, 3}, date)
	if err != nil {
		t.Fatalf("MaterializeRecords() error = %v", err)
	}
	if records[0].Status != attendance.StatusAsistio {
		t.Errorf("record 0 status = %q, want asistio", records[0].Status)
	}
	if len(db.c.attendance) != 3 {
		t.Errorf("stored records = %d, want 3", len(db.c.attendance))
	}

	// another day is a separate sheet
	if _, err = repo.MaterializeRecords([]int{1}, "2026-03-03"); err != nil {
		t.Fatalf("MaterializeRecords() error = %v", err)
	}
	if len(db.c.attendance) != 4 {
		t.Errorf("stored records = %d, want 4", len(db.c.attendance))
	}
}
