package statedb

import (
	"github.com/jmnolasco/pasedelista/core/student"
)

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CheckMatriculaUniqueness(groupID int, matricula string, excludedStudents ...student.Student) error {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, st := range repo.db.c.students {
		if st.GroupID != groupID || st.Matricula != matricula {
			continue
		}
		excluded := false
		for _, excl := range excludedStudents {
			if excl.ID == st.ID {
				excluded = true
				break
			}
		}
		if !excluded {
			return student.ErrMatriculaExists
		}
	}
	return nil
}

func (repo *studentRepository) CreateStudent(st student.Student) (student.Student, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.lastStudentID++
	st.ID = repo.db.lastStudentID
	repo.db.c.students = append(repo.db.c.students, st)
	if err := repo.db.save(); err != nil {
		return student.Student{}, err
	}
	return st, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	students := make([]student.Student, len(repo.db.c.students))
	copy(students, repo.db.c.students)
	return students, nil
}

func (repo *studentRepository) QueryStudentsByGroup(groupID int) ([]student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	students := make([]student.Student, 0)
	for _, st := range repo.db.c.students {
		if st.GroupID == groupID {
			students = append(students, st)
		}
	}
	return students, nil
}

func (repo *studentRepository) GetStudentByID(id int) (student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, st := range repo.db.c.students {
		if st.ID == id {
			return st, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) UpdateStudent(st student.Student) (student.Student, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i := range repo.db.c.students {
		if repo.db.c.students[i].ID == st.ID {
			repo.db.c.students[i] = st
			if err := repo.db.save(); err != nil {
				return student.Student{}, err
			}
			return st, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) DeleteStudent(id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	students := repo.db.c.students[:0]
	found := false
	for _, st := range repo.db.c.students {
		if st.ID == id {
			found = true
			continue
		}
		students = append(students, st)
	}
	if !found {
		return student.ErrNotFound
	}
	repo.db.c.students = students
	return repo.db.save()
}
