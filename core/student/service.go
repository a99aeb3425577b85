package student

import (
	"errors"
	"strconv"

	"github.com/jmnolasco/pasedelista/core"
)

var (
	ErrNotFound        = errors.New("student not found")
	ErrMatriculaExists = errors.New("a student with this matricula already exists in the group")
)

type (
	Repository interface {
		CheckMatriculaUniqueness(groupID int, matricula string, excludedStudents ...Student) error
		// CreateStudent assigns the next id from the monotonic counter.
		CreateStudent(st Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		QueryStudentsByGroup(groupID int) ([]Student, error)
		GetStudentByID(id int) (Student, error)
		UpdateStudent(st Student) (Student, error)
		DeleteStudent(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CheckMatriculaUniqueness(groupID int, matricula string, exclStudents ...Student) error {
	if err := svc.repo.CheckMatriculaUniqueness(groupID, matricula, exclStudents...); err != nil {
		if err == ErrMatriculaExists {
			return core.NewValidationError(err, core.FieldError{Field: "matricula", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	st := Student{
		Matricula:       ns.Matricula,
		Nombre:          ns.Nombre,
		ApellidoPaterno: ns.ApellidoPaterno,
		ApellidoMaterno: ns.ApellidoMaterno,
		GroupID:         ns.GroupID,
	}
	return svc.repo.CreateStudent(st)
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id int) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

// ListByGroup returns a group's students sorted ascending by matricula.
func (svc *Service) ListByGroup(groupID int) ([]Student, error) {
	students, err := svc.repo.QueryStudentsByGroup(groupID)
	if err != nil {
		return nil, err
	}
	SortByMatricula(students)
	return students, nil
}

func (svc *Service) Update(id int, us UpdateStudent) (Student, error) {
	st, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	st.Matricula = us.Matricula
	st.Nombre = us.Nombre
	st.ApellidoPaterno = us.ApellidoPaterno
	st.ApellidoMaterno = us.ApellidoMaterno
	return svc.repo.UpdateStudent(st)
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteStudent(id)
}

// SuggestMatricula proposes the next matricula for a group: the maximum
// numeric matricula plus one, 1 for a group with none. The caller may still
// override it.
func (svc *Service) SuggestMatricula(groupID int) (string, error) {
	students, err := svc.repo.QueryStudentsByGroup(groupID)
	if err != nil {
		return "", err
	}
	max := 0
	for _, st := range students {
		if n, err := strconv.Atoi(st.Matricula); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}
