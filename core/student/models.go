package student

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jmnolasco/pasedelista/core"
)

// Student ids come from a monotonic counter and are never reused, even after
// deletion. Matriculas are unique within a group only.
type Student struct {
	ID              int    `json:"id"`
	Matricula       string `json:"matricula"`
	Nombre          string `json:"nombre"`
	ApellidoPaterno string `json:"apellidoPaterno"`
	ApellidoMaterno string `json:"apellidoMaterno"`
	GroupID         int    `json:"groupId"`
}

func (s Student) FullName() string {
	return strings.TrimSpace(s.Nombre + " " + s.ApellidoPaterno + " " + s.ApellidoMaterno)
}

// NewStudent contains the information needed to enroll a Student.
type NewStudent struct {
	Matricula       string `json:"matricula" validate:"required"`
	Nombre          string `json:"nombre" validate:"required"`
	ApellidoPaterno string `json:"apellidoPaterno"`
	ApellidoMaterno string `json:"apellidoMaterno"`
	GroupID         int    `json:"groupId" validate:"required"`
}

func (ns *NewStudent) Validate(svc *Service) error {
	ns.Matricula = core.CleanString(ns.Matricula)
	ns.Nombre = core.CleanString(ns.Nombre)
	ns.ApellidoPaterno = core.CleanString(ns.ApellidoPaterno)
	ns.ApellidoMaterno = core.CleanString(ns.ApellidoMaterno)

	if err := core.Validate.Struct(ns); err != nil {
		return err
	}
	return svc.CheckMatriculaUniqueness(ns.GroupID, ns.Matricula)
}

// UpdateStudent defines what may be modified on an existing Student. The
// matricula uniqueness check excludes the record being edited.
type UpdateStudent struct {
	Matricula       string `json:"matricula" validate:"required"`
	Nombre          string `json:"nombre" validate:"required"`
	ApellidoPaterno string `json:"apellidoPaterno"`
	ApellidoMaterno string `json:"apellidoMaterno"`
}

func (us *UpdateStudent) Validate(orig Student, svc *Service) error {
	us.Matricula = core.CleanString(us.Matricula)
	us.Nombre = core.CleanString(us.Nombre)
	us.ApellidoPaterno = core.CleanString(us.ApellidoPaterno)
	us.ApellidoMaterno = core.CleanString(us.ApellidoMaterno)

	if err := core.Validate.Struct(us); err != nil {
		return err
	}
	return svc.CheckMatriculaUniqueness(orig.GroupID, us.Matricula, orig)
}

// CompareMatriculas orders matriculas numerically when both parse as
// integers, lexicographically otherwise. Mixed numeric/non-numeric pairs
// compare as strings; that is the fixed ordering policy.
func CompareMatriculas(a, b string) int {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	if aErr == nil && bErr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}

// SortByMatricula sorts students in place, ascending per CompareMatriculas.
func SortByMatricula(students []Student) {
	sort.SliceStable(students, func(i, j int) bool {
		return CompareMatriculas(students[i].Matricula, students[j].Matricula) < 0
	})
}
