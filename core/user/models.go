package user

import (
	"github.com/jmnolasco/pasedelista/core"
)

// Roles
const (
	RoleAdministrador = "Administrador"
	RoleMaestro       = "Maestro"
	RolePersonal      = "Personal"
)

var AllRoles = []string{RoleAdministrador, RoleMaestro, RolePersonal}

func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User is a system account. Password is stored and compared as-is: the
// persisted `users` collection and the session record carry it verbatim.
type User struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	// AssignedGroups only carries meaning while Role is Maestro; it is
	// cleared whenever the role changes away from it.
	AssignedGroups []int `json:"assignedGroups,omitempty"`
}

func (u User) IsAdministrador() bool { return u.Role == RoleAdministrador }
func (u User) IsMaestro() bool       { return u.Role == RoleMaestro }
func (u User) IsPersonal() bool      { return u.Role == RolePersonal }

// NewUser contains the information needed to register a new User.
type NewUser struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

func (nu *NewUser) Validate(svc *Service) error {
	nu.FullName = core.CleanString(nu.FullName)
	nu.Email = core.CleanString(nu.Email)

	if err := core.Validate.Struct(nu); err != nil {
		return err
	}
	return svc.CheckEmailUniqueness(nu.Email)
}

// UpdateProfile defines what the profile view may change on the current identity.
type UpdateProfile struct {
	FullName string `json:"fullName" validate:"required"`
}

func (up *UpdateProfile) Validate() error {
	up.FullName = core.CleanString(up.FullName)
	return core.Validate.Struct(up)
}
