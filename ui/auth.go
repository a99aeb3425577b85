package ui

import (
	"fmt"

	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/session"
	"github.com/jmnolasco/pasedelista/core/user"
)

// Auth is the pre-session surface: everything reachable before an App exists.
type Auth struct {
	users   *user.Service
	session *session.Store
}

func NewAuth(users *user.Service, sess *session.Store) *Auth {
	return &Auth{users: users, session: sess}
}

// Login authenticates and persists the session record.
func (a *Auth) Login(email, password string) (user.User, error) {
	usr, err := a.users.Authenticate(core.CleanString(email), password)
	if err != nil {
		return user.User{}, err
	}
	if err = a.session.Set(usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

// Register creates a Personal account. It does not log the new account in.
func (a *Auth) Register(nu user.NewUser) (user.User, error) {
	if err := nu.Validate(a.users); err != nil {
		return user.User{}, err
	}
	return a.users.Register(nu)
}

// RecoverPassword acknowledges the request without disclosing whether the
// address exists; no mail ever goes out.
func (a *Auth) RecoverPassword(email string) string {
	return fmt.Sprintf("Si el correo %q está registrado, se ha enviado un enlace de recuperación.", core.CleanString(email))
}
