// Package session holds the authenticated identity for the life of the
// process; logging out or exiting discards it.
package session

import (
	"encoding/json"

	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/user"
)

// Key is the session entry: the full User record of the current identity.
const Key = "loggedInUser"

type Store struct {
	kv core.Store
}

func NewStore(kv core.Store) *Store {
	return &Store{kv: kv}
}

// Get returns the current identity. Any read or decode failure reads as
// "not authenticated"; the gate fails closed.
func (s *Store) Get() (user.User, bool) {
	data, err := s.kv.Get(Key)
	if err != nil {
		return user.User{}, false
	}
	var usr user.User
	if err := json.Unmarshal(data, &usr); err != nil {
		return user.User{}, false
	}
	return usr, true
}

func (s *Store) Set(usr user.User) error {
	data, err := json.Marshal(usr)
	if err != nil {
		return err
	}
	return s.kv.Set(Key, data)
}

func (s *Store) Clear() error {
	return s.kv.Delete(Key)
}
