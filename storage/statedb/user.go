package statedb

import (
	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/user"
)

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CheckEmailUniqueness(email string, excludedUsers ...user.User) error {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, usr := range repo.db.c.users {
		if usr.Email == email && !isExcluded(usr.ID, excludedUsers) {
			return user.ErrEmailExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if usr.ID == 0 {
		usr.ID = core.EpochMillisID()
	}
	// time-based ids can collide when created within the same millisecond
	for repo.idTaken(usr.ID) {
		usr.ID++
	}
	repo.db.c.users = append(repo.db.c.users, usr)
	if err := repo.db.save(); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	users := make([]user.User, len(repo.db.c.users))
	copy(users, repo.db.c.users)
	return users, nil
}

func (repo *userRepository) GetUserByID(id int) (user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, usr := range repo.db.c.users {
		if usr.ID == id {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, usr := range repo.db.c.users {
		if usr.Email == email {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) UpdateUser(usr user.User) (user.User, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i := range repo.db.c.users {
		if repo.db.c.users[i].ID == usr.ID {
			repo.db.c.users[i] = usr
			if err := repo.db.save(); err != nil {
				return user.User{}, err
			}
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) DeleteUser(id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	users := repo.db.c.users[:0]
	found := false
	for _, usr := range repo.db.c.users {
		if usr.ID == id {
			found = true
			continue
		}
		users = append(users, usr)
	}
	if !found {
		return user.ErrNotFound
	}
	repo.db.c.users = users
	return repo.db.save()
}

func (repo *userRepository) idTaken(id int) bool {
	for _, usr := range repo.db.c.users {
		if usr.ID == id {
			return true
		}
	}
	return false
}

func isExcluded(id int, excludedUsers []user.User) bool {
	for _, usr := range excludedUsers {
		if usr.ID == id {
			return true
		}
	}
	return false
}
