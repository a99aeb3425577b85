package statedb

import (
	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/attendance"
	"github.com/jmnolasco/pasedelista/core/group"
	"github.com/jmnolasco/pasedelista/core/student"
)

type groupRepository struct {
	db *DB
}

func NewGroupRepository(db *DB) group.Repository {
	return &groupRepository{db: db}
}

func (repo *groupRepository) CreateGroup(grp group.Group) (group.Group, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if grp.ID == 0 {
		grp.ID = core.EpochMillisID()
	}
	for repo.idTaken(grp.ID) {
		grp.ID++
	}
	repo.db.c.groups = append(repo.db.c.groups, grp)
	if err := repo.db.save(); err != nil {
		return group.Group{}, err
	}
	return grp, nil
}

func (repo *groupRepository) QueryAllGroups() ([]group.Group, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	groups := make([]group.Group, len(repo.db.c.groups))
	copy(groups, repo.db.c.groups)
	return groups, nil
}

func (repo *groupRepository) GetGroupByID(id int) (group.Group, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, grp := range repo.db.c.groups {
		if grp.ID == id {
			return grp, nil
		}
	}
	return group.Group{}, group.ErrNotFound
}

func (repo *groupRepository) UpdateGroup(grp group.Group) (group.Group, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i := range repo.db.c.groups {
		if repo.db.c.groups[i].ID == grp.ID {
			repo.db.c.groups[i] = grp
			if err := repo.db.save(); err != nil {
				return group.Group{}, err
			}
			return grp, nil
		}
	}
	return group.Group{}, group.ErrNotFound
}

// DeleteGroup removes the group, its students, and those students'
// attendance records in one persisted mutation.
func (repo *groupRepository) DeleteGroup(id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	groups := repo.db.c.groups[:0]
	found := false
	for _, grp := range repo.db.c.groups {
		if grp.ID == id {
			found = true
			continue
		}
		groups = append(groups, grp)
	}
	if !found {
		return group.ErrNotFound
	}
	repo.db.c.groups = groups

	removed := make(map[int]struct{})
	students := make([]student.Student, 0, len(repo.db.c.students))
	for _, st := range repo.db.c.students {
		if st.GroupID == id {
			removed[st.ID] = struct{}{}
			continue
		}
		students = append(students, st)
	}
	repo.db.c.students = students

	records := make([]attendance.Record, 0, len(repo.db.c.attendance))
	for _, rec := range repo.db.c.attendance {
		if _, gone := removed[rec.StudentID]; gone {
			continue
		}
		records = append(records, rec)
	}
	repo.db.c.attendance = records

	return repo.db.save()
}

func (repo *groupRepository) idTaken(id int) bool {
	for _, grp := range repo.db.c.groups {
		if grp.ID == id {
			return true
		}
	}
	return false
}
