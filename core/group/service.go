package group

import "errors"

var ErrNotFound = errors.New("group not found")

type (
	Repository interface {
		// CreateGroup assigns a time-based id when grp.ID is zero.
		CreateGroup(grp Group) (Group, error)
		QueryAllGroups() ([]Group, error)
		GetGroupByID(id int) (Group, error)
		UpdateGroup(grp Group) (Group, error)
		// DeleteGroup cascades: the group's students and their attendance
		// records go with it, in a single persisted mutation.
		DeleteGroup(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ng NewGroup) (Group, error) {
	return svc.repo.CreateGroup(Group{Name: ng.Name})
}

func (svc *Service) QueryAll() ([]Group, error) {
	return svc.repo.QueryAllGroups()
}

func (svc *Service) GetByID(id int) (Group, error) {
	return svc.repo.GetGroupByID(id)
}

func (svc *Service) Rename(id int, ng NewGroup) (Group, error) {
	grp, err := svc.repo.GetGroupByID(id)
	if err != nil {
		return Group{}, err
	}
	grp.Name = ng.Name
	return svc.repo.UpdateGroup(grp)
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteGroup(id)
}

// Filter returns the groups whose ids are in `ids`, preserving collection order.
func Filter(groups []Group, ids []int) []Group {
	idSet := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	filtered := make([]Group, 0, len(ids))
	for _, grp := range groups {
		if _, ok := idSet[grp.ID]; ok {
			filtered = append(filtered, grp)
		}
	}
	return filtered
}
