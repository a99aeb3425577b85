package group

import "github.com/jmnolasco/pasedelista/core"

// Group is a classroom ("salón"). Ids are time-based; names carry no
// uniqueness constraint.
type Group struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NewGroup contains the information needed to create a Group.
type NewGroup struct {
	Name string `json:"name" validate:"required"`
}

func (ng *NewGroup) Validate() error {
	ng.Name = core.CleanString(ng.Name)
	return core.Validate.Struct(ng)
}
