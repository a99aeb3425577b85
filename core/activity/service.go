package activity

import (
	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/user"
)

type (
	Repository interface {
		QueryLog() ([]Entry, error)
		// SaveLog replaces the whole collection and persists it.
		SaveLog(entries []Entry) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Log prepends an entry when the acting identity is an Administrador;
// actions by other roles are silently dropped. The log never exceeds
// MaxEntries.
func (svc *Service) Log(actor user.User, description string) error {
	if !actor.IsAdministrador() {
		return nil
	}
	entries, err := svc.repo.QueryLog()
	if err != nil {
		return err
	}
	entries = append([]Entry{{Description: description, Timestamp: core.NowFunc().UTC()}}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return svc.repo.SaveLog(entries)
}

// Recent returns the log, newest first.
func (svc *Service) Recent() ([]Entry, error) {
	return svc.repo.QueryLog()
}
