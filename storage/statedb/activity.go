package statedb

import (
	"github.com/jmnolasco/pasedelista/core/activity"
)

type activityRepository struct {
	db *DB
}

func NewActivityRepository(db *DB) activity.Repository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) QueryLog() ([]activity.Entry, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	entries := make([]activity.Entry, len(repo.db.c.activityLog))
	copy(entries, repo.db.c.activityLog)
	return entries, nil
}

func (repo *activityRepository) SaveLog(entries []activity.Entry) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.c.activityLog = entries
	return repo.db.save()
}
