// Package statedb holds the five domain collections in memory and mirrors
// them to a core.Store. Every repository mutation runs under one lock and
// ends with a full-state overwrite of every key: the single mutate-then-flush
// boundary of the application.
package statedb

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/activity"
	"github.com/jmnolasco/pasedelista/core/attendance"
	"github.com/jmnolasco/pasedelista/core/group"
	"github.com/jmnolasco/pasedelista/core/student"
	"github.com/jmnolasco/pasedelista/core/user"
)

// Persistent store keys, one per collection.
const (
	keyUsers       = "users"
	keyGroups      = "groups"
	keyStudents    = "students"
	keyAttendance  = "attendance"
	keyActivityLog = "activityLog"
)

type collections struct {
	users       []user.User
	groups      []group.Group
	students    []student.Student
	attendance  []attendance.Record
	activityLog []activity.Entry
}

type DB struct {
	mu  sync.RWMutex
	kv  core.Store
	log core.Logger
	c   collections

	// lastStudentID only ever grows; deleted student ids are never reused.
	lastStudentID int
}

// Open loads every collection from the store. A missing key starts empty; a
// corrupt one is logged and falls back to empty. Legacy Maestro records
// without assignedGroups get an empty set. The loaded state is written back
// once so all keys exist in canonical form.
func Open(kv core.Store, logger core.Logger) (*DB, error) {
	db := &DB{kv: kv, log: logger}

	db.c.users = []user.User{}
	db.c.groups = []group.Group{}
	db.c.students = []student.Student{}
	db.c.attendance = []attendance.Record{}
	db.c.activityLog = []activity.Entry{}

	if data, ok := db.read(keyUsers); ok {
		var v []user.User
		if db.decode(keyUsers, data, &v) && v != nil {
			db.c.users = v
		}
	}
	if data, ok := db.read(keyGroups); ok {
		var v []group.Group
		if db.decode(keyGroups, data, &v) && v != nil {
			db.c.groups = v
		}
	}
	if data, ok := db.read(keyStudents); ok {
		var v []student.Student
		if db.decode(keyStudents, data, &v) && v != nil {
			db.c.students = v
		}
	}
	if data, ok := db.read(keyAttendance); ok {
		var v []attendance.Record
		if db.decode(keyAttendance, data, &v) && v != nil {
			db.c.attendance = v
		}
	}
	if data, ok := db.read(keyActivityLog); ok {
		var v []activity.Entry
		if db.decode(keyActivityLog, data, &v) && v != nil {
			db.c.activityLog = v
		}
	}

	for i := range db.c.users {
		if db.c.users[i].Role == user.RoleMaestro && db.c.users[i].AssignedGroups == nil {
			db.c.users[i].AssignedGroups = []int{}
		}
	}
	for _, st := range db.c.students {
		if st.ID > db.lastStudentID {
			db.lastStudentID = st.ID
		}
	}

	if err := db.save(); err != nil {
		return nil, err
	}
	return db, nil
}

func (db *DB) read(key string) ([]byte, bool) {
	data, err := db.kv.Get(key)
	if err != nil {
		if err != core.ErrKeyNotFound {
			db.log.Warn("statedb: loading %q: %v; starting empty", key, err)
		}
		return nil, false
	}
	return data, true
}

func (db *DB) decode(key string, data []byte, dst interface{}) bool {
	if err := json.Unmarshal(data, dst); err != nil {
		db.log.Warn("statedb: decoding %q: %v; starting empty", key, err)
		return false
	}
	return true
}

// save must be called with the write lock held (Open being the exception,
// before the DB is shared).
func (db *DB) save() error {
	for key, v := range map[string]interface{}{
		keyUsers:       db.c.users,
		keyGroups:      db.c.groups,
		keyStudents:    db.c.students,
		keyAttendance:  db.c.attendance,
		keyActivityLog: db.c.activityLog,
	} {
		data, err := json.Marshal(v)
		if err != nil {
			return errors.Wrapf(err, "statedb: encoding %q", key)
		}
		if err := db.kv.Set(key, data); err != nil {
			return errors.Wrapf(err, "statedb: saving %q", key)
		}
	}
	return nil
}
