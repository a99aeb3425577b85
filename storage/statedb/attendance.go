package statedb

import (
	"github.com/jmnolasco/pasedelista/core/attendance"
)

type attendanceRepository struct {
	db *DB
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) GetRecord(studentID int, date string) (attendance.Record, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, rec := range repo.db.c.attendance {
		if rec.StudentID == studentID && rec.Date == date {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) QueryRecordsByDate(date string) ([]attendance.Record, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	records := make([]attendance.Record, 0)
	for _, rec := range repo.db.c.attendance {
		if rec.Date == date {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (repo *attendanceRepository) MaterializeRecords(studentIDs []int, date string) ([]attendance.Record, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	existing := make(map[int]attendance.Record)
	for _, rec := range repo.db.c.attendance {
		if rec.Date == date {
			existing[rec.StudentID] = rec
		}
	}

	records := make([]attendance.Record, 0, len(studentIDs))
	for _, id := range studentIDs {
		rec, ok := existing[id]
		if !ok {
			rec = attendance.Record{StudentID: id, Date: date, Status: attendance.StatusFalta}
			repo.db.c.attendance = append(repo.db.c.attendance, rec)
		}
		records = append(records, rec)
	}

	if err := repo.db.save(); err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *attendanceRepository) UpdateRecord(rec attendance.Record) (attendance.Record, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i := range repo.db.c.attendance {
		if repo.db.c.attendance[i].StudentID == rec.StudentID && repo.db.c.attendance[i].Date == rec.Date {
			repo.db.c.attendance[i] = rec
			if err := repo.db.save(); err != nil {
				return attendance.Record{}, err
			}
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrNotFound
}
