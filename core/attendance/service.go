package attendance

import (
	"errors"
	"math"
)

var ErrNotFound = errors.New("attendance record not found")

type (
	Repository interface {
		GetRecord(studentID int, date string) (Record, error)
		QueryRecordsByDate(date string) ([]Record, error)
		// MaterializeRecords creates missing records for the given students
		// on `date` with the default "falta" status, persists once, and
		// returns the records in studentIDs order. Idempotent.
		MaterializeRecords(studentIDs []int, date string) ([]Record, error)
		UpdateRecord(rec Record) (Record, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Get(studentID int, date string) (Record, error) {
	return svc.repo.GetRecord(studentID, date)
}

// Materialize lazily creates-and-persists default records for a day's roster.
func (svc *Service) Materialize(studentIDs []int, date string) ([]Record, error) {
	return svc.repo.MaterializeRecords(studentIDs, date)
}

func (svc *Service) SetStatus(m Mark) (Record, error) {
	rec, err := svc.repo.GetRecord(m.StudentID, m.Date)
	if err != nil {
		return Record{}, err
	}
	rec.Status = m.Status
	return svc.repo.UpdateRecord(rec)
}

func (svc *Service) SetObservations(studentID int, date, observations string) (Record, error) {
	rec, err := svc.repo.GetRecord(studentID, date)
	if err != nil {
		return Record{}, err
	}
	rec.Observations = observations
	return svc.repo.UpdateRecord(rec)
}

// StatsForDay computes the home-view counters for `date` over the students
// in scope. Students without a record count as absent.
func (svc *Service) StatsForDay(studentIDs []int, date string) (DayStats, error) {
	stats := DayStats{TotalStudents: len(studentIDs)}
	if stats.TotalStudents == 0 {
		return stats, nil
	}

	records, err := svc.repo.QueryRecordsByDate(date)
	if err != nil {
		return DayStats{}, err
	}
	inScope := make(map[int]struct{}, len(studentIDs))
	for _, id := range studentIDs {
		inScope[id] = struct{}{}
	}

	var presentes int
	for _, rec := range records {
		if _, ok := inScope[rec.StudentID]; !ok {
			continue
		}
		switch rec.Status {
		case StatusRetardo:
			stats.Retardos++
			presentes++
		case StatusAsistio:
			presentes++
		}
	}
	stats.Percentage = int(math.Round(float64(presentes) / float64(stats.TotalStudents) * 100))
	return stats, nil
}
