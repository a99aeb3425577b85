package activity

import "time"

// MaxEntries caps the log; the oldest entry is evicted past it.
const MaxEntries = 10

// Entry is one human-readable audit line. The log is newest-first.
type Entry struct {
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
