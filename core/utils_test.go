package core

import (
	"testing"
	"time"
)

func TestCleanString(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		lower bool
		want  string
	}{
		{name: "trims", s: "  hey  ", want: "hey"},
		{name: "lowers", s: "  HeY  ", lower: true, want: "hey"},
		{name: "keeps case by default", s: "HeY", want: "HeY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanString(tt.s, tt.lower); got != tt.want {
				t.Errorf("CleanString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidISODate(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{s: "2026-03-02", want: true},
		{s: "2026-3-2"},
		{s: "02/03/2026"},
		{s: "2026-13-01"},
		{s: ""},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if got := ValidISODate(tt.s); got != tt.want {
				t.Errorf("ValidISODate(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestEpochMillisID(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, int(7*time.Millisecond), time.UTC)
	NowFunc = func() time.Time { return now }
	defer func() { NowFunc = time.Now }()

	if got, want := EpochMillisID(), int(now.UnixNano()/int64(time.Millisecond)); got != want {
		t.Errorf("EpochMillisID() = %d, want %d", got, want)
	}
}

func TestLocalDateString(t *testing.T) {
	NowFunc = func() time.Time { return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC) }
	defer func() { NowFunc = time.Now }()

	if got := LocalDateString(); got != "2026-03-02" {
		t.Errorf("LocalDateString() = %q, want 2026-03-02", got)
	}
}
