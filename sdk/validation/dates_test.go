package validation

import (
	"testing"
	"time"
)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-01T10:30:00Z", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2026/03/01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ParseFlexibleDate(tt.in)
		if err != nil {
			t.Errorf("ParseFlexibleDate(%q) failed: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseFlexibleDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFlexibleDateRejectsGarbage(t *testing.T) {
	if _, err := ParseFlexibleDate("next tuesday"); err == nil {
		t.Error("expected an error for unparseable input")
	}
}
