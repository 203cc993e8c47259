package countdown

import (
	"errors"
	"testing"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr error
	}{
		{"one minute", "1", 60, nil},
		{"padded", "  45 ", 2700, nil},
		{"upper bound", "600", 36000, nil},
		{"too large", "700", 0, ErrMinutesOutOfRange},
		{"zero", "0", 0, ErrMinutesOutOfRange},
		{"negative", "-5", 0, ErrMinutesOutOfRange},
		{"overflow", "99999999999999999999", 0, ErrMinutesOutOfRange},
		{"letters", "abc", 0, ErrNotANumber},
		{"decimal", "1.5", 0, ErrNotANumber},
		{"empty", "   ", 0, ErrNotANumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMinutes(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseMinutes(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseMinutes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMinutes_RejectedInputLeavesTimerAlone(t *testing.T) {
	c, _, _ := newTestController()
	before := c.Snapshot()

	for _, in := range []string{"700", "abc"} {
		if secs, err := ParseMinutes(in); err == nil {
			_ = c.Start(secs)
		}
	}
	if c.Snapshot() != before {
		t.Fatalf("snapshot changed after rejected input: %+v", c.Snapshot())
	}
}
