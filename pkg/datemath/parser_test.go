package datemath_test

import (
	"testing"
	"time"

	"personal-task-planner/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Berlin")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2026, 3, 11, 15, 30, 0, 0, time.UTC) // Wednesday, March 11, 2026
	startOfBase := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "Case insensitive", relative: "  TODAY ", want: startOfBase},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", wantErr: true},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Unknown weekday", relative: "next someday", wantErr: true},
		{name: "Unrecognized input", relative: "whenever", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.relative)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.relative, got, tt.want)
			}
		})
	}
}

func TestDeadline(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

	got, err := parser.Deadline("today", baseTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 11, 17, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Deadline(today) = %v, want %v", got, want)
	}

	got, err = parser.Deadline("tomorrow", baseTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = time.Date(2026, 3, 12, 17, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Deadline(tomorrow) = %v, want %v", got, want)
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	noon := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

	got := parser.EndOfDay(noon)
	want := time.Date(2026, 3, 11, 23, 59, 59, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", got, want)
	}
}
