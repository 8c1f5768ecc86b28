package chat

import (
	"testing"
	"time"
)

func TestDateOptionsCount(t *testing.T) {
	ref := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC) // Monday
	opts := DateOptions(ref)
	if len(opts) != 5 {
		t.Fatalf("Expected 5 date options, got %d", len(opts))
	}
}

func TestDateOptionsSkipWeekends(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want []string
	}{
		{
			name: "midweek reference",
			ref:  time.Date(2026, time.June, 3, 9, 0, 0, 0, time.UTC), // Wednesday
			want: []string{"Thursday, Jun 4", "Friday, Jun 5", "Monday, Jun 8", "Tuesday, Jun 9", "Wednesday, Jun 10"},
		},
		{
			name: "friday reference skips the weekend",
			ref:  time.Date(2026, time.June, 5, 9, 0, 0, 0, time.UTC), // Friday
			want: []string{"Monday, Jun 8", "Tuesday, Jun 9", "Wednesday, Jun 10", "Thursday, Jun 11", "Friday, Jun 12"},
		},
		{
			name: "saturday reference",
			ref:  time.Date(2026, time.June, 6, 9, 0, 0, 0, time.UTC), // Saturday
			want: []string{"Monday, Jun 8", "Tuesday, Jun 9", "Wednesday, Jun 10", "Thursday, Jun 11", "Friday, Jun 12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateOptions(tt.ref)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d options, got %d", len(tt.want), len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Option %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDateOptionsExcludeReferenceDay(t *testing.T) {
	// The reference day itself is never offered, even when it is a weekday.
	ref := time.Date(2026, time.June, 2, 9, 0, 0, 0, time.UTC) // Tuesday
	for _, opt := range DateOptions(ref) {
		if opt == ref.Format(dateLabelLayout) {
			t.Errorf("Reference day %q offered as an option", opt)
		}
	}
}

func TestTimeSlotLabelsIsACopy(t *testing.T) {
	labels := timeSlotLabels()
	labels[0] = "mutated"
	if TimeSlots[0] == "mutated" {
		t.Error("timeSlotLabels leaked the backing array")
	}
}
