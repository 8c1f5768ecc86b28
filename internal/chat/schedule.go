package chat

import "time"

// dateLabelLayout renders dates the way the wizard offers them,
// e.g. "Tuesday, Jun 3".
const dateLabelLayout = "Monday, Jan 2"

// dateOptionCount is how many business days the wizard offers.
const dateOptionCount = 5

// TimeSlots are the fixed consultation start times offered at the time
// step. Bounds and granularity are business policy, not computed.
var TimeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// DateOptions returns the next five Monday-to-Friday calendar dates
// strictly after ref, formatted as display labels in increasing order.
func DateOptions(ref time.Time) []string {
	options := make([]string, 0, dateOptionCount)
	day := ref
	for len(options) < dateOptionCount {
		day = day.AddDate(0, 0, 1)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		options = append(options, day.Format(dateLabelLayout))
	}
	return options
}

// timeSlotLabels returns a copy of the fixed slot list for use as quick
// replies, so callers cannot mutate the policy constant.
func timeSlotLabels() []string {
	out := make([]string, len(TimeSlots))
	copy(out, TimeSlots)
	return out
}
