package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// Period is a coarse time-of-day bucket for slot selection.
type Period string

const (
	Morning   Period = "morning"   // [06:00, 12:00)
	Afternoon Period = "afternoon" // [12:00, 18:00)
	Evening   Period = "evening"   // [18:00, 24:00)
)

// ParsePeriod validates a user-supplied period name.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case Morning:
		return Morning, nil
	case Afternoon:
		return Afternoon, nil
	case Evening:
		return Evening, nil
	}
	return "", fmt.Errorf("unknown period %q (want morning, afternoon or evening)", s)
}

// PeriodOf buckets a HH:MM start time. Times before 06:00 belong to no
// period; ok is false for those and for unparseable times.
func PeriodOf(startTime string) (Period, bool) {
	hh, _, found := strings.Cut(startTime, ":")
	if !found {
		return "", false
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return "", false
	}
	switch {
	case h >= 6 && h < 12:
		return Morning, true
	case h >= 12 && h < 18:
		return Afternoon, true
	case h >= 18 && h < 24:
		return Evening, true
	}
	return "", false
}

// FilterByPeriod keeps the slots whose start time falls in p, deduplicated
// by start time. When several courts are free at the same time the first one
// encountered wins; the caller only needs one bookable option per displayed
// time.
func FilterByPeriod(slots []Slot, p Period) []Slot {
	seen := make(map[string]struct{}, len(slots))
	var out []Slot
	for _, s := range slots {
		sp, ok := PeriodOf(s.StartTime)
		if !ok || sp != p {
			continue
		}
		if _, dup := seen[s.StartTime]; dup {
			continue
		}
		seen[s.StartTime] = struct{}{}
		out = append(out, s)
	}
	return out
}
