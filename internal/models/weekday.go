package models

import (
	"slices"
	"strings"
)

// Weekday is a repeat day tag.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// Week holds the weekdays in display order.
var Week = []Weekday{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// ParseWeekday converts user input such as "mon", "Monday" or "TUE" to a
// Weekday.
func ParseWeekday(s string) (Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return "", false
	}

	for _, d := range Week {
		full := strings.ToLower(string(d))
		if strings.HasPrefix(s, full) && strings.HasPrefix(fullNames[d], s) {
			return d, true
		}
	}

	return "", false
}

var fullNames = map[Weekday]string{
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
	Sunday:    "sunday",
}

// SortWeekdays removes duplicates and orders days from Monday to Sunday.
func SortWeekdays(days []Weekday) []Weekday {
	sorted := make([]Weekday, 0, len(days))

	for _, d := range Week {
		if slices.Contains(days, d) {
			sorted = append(sorted, d)
		}
	}

	return sorted
}

// JoinWeekdays renders days for display, or "None" for an empty set.
func JoinWeekdays(days []Weekday) string {
	if len(days) == 0 {
		return "None"
	}

	s := make([]string, len(days))
	for i, d := range days {
		s[i] = string(d)
	}

	return strings.Join(s, ", ")
}
