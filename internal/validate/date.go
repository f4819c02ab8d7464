// Package validate holds the structural acceptance predicates the cascade
// applies to candidate field values. Predicates are pure and total: they
// report whether a value is plausible, never why, and never modify state.
package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// nowFunc is the clock used for the year upper bound (injectable for tests).
var nowFunc = time.Now

// ParseDMY parses a candidate date in dd/mm/yyyy, dd-mm-yyyy or contiguous
// ddmmyyyy form. It performs no calendar validation beyond digit layout.
func ParseDMY(s string) (day, month, year int, ok bool) {
	s = strings.TrimSpace(s)

	var parts []string
	switch {
	case strings.Contains(s, "/"):
		parts = strings.Split(s, "/")
	case strings.Contains(s, "-"):
		parts = strings.Split(s, "-")
	case len(s) == 8 && digitsOnly(s):
		parts = []string{s[:2], s[2:4], s[4:8]}
	default:
		return 0, 0, 0, false
	}
	if len(parts) != 3 {
		return 0, 0, 0, false
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}

// CalendarDate reports whether the components form a plausible birth date:
// day in [1,31], month in [1,12], year in [1900, current year]. Invalid
// dates are discarded by callers, never corrected.
func CalendarDate(day, month, year int) bool {
	return day >= 1 && day <= 31 &&
		month >= 1 && month <= 12 &&
		year >= 1900 && year <= nowFunc().Year()
}

// Date reports whether s parses as a supported date layout and passes
// calendar validation.
func Date(s string) bool {
	d, m, y, ok := ParseDMY(s)
	return ok && CalendarDate(d, m, y)
}

// FormatDMY renders a parseable date canonically as dd/mm/yyyy. Unparseable
// input comes back unchanged so formatting stays total.
func FormatDMY(s string) string {
	d, m, y, ok := ParseDMY(s)
	if !ok {
		return s
	}
	return fmt.Sprintf("%02d/%02d/%04d", d, m, y)
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
