package validation

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the accepted resume date formats, most specific first.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// parseDate parses a resume date string. Form clients submit month inputs
// ("2021-06"), but full dates and bare years are accepted too.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// yearOf extracts the four-digit year of a resume date string without
// requiring the rest of the value to parse.
func yearOf(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if len(value) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(value[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// maxValidYear is the latest year accepted for start, end and graduation
// dates: a little slack for planned graduation and offer start dates.
func maxValidYear() int {
	return time.Now().Year() + 2
}
