package present

import (
	"strings"
	"time"
)

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
}

// no offset: wall-clock time in the display zone
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp reads an ISO-8601 timestamp. Values without an offset are
// taken as wall-clock time in loc; a bare date is midnight UTC.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}

	return time.Time{}, &time.ParseError{
		Value:   s,
		Message: "unable to parse timestamp",
	}
}

// FormatTime renders ts as 24-hour "HH:MM" in loc. It reports false when ts
// is empty or unreadable so the caller can show a placeholder.
func FormatTime(ts string, loc *time.Location) (string, bool) {
	if strings.TrimSpace(ts) == "" {
		return "", false
	}
	t, err := ParseTimestamp(ts, loc)
	if err != nil {
		return "", false
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("15:04"), true
}

// FormatDate renders a calendar date as "Mon, Jan 2". Timestamps are
// converted to loc first; anything unreadable is returned as given.
func FormatDate(s string, loc *time.Location) string {
	trimmed := strings.TrimSpace(s)
	if d, err := time.Parse("2006-01-02", trimmed); err == nil {
		return d.Format("Mon, Jan 2")
	}
	t, err := ParseTimestamp(trimmed, loc)
	if err != nil {
		return s
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("Mon, Jan 2")
}
