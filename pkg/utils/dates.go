package utils

import (
	"regexp"
	"strings"
	"time"
)

// PublishDateLayout renders publish dates as "January 02, 2006".
const PublishDateLayout = "January 02, 2006"

// FormatPublishDate formats t with PublishDateLayout, or returns
// NotAvailable when t is nil or zero.
func FormatPublishDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return NotAvailable
	}
	return t.Format(PublishDateLayout)
}

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
	"2006/01/02",
}

// ParseDate parses the date formats commonly found in article metadata.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var urlDatePattern = regexp.MustCompile(`/((?:19|20)\d{2})/(0?[1-9]|1[0-2])/(0?[1-9]|[12]\d|3[01])(?:/|$)`)

// DateFromURL extracts a /YYYY/MM/DD/ date embedded in an article path.
func DateFromURL(rawURL string) (time.Time, bool) {
	m := urlDatePattern.FindStringSubmatch(rawURL)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("2006/1/2", m[1]+"/"+m[2]+"/"+m[3])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
