// Package utils provides small formatting helpers shared by the report
// renderers, the CLI and the article extractor.
package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// NotAvailable is shown in place of missing article metadata.
const NotAvailable = "N/A"

// WebsiteName returns the host of rawURL without a leading "www.".
// An unparsable URL yields "".
func WebsiteName(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// TruncateWords keeps the first n whitespace-separated words of s and
// appends "...". Empty input stays empty.
func TruncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	if n > 0 && len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ") + "..."
}

// JoinOrNA joins items with ", " or returns NotAvailable for an empty list.
func JoinOrNA(items []string) string {
	if len(items) == 0 {
		return NotAvailable
	}
	return strings.Join(items, ", ")
}

// FormatCount formats n with thousands separators (12,345).
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatScore formats a sentiment score with an explicit sign (+0.42).
func FormatScore(score float64) string {
	return fmt.Sprintf("%+.2f", score)
}
