package utils

import (
	"testing"
	"time"
)

func TestWebsiteName(t *testing.T) {
	tests := map[string]string{
		"https://www.example.com/news/a": "example.com",
		"http://news.bbc.co.uk/story":    "news.bbc.co.uk",
		"https://WWW.Example.com:8080/x": "example.com",
		"https://example.org":            "example.org",
		"not a url":                      "",
	}
	for in, want := range tests {
		if got := WebsiteName(in); got != want {
			t.Errorf("WebsiteName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"", 100, ""},
		{"one two three", 100, "one two three..."},
		{"one two three four", 2, "one two..."},
		{"  spaced\n\nout  words ", 5, "spaced out words..."},
	}
	for _, tt := range tests {
		if got := TruncateWords(tt.in, tt.n); got != tt.want {
			t.Errorf("TruncateWords(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestJoinOrNA(t *testing.T) {
	if got := JoinOrNA(nil); got != "N/A" {
		t.Errorf("JoinOrNA(nil) = %q", got)
	}
	if got := JoinOrNA([]string{"Ann Lee", "Bo Chan"}); got != "Ann Lee, Bo Chan" {
		t.Errorf("JoinOrNA = %q", got)
	}
}

func TestFormatCount(t *testing.T) {
	tests := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		12345:   "12,345",
		1234567: "1,234,567",
		-4200:   "-4,200",
		100000:  "100,000",
	}
	for in, want := range tests {
		if got := FormatCount(in); got != want {
			t.Errorf("FormatCount(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatScore(t *testing.T) {
	if got := FormatScore(0.4242); got != "+0.42" {
		t.Errorf("got %q", got)
	}
	if got := FormatScore(-0.5); got != "-0.50" {
		t.Errorf("got %q", got)
	}
}

func TestFormatPublishDate(t *testing.T) {
	if got := FormatPublishDate(nil); got != "N/A" {
		t.Errorf("nil date: got %q", got)
	}
	zero := time.Time{}
	if got := FormatPublishDate(&zero); got != "N/A" {
		t.Errorf("zero date: got %q", got)
	}
	d := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	if got := FormatPublishDate(&d); got != "March 05, 2024" {
		t.Errorf("got %q, want March 05, 2024", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-05T10:30:00Z", "2024-03-05"},
		{"2024-03-05T10:30:00+05:30", "2024-03-05"},
		{"2024-03-05", "2024-03-05"},
		{"Tue, 05 Mar 2024 10:30:00 GMT", "2024-03-05"},
		{"March 5, 2024", "2024-03-05"},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		if !ok {
			t.Errorf("ParseDate(%q) failed", tt.in)
			continue
		}
		if got.Format("2006-01-02") != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}

	for _, bad := range []string{"", "yesterday", "32/13/2024"} {
		if _, ok := ParseDate(bad); ok {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestDateFromURL(t *testing.T) {
	got, ok := DateFromURL("https://example.com/2024/03/05/markets-rally")
	if !ok || got.Format("2006-01-02") != "2024-03-05" {
		t.Errorf("got %v %v", got, ok)
	}
	if _, ok := DateFromURL("https://example.com/news/markets-rally"); ok {
		t.Error("expected no date")
	}
	if _, ok := DateFromURL("https://example.com/2024/13/05/x"); ok {
		t.Error("invalid month must not match")
	}
}
