package article

import (
	"errors"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"https://example.com/news/story", true},
		{"http://news.example.co.uk/a?b=c", true},
		{"  https://example.com  ", true},
		{"http://localhost:8080/x", true},
		{"http://127.0.0.1:9000/article", true},
		{"", false},
		{"example.com/story", false},
		{"ftp://example.com/file", false},
		{"https://", false},
		{"https://intranet/page", false},
		{"://bad", false},
	}
	for _, tt := range tests {
		_, err := ValidateURL(tt.in)
		if tt.valid && err != nil {
			t.Errorf("ValidateURL(%q): unexpected error %v", tt.in, err)
		}
		if !tt.valid {
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("ValidateURL(%q): expected *ValidationError, got %v", tt.in, err)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	fe := &FetchError{URL: "https://example.com", StatusCode: 404, Status: "404 Not Found"}
	if got := fe.Error(); got != "fetch https://example.com: HTTP 404 Not Found" {
		t.Errorf("FetchError: %q", got)
	}
	inner := errors.New("connection refused")
	fe = &FetchError{URL: "https://example.com", Err: inner}
	if !errors.Is(fe, inner) {
		t.Error("FetchError should unwrap to its cause")
	}
	pe := &ParseError{URL: "https://example.com", Reason: "no article text found"}
	if got := pe.Error(); got != "parse https://example.com: no article text found" {
		t.Errorf("ParseError: %q", got)
	}
}
