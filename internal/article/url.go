package article

import (
	"net/url"
	"strings"
)

// ValidateURL checks that raw is an absolute http or https URL with a host.
func ValidateURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, &ValidationError{Input: raw, Reason: "empty"}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &ValidationError{Input: raw, Reason: "malformed"}
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	case "":
		return nil, &ValidationError{Input: raw, Reason: "missing scheme"}
	default:
		return nil, &ValidationError{Input: raw, Reason: "unsupported scheme " + u.Scheme}
	}
	host := u.Hostname()
	if host == "" {
		return nil, &ValidationError{Input: raw, Reason: "missing host"}
	}
	if !strings.Contains(host, ".") && host != "localhost" && !strings.Contains(host, ":") {
		return nil, &ValidationError{Input: raw, Reason: "host has no domain"}
	}
	return u, nil
}
