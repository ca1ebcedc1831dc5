package article

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/seenimoa/newsnugget/internal/infra"
)

// DefaultUserAgent is sent with every outbound request unless configured.
const DefaultUserAgent = "Mozilla/5.0 (compatible; NewsNugget/1.0; +https://github.com/seenimoa/newsnugget)"

// Default limits for outbound requests.
const (
	DefaultTimeout      = 20 * time.Second
	DefaultMaxBodyBytes = 5 << 20
)

// FetchOptions tunes the HTTP side of the extractor and feed reader.
type FetchOptions struct {
	Timeout       time.Duration
	UserAgent     string
	MaxBodyBytes  int64
	RatePerSecond int           // per host; <= 0 disables limiting
	CacheTTL      time.Duration // <= 0 disables caching
	Client        *http.Client  // optional; overrides Timeout

	// AllowPrivateHosts permits loopback, private and link-local targets,
	// which are refused by default.
	AllowPrivateHosts bool
}

func (o FetchOptions) withDefaults() FetchOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if o.Client == nil {
		o.Client = &http.Client{Timeout: o.Timeout}
		if !o.AllowPrivateHosts {
			o.Client.Transport = guardedTransport()
		}
	}
	return o
}

// errPrivateAddress is returned by the dialer for blocked targets.
var errPrivateAddress = errors.New("private or loopback address")

const reasonPrivateHost = "host is a private, loopback or link-local address"

// guardedTransport is http.DefaultTransport with a dialer that refuses
// blocked addresses after DNS resolution, which also covers redirects.
func guardedTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
		Control: func(_, address string, _ syscall.RawConn) error {
			ap, err := netip.ParseAddrPort(address)
			if err != nil {
				return err
			}
			if blockedAddr(ap.Addr()) {
				return errPrivateAddress
			}
			return nil
		},
	}
	t.DialContext = dialer.DialContext
	return t
}

func blockedAddr(a netip.Addr) bool {
	a = a.Unmap()
	return a.IsLoopback() || a.IsPrivate() || a.IsUnspecified() ||
		a.IsLinkLocalUnicast() || a.IsLinkLocalMulticast() || a.IsInterfaceLocalMulticast()
}

// blockedHost reports whether u names localhost or a blocked IP literal.
func blockedHost(u *url.URL) bool {
	host := strings.ToLower(strings.TrimSuffix(u.Hostname(), "."))
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}
	a, err := netip.ParseAddr(host)
	return err == nil && blockedAddr(a)
}

// fetcher performs rate-limited GET requests with a bounded body size.
type fetcher struct {
	client       *http.Client
	userAgent    string
	maxBody      int64
	limiter      *infra.HostLimiter
	allowPrivate bool
}

func newFetcher(o FetchOptions) *fetcher {
	return &fetcher{
		client:       o.Client,
		userAgent:    o.UserAgent,
		maxBody:      o.MaxBodyBytes,
		limiter:      infra.NewHostLimiter(o.RatePerSecond),
		allowPrivate: o.AllowPrivateHosts,
	}
}

// get downloads rawURL and returns the response body.
func (f *fetcher) get(ctx context.Context, rawURL, accept string) ([]byte, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}
	if !f.allowPrivate && blockedHost(u) {
		return nil, &ValidationError{Input: rawURL, Reason: reasonPrivateHost}
	}
	if err := f.limiter.Wait(ctx, u.Host); err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, errPrivateAddress) {
			return nil, &ValidationError{Input: rawURL, Reason: reasonPrivateHost}
		}
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return nil, &FetchError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(body)) > f.maxBody {
		return nil, &FetchError{URL: rawURL, Err: fmt.Errorf("response body exceeds %d bytes", f.maxBody)}
	}
	return body, nil
}
