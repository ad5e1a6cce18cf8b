package geo

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FallbackCountry is returned when no detection path succeeds
const FallbackCountry = "US"

// postSovietCountries map to the Russian locale
var postSovietCountries = []string{
	"RU", "BY", "KZ", "KG", "TJ", "TM", "UZ", "AM", "AZ", "GE", "MD", "UA",
}

// LocaleForCountry maps an ISO2 country code to a site locale.
// A best-effort UX nicety, not a correctness boundary.
func LocaleForCountry(code string) string {
	if slices.Contains(postSovietCountries, strings.ToUpper(code)) {
		return "ru"
	}
	return "en"
}

// Client resolves the caller's country, preferring proxy-provided headers
// and falling back to an outbound IP lookup with a short timeout
type Client struct {
	providerURL string
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewClient creates a geo client. providerURL is the lookup service base
// (e.g. https://ipapi.co); timeout bounds the outbound request.
func NewClient(providerURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		providerURL: strings.TrimRight(providerURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// CountryFromRequest returns the ISO2 country code for the request origin.
// It never fails: every path degrades to FallbackCountry.
func (c *Client) CountryFromRequest(r *http.Request) string {
	// CDN/proxy headers are authoritative when present
	for _, header := range []string{"X-Vercel-IP-Country", "CF-IPCountry", "X-Country-Code"} {
		if country := r.Header.Get(header); country != "" {
			return strings.ToUpper(country)
		}
	}

	ip := clientIP(r)

	// Local development has no usable origin; the site's audience defaults
	// to Russian
	if ip == "127.0.0.1" || ip == "::1" || ip == "" {
		return "RU"
	}

	if country := c.lookup(r.Context(), ip); country != "" {
		return country
	}

	return FallbackCountry
}

// lookup queries the provider for a two-letter country code.
// Failures and timeouts return "" and are logged, never surfaced.
func (c *Client) lookup(ctx context.Context, ip string) string {
	url := fmt.Sprintf("%s/%s/country_code/", c.providerURL, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "terteryan-website/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("geo lookup failed", zap.String("ip", ip), zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16))
	if err != nil {
		return ""
	}

	country := strings.TrimSpace(string(body))
	if len(country) != 2 {
		return ""
	}
	return strings.ToUpper(country)
}

// clientIP extracts the originating IP from forwarding headers or the
// connection itself
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
