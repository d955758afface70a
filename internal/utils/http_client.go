package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// The client is configured once at construction. Callers must not change
// client-level headers afterwards: per-call headers belong on the request
// returned by R().
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "https://api.example.com"})
//	resp, err := client.R().Get("/items")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures a new [HTTPClient].
type HTTPClientOptions struct {
	// BaseURL is prepended to relative request URLs. Empty leaves URLs as-is.
	BaseURL string

	// Timeout bounds every request. Zero means no client-side timeout.
	Timeout time.Duration

	// UserAgent, when set, is sent with every request.
	UserAgent string
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. Retries are disabled.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	c := resty.New().SetRetryCount(0)

	if base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"); base != "" {
		c.SetBaseURL(base)
	}
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		c.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPClient{Client: c}
}
