package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DefaultRequestTimeout is applied when no request timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

// ClientAdapter holds network settings used by the outbound transport layer.
type ClientAdapter struct {
	// BaseURL is the normalised base address of the third-party API.
	BaseURL string
	// RequestTimeout is the timeout for every outbound call.
	RequestTimeout time.Duration
	// UserAgent is sent with every request when non-empty.
	UserAgent string
	// DefaultHeaders are copied into every request.
	DefaultHeaders map[string]string
}

// ClientAuth contains the credentials used for explicit header auth.
type ClientAuth struct {
	// BearerToken may be empty when the integration relies on ambient
	// credentials.
	BearerToken string
}

// ClientLog contains logging settings.
type ClientLog struct {
	// Level is the minimum level written to the log.
	Level string
}

// ClientConfig is the top-level configuration of an integration client
// assembled from [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the transport address, timeout and default headers.
	Adapter ClientAdapter
	// Auth contains explicit credentials.
	Auth ClientAuth
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, applies defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UserAgent:      cfg.Adapter.UserAgent,
			DefaultHeaders: cfg.Adapter.DefaultHeaders,
		},
		Auth: ClientAuth{
			BearerToken: strings.TrimSpace(cfg.Auth.BearerToken),
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Log.Level == "" {
		clientCfg.Log.Level = "info"
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	baseURL, err := normalizeBaseURL(clientCfg.Adapter.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}
	clientCfg.Adapter.BaseURL = baseURL

	return clientCfg, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
