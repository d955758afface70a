package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// headerList collects repeated -H "Name: value" flags.
// It implements the flag.Value interface.
type headerList map[string]string

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-u base URL of the third-party API
//	-t/-request-timeout request timeout (e.g., "30s", "1m")
//	-user-agent User-Agent header value
//	-H default header in form "Name: value" (repeatable)
//	-token bearer token
//	-log-level log level (trace, debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("api-caller", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var baseURL string
	var requestTimeout time.Duration
	var userAgent string
	headers := headerList{}
	var bearerToken string
	var logLevel string
	var jsonConfigPath string

	fs.StringVar(&baseURL, "u", "", "Base URL of the third-party API")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (alias)")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent header value")
	fs.Var(&headers, "H", "Default header \"Name: value\" (repeatable)")
	fs.StringVar(&bearerToken, "token", "", "Bearer token")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
			UserAgent:      userAgent,
		},
		Auth: Auth{
			BearerToken: bearerToken,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}
	if len(headers) > 0 {
		cfg.Adapter.DefaultHeaders = headers
	}

	return cfg, nil
}

// String renders the collected headers as "Name: value" pairs.
func (h *headerList) String() string {
	if h == nil {
		return ""
	}

	pairs := make([]string, 0, len(*h))
	for name, value := range *h {
		pairs = append(pairs, name+": "+value)
	}
	return strings.Join(pairs, ", ")
}

// Set parses one "Name: value" pair. The name must be non-empty.
func (h *headerList) Set(s string) error {
	name, value, ok := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("need header in a form `Name: value`, got %q", s)
	}

	if *h == nil {
		*h = headerList{}
	}
	(*h)[name] = strings.TrimSpace(value)
	return nil
}
