package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-api-caller/internal/config"
	"github.com/MKhiriev/go-api-caller/internal/logger"
	"github.com/MKhiriev/go-api-caller/internal/utils"
	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

// Request is a single outbound call. Body must already be encoded; use the
// Encode* helpers or [NoBody].
type Request struct {
	Method string
	URI    string
	Auth   Auth
	Body   Body
}

// HTTPCaller is the resty implementation of [APICaller]. It is safe for
// concurrent use: the shared client is never modified after construction
// and every call builds its own header set.
type HTTPCaller struct {
	client  *utils.HTTPClient
	headers http.Header
	json    jsoniter.API
	ids     *utils.CallIDGenerator

	logger *logger.Logger
}

// Option customises an [HTTPCaller].
type Option func(*HTTPCaller)

// WithJSON sets the serializer used for JSON bodies, the upload sidecar and
// response decoding.
func WithJSON(api jsoniter.API) Option {
	return func(c *HTTPCaller) {
		if api != nil {
			c.json = api
		}
	}
}

// NewHTTPCaller constructs an [HTTPCaller] for adapterCfg. Relative request
// URIs resolve against adapterCfg.BaseURL; adapterCfg.DefaultHeaders are
// copied into every request before the per-call auth headers.
func NewHTTPCaller(adapterCfg config.ClientAdapter, log *logger.Logger, opts ...Option) *HTTPCaller {
	if log == nil {
		log = logger.Nop()
	}

	headers := make(http.Header, len(adapterCfg.DefaultHeaders))
	for name, value := range adapterCfg.DefaultHeaders {
		headers.Set(name, value)
	}

	c := &HTTPCaller{
		client: utils.NewHTTPClient(utils.HTTPClientOptions{
			BaseURL:   adapterCfg.BaseURL,
			Timeout:   adapterCfg.RequestTimeout,
			UserAgent: adapterCfg.UserAgent,
		}),
		headers: headers,
		json:    jsoniter.ConfigCompatibleWithStandardLibrary,
		ids:     utils.NewCallIDGenerator(),
		logger:  log,
	}
	for _, opt := range opts {
		opt(c)
	}

	log.Debug().Str("base_url", adapterCfg.BaseURL).Msg("http caller created")
	return c
}

// Send implements [APICaller].
func (c *HTTPCaller) Send(ctx context.Context, r Request) (*resty.Response, error) {
	return c.execute(ctx, r, false)
}

// Do implements [APICaller].
func (c *HTTPCaller) Do(ctx context.Context, r Request, result any) error {
	resp, err := c.execute(ctx, r, true)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if err = validateResponse(resp); err != nil {
		return err
	}
	return decodeResponse(c.json, resp, result)
}

// execute runs r. With stream set the response body is left unread for the
// caller, who must close it.
func (c *HTTPCaller) execute(ctx context.Context, r Request, stream bool) (*resty.Response, error) {
	callID := c.ids.CallIDFor(ctx)
	ctx = utils.WithCallID(ctx, callID)

	l := c.logger.GetChildLogger()
	l.UpdateContext(func(zc zerolog.Context) zerolog.Context {
		return zc.Str("call_id", callID)
	})
	ctx = l.WithContext(ctx)

	req := c.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(stream)
	for name, values := range c.headerFor(r.Auth) {
		req.Header[name] = values
	}
	r.Body.attach(req)

	start := time.Now()
	resp, err := req.Execute(r.Method, r.URI)
	duration := time.Since(start)

	if err != nil {
		l.Error().Err(err).
			Str("method", r.Method).
			Str("uri", r.URI).
			Str("auth", authMode(r.Auth)).
			Dur("duration", duration).
			Msg("outbound call failed")
		if stream {
			closeBody(resp)
		}
		return nil, fmt.Errorf("%s %s: %w", r.Method, r.URI, err)
	}

	l.Debug().
		Str("method", r.Method).
		Str("uri", r.URI).
		Str("auth", authMode(r.Auth)).
		Int("status", resp.StatusCode()).
		Dur("duration", duration).
		Send()

	return resp, nil
}

// headerFor returns a fresh header set: the configured defaults followed by
// the auth headers of this call.
func (c *HTTPCaller) headerFor(a Auth) http.Header {
	h := c.headers.Clone()
	if h == nil {
		h = http.Header{}
	}
	ApplyAuth(h, a)
	return h
}

func closeBody(resp *resty.Response) {
	if resp == nil {
		return
	}
	if raw := resp.RawBody(); raw != nil {
		_ = raw.Close()
	}
}
