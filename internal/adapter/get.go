package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-api-caller/internal/flatten"
	"github.com/go-resty/resty/v2"
)

// Get implements [APICaller].
func (c *HTTPCaller) Get(ctx context.Context, uri string, auth Auth, result any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, URI: uri, Auth: auth, Body: NoBody()}, result)
}

// GetWithQuery implements [APICaller]. The query object is flattened with
// [flatten.AppendQuery]; a query that yields no entries leaves uri as-is.
func (c *HTTPCaller) GetWithQuery(ctx context.Context, uri string, auth Auth, query any, result any) error {
	full, err := flatten.AppendQuery(uri, query)
	if err != nil {
		return &EncodeError{Kind: "query", Err: err}
	}

	return c.Get(ctx, full, auth, result)
}

// GetResponse implements [APICaller].
func (c *HTTPCaller) GetResponse(ctx context.Context, uri string, auth Auth) (*resty.Response, error) {
	return c.Send(ctx, Request{Method: http.MethodGet, URI: uri, Auth: auth, Body: NoBody()})
}
