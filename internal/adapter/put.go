package adapter

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Put implements [APICaller]. A nil body sends no payload.
func (c *HTTPCaller) Put(ctx context.Context, uri string, auth Auth, body any, result any) error {
	b, err := c.jsonBody(body)
	if err != nil {
		return err
	}

	return c.Do(ctx, Request{Method: http.MethodPut, URI: uri, Auth: auth, Body: b}, result)
}

// PutResponse implements [APICaller].
func (c *HTTPCaller) PutResponse(ctx context.Context, uri string, auth Auth, body any) (*resty.Response, error) {
	b, err := c.jsonBody(body)
	if err != nil {
		return nil, err
	}

	return c.Send(ctx, Request{Method: http.MethodPut, URI: uri, Auth: auth, Body: b})
}

// PutQuery implements [APICaller].
func (c *HTTPCaller) PutQuery(ctx context.Context, uri string, auth Auth, result any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, URI: uri, Auth: auth, Body: NoBody()}, result)
}
