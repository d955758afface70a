package adapter

import (
	"context"
	"net/http"
)

// Patch implements [APICaller]. Only ambient credentials are supported.
func (c *HTTPCaller) Patch(ctx context.Context, uri string, result any) error {
	return c.Do(ctx, Request{Method: http.MethodPatch, URI: uri, Auth: Ambient(), Body: NoBody()}, result)
}

// Delete implements [APICaller].
func (c *HTTPCaller) Delete(ctx context.Context, uri string, auth Auth, result any) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, URI: uri, Auth: auth, Body: NoBody()}, result)
}
