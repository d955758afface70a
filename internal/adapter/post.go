package adapter

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Post implements [APICaller]. A nil body sends no payload.
func (c *HTTPCaller) Post(ctx context.Context, uri string, auth Auth, body any, result any) error {
	b, err := c.jsonBody(body)
	if err != nil {
		return err
	}

	return c.Do(ctx, Request{Method: http.MethodPost, URI: uri, Auth: auth, Body: b}, result)
}

// PostResponse implements [APICaller].
func (c *HTTPCaller) PostResponse(ctx context.Context, uri string, auth Auth, body any) (*resty.Response, error) {
	b, err := c.jsonBody(body)
	if err != nil {
		return nil, err
	}

	return c.Send(ctx, Request{Method: http.MethodPost, URI: uri, Auth: auth, Body: b})
}

// PostForm implements [APICaller].
func (c *HTTPCaller) PostForm(ctx context.Context, uri string, auth Auth, body any, result any) error {
	b, err := EncodeForm(body)
	if err != nil {
		return err
	}

	return c.Do(ctx, Request{Method: http.MethodPost, URI: uri, Auth: auth, Body: b}, result)
}

// PostFile implements [APICaller].
func (c *HTTPCaller) PostFile(ctx context.Context, uri string, auth Auth, upload Upload, result any) error {
	b, err := encodeMultipart(c.json, upload)
	if err != nil {
		return err
	}

	return c.Do(ctx, Request{Method: http.MethodPost, URI: uri, Auth: auth, Body: b}, result)
}

// PostQuery implements [APICaller].
func (c *HTTPCaller) PostQuery(ctx context.Context, uri string, auth Auth, result any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, URI: uri, Auth: auth, Body: NoBody()}, result)
}

// PostQueryResponse implements [APICaller].
func (c *HTTPCaller) PostQueryResponse(ctx context.Context, uri string, auth Auth) (*resty.Response, error) {
	return c.Send(ctx, Request{Method: http.MethodPost, URI: uri, Auth: auth, Body: NoBody()})
}

func (c *HTTPCaller) jsonBody(v any) (Body, error) {
	if v == nil {
		return NoBody(), nil
	}
	return encodeJSON(c.json, v)
}
