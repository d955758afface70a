package adapter

import (
	"context"
	"net/http"
)

// DownloadFile implements [APICaller]. The status is validated like any
// other call; the body is returned byte for byte.
func (c *HTTPCaller) DownloadFile(ctx context.Context, uri string, auth Auth) ([]byte, error) {
	resp, err := c.execute(ctx, Request{Method: http.MethodGet, URI: uri, Auth: auth, Body: NoBody()}, true)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	if err = validateResponse(resp); err != nil {
		return nil, err
	}
	return readFile(resp)
}
