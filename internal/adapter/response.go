package adapter

import (
	"bytes"
	"io"
	"reflect"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
)

// validateResponse turns a status outside 200-299 into a *ServerError.
// A failure to read the error body is recorded on the error, never returned.
func validateResponse(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	serverErr := &ServerError{StatusCode: resp.StatusCode()}
	body, err := readBody(resp)
	if err != nil {
		serverErr.ReadErr = err
		return serverErr
	}
	serverErr.Body = string(body)

	return serverErr
}

// decodeResponse reads a validated body into out. A nil out discards the
// body and a blank body leaves out untouched. Only a *string target falls
// back to the raw text when the body is not a JSON string.
func decodeResponse(api jsoniter.API, resp *resty.Response, out any) error {
	body, err := readBody(resp)
	if err != nil {
		return &DecodeError{Target: targetName(out), Err: err}
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if s, ok := out.(*string); ok {
		if err := api.Unmarshal(body, s); err != nil {
			*s = string(body)
		}
		return nil
	}

	if err := api.Unmarshal(body, out); err != nil {
		return &DecodeError{Target: targetName(out), Err: err}
	}
	return nil
}

// readFile copies a validated body without decoding it.
func readFile(resp *resty.Response) ([]byte, error) {
	body, err := readBody(resp)
	if err != nil {
		return nil, &DecodeError{Target: "[]byte", Err: err}
	}
	return body, nil
}

func readBody(resp *resty.Response) ([]byte, error) {
	raw := resp.RawBody()
	if raw == nil {
		return nil, ErrNoResponseBody
	}
	return io.ReadAll(raw)
}

func targetName(out any) string {
	if out == nil {
		return "<nil>"
	}
	return reflect.TypeOf(out).String()
}
