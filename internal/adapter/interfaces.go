// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the generic HTTP calling layer that third-party
// API integrations are built on.
//
// The primary abstraction is [APICaller]. Every verb method funnels through
// the same pipeline: per-call headers are derived from an [Auth] directive,
// the payload is encoded into a [Body], the request is executed by resty, and
// the response is validated and decoded.
//
// Non-success responses surface as [*ServerError]. Its Unwrap method maps
// well-known status codes to the sentinel values in errors.go so callers can
// use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_caller_mock.go -package=mock

// APICaller defines the outbound calling surface shared by integrations.
//
// A nil auth means ambient credentials: no explicit Authorization header is
// sent. A nil result means the response is validated but its body is
// discarded.
type APICaller interface {
	// Get sends GET uri and decodes the response into result.
	Get(ctx context.Context, uri string, auth Auth, result any) error

	// GetWithQuery flattens query into a query string, appends it to uri and
	// sends GET.
	GetWithQuery(ctx context.Context, uri string, auth Auth, query any, result any) error

	// GetResponse sends GET uri and returns the buffered response without
	// checking its status.
	GetResponse(ctx context.Context, uri string, auth Auth) (*resty.Response, error)

	// Post sends body as JSON.
	Post(ctx context.Context, uri string, auth Auth, body any, result any) error

	// PostResponse sends body as JSON and returns the buffered response
	// without checking its status.
	PostResponse(ctx context.Context, uri string, auth Auth, body any) (*resty.Response, error)

	// PostForm flattens body into an application/x-www-form-urlencoded
	// payload.
	PostForm(ctx context.Context, uri string, auth Auth, body any, result any) error

	// PostFile uploads a file as multipart/form-data, optionally with a JSON
	// "data" sidecar and extra form fields.
	PostFile(ctx context.Context, uri string, auth Auth, upload Upload, result any) error

	// PostQuery sends POST without a body; parameters travel in uri.
	PostQuery(ctx context.Context, uri string, auth Auth, result any) error

	// PostQueryResponse is PostQuery returning the unchecked response.
	PostQueryResponse(ctx context.Context, uri string, auth Auth) (*resty.Response, error)

	// Put sends body as JSON.
	Put(ctx context.Context, uri string, auth Auth, body any, result any) error

	// PutResponse sends body as JSON and returns the buffered response
	// without checking its status.
	PutResponse(ctx context.Context, uri string, auth Auth, body any) (*resty.Response, error)

	// PutQuery sends PUT without a body; parameters travel in uri.
	PutQuery(ctx context.Context, uri string, auth Auth, result any) error

	// Patch sends PATCH without a body using ambient credentials.
	Patch(ctx context.Context, uri string, result any) error

	// Delete sends DELETE uri.
	Delete(ctx context.Context, uri string, auth Auth, result any) error

	// DownloadFile sends GET uri and returns the raw response bytes.
	DownloadFile(ctx context.Context, uri string, auth Auth) ([]byte, error)

	// Send executes r and returns the buffered response without checking its
	// status.
	Send(ctx context.Context, r Request) (*resty.Response, error)

	// Do executes r, validates the status and decodes the body into result.
	Do(ctx context.Context, r Request, result any) error
}
