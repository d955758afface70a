// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, call
// identifiers and HTTP client initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallIDCtxKey is the key used to store the identifier of the outbound call
// in the context handed to the transport.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithCallID(ctx, "0190b6c4-...")
var CallIDCtxKey = contextKey("callID")

// WithCallID returns a copy of ctx carrying callID.
func WithCallID(ctx context.Context, callID string) context.Context {
	return context.WithValue(ctx, CallIDCtxKey, callID)
}

// GetCallIDFromContext retrieves the outbound call identifier from the context.
//
// Returns the call ID and an ok flag:
//   - ok == true: value is found and has the correct string type
//   - ok == false: value is missing or has an unexpected type
func GetCallIDFromContext(ctx context.Context) (string, bool) {
	callID, ok := ctx.Value(CallIDCtxKey).(string)
	return callID, ok
}
