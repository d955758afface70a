package utils

import (
	"context"

	"github.com/google/uuid"
)

// CallIDGenerator issues the identifiers attached to outbound API calls.
// Each identifier appears as the "call_id" field of every log entry the
// call produces and can be overridden per call with [WithCallID].
type CallIDGenerator struct{}

func NewCallIDGenerator() *CallIDGenerator {
	return &CallIDGenerator{}
}

// NewCallID returns a UUIDv7, so identifiers sort by the time the call
// started. A random UUIDv4 is used if a v7 cannot be produced.
func (g *CallIDGenerator) NewCallID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// CallIDFor returns the call ID carried by ctx, or a fresh one.
func (g *CallIDGenerator) CallIDFor(ctx context.Context) string {
	if id, ok := GetCallIDFromContext(ctx); ok && id != "" {
		return id
	}
	return g.NewCallID()
}
