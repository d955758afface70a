package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestCallIDGenerator_NewCallIDIsV7(t *testing.T) {
	g := NewCallIDGenerator()

	id, err := uuid.Parse(g.NewCallID())
	if err != nil {
		t.Fatalf("expected a valid uuid: %v", err)
	}
	if id.Version() != 7 {
		t.Errorf("expected version 7, got %d", id.Version())
	}
}

func TestCallIDGenerator_Unique(t *testing.T) {
	g := NewCallIDGenerator()
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := g.NewCallID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate call id %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestCallIDGenerator_CallIDFor(t *testing.T) {
	g := NewCallIDGenerator()

	if got := g.CallIDFor(WithCallID(context.Background(), "call-7")); got != "call-7" {
		t.Errorf("expected call id from context, got %q", got)
	}

	if got := g.CallIDFor(WithCallID(context.Background(), "")); got == "" {
		t.Error("expected a generated call id for an empty context value")
	}

	if _, err := uuid.Parse(g.CallIDFor(context.Background())); err != nil {
		t.Errorf("expected a generated uuid, got error: %v", err)
	}
}
