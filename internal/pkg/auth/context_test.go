package auth

import (
	"context"
	"testing"
)

func TestSessionContextRoundTrip(t *testing.T) {
	ctx := ContextWithSession(context.Background(), 99, "bearer-token")

	id, ok := CustomerFromContext(ctx)
	if !ok || id != 99 {
		t.Fatalf("expected customer 99, got %d (ok=%v)", id, ok)
	}

	token, ok := TokenFromContext(ctx)
	if !ok || token != "bearer-token" {
		t.Fatalf("expected token to round-trip, got %q (ok=%v)", token, ok)
	}
}

func TestSessionContextAbsent(t *testing.T) {
	if _, ok := CustomerFromContext(context.Background()); ok {
		t.Fatal("expected no customer on bare context")
	}
	if _, ok := TokenFromContext(context.Background()); ok {
		t.Fatal("expected no token on bare context")
	}
}
