package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"network", ErrNetwork},
		{"unauthorized", ErrUnauthorized},
		{"server", ErrServer},
		{"validation", ErrValidation},
		{"not found", ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestWrappedSentinelClassifies(t *testing.T) {
	wrapped := fmt.Errorf("%w: order service returned 503", ErrServer)
	if !stdErrors.Is(wrapped, ErrServer) {
		t.Fatalf("expected wrapped error to classify as server failure")
	}
	if stdErrors.Is(wrapped, ErrNetwork) {
		t.Fatalf("wrapped server error must not classify as network failure")
	}
}
