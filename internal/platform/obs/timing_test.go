package obs

import (
	"context"
	"testing"
)

func TestRequestID(t *testing.T) {
	if got := RequestID(context.Background()); got != "-" {
		t.Fatalf("RequestID(empty) = %q, want -", got)
	}

	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestID(ctx); got != "req-1" {
		t.Fatalf("RequestID = %q, want req-1", got)
	}

	ctx = WithRequestID(context.Background(), "")
	if got := RequestID(ctx); got == "-" || got == "" {
		t.Fatalf("RequestID = %q, want a generated id", got)
	}
}
