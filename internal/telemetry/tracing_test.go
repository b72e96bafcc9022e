package telemetry

import (
	"context"
	"testing"
)

func TestInitWithEmptyEndpointIsNoop(t *testing.T) {
	shutdown, err := Init(context.Background(), "", "aetheld")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestServerOptionIsNonNil(t *testing.T) {
	if ServerOption() == nil {
		t.Fatal("expected a non-nil grpc.ServerOption")
	}
}
