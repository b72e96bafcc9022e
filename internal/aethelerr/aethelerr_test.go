package aethelerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsUnwrapsWrappedChains(t *testing.T) {
	base := New(KindImage, "images/broken/index.json", errors.New("invalid character"))
	wrapped := fmt.Errorf("materializing rootfs: %w", base)

	if !Is(wrapped, KindImage) {
		t.Fatalf("expected Is(wrapped, KindImage) to be true")
	}
	if Is(wrapped, KindNetwork) {
		t.Fatalf("expected Is(wrapped, KindNetwork) to be false")
	}
}

func TestErrorMessageNamesSubject(t *testing.T) {
	err := New(KindImage, "broken", errors.New("unexpected end of JSON input"))
	got := err.Error()
	want := "image: broken: unexpected end of JSON input"
	if got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestNotFoundCarriesID(t *testing.T) {
	err := NotFound("nonexistent")
	if err.Kind != KindNotFound {
		t.Fatalf("expected KindNotFound, got %v", err.Kind)
	}
	if err.Subject != "nonexistent" {
		t.Fatalf("expected subject %q, got %q", "nonexistent", err.Subject)
	}
}
