package logging

import (
	"testing"

	"github.com/diasporahq/diaspora-backend/internal/config"
)

func TestInitReturnsSameHandle(t *testing.T) {
	first, err := Init(config.LoggerSettings{Mode: "development"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == nil {
		t.Fatalf("want a logger handle")
	}

	// A second Init must not panic or rebuild; it hands back the existing
	// logger even with different settings.
	second, err := Init(config.LoggerSettings{Mode: "production"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("repeat initialization must return the existing handle")
	}
}
