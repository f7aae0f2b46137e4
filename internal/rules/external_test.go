package rules

import (
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestLoadExternal_NoDirectories(t *testing.T) {
	m, err := LoadExternal(nil, hclog.NewNullLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Close()
}

func TestManagerClose_Idempotent(t *testing.T) {
	// Close runs both deferred and explicitly before an early exit, so
	// a second call must be a no-op.
	m := &Manager{}
	m.Close()
	m.Close()
}
