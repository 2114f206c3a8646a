package mongo

import (
	"testing"
	"time"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{URI: "mongodb://localhost:27017"}.withDefaults()
	if cfg.Database != defaultDatabase {
		t.Fatalf("expected database %q, got %q", defaultDatabase, cfg.Database)
	}
	if cfg.Timeout != defaultTimeout {
		t.Fatalf("expected timeout %s, got %s", defaultTimeout, cfg.Timeout)
	}

	cfg = Config{URI: "mongodb://localhost:27017", Database: "portal_test", Timeout: time.Second}.withDefaults()
	if cfg.Database != "portal_test" {
		t.Fatalf("explicit database overridden: %q", cfg.Database)
	}
	if cfg.Timeout != time.Second {
		t.Fatalf("explicit timeout overridden: %s", cfg.Timeout)
	}
}
