package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_BACKEND", "NOTIFIER", "NOTIFY_TIMEOUT", "NOTIFY_ASYNC", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.StorageBackend != BackendDynamoDB {
		t.Fatalf("expected dynamodb backend, got %q", cfg.StorageBackend)
	}
	if cfg.Notifier != NotifierNone {
		t.Fatalf("expected notifier none, got %q", cfg.Notifier)
	}
	if cfg.NotifyTimeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.NotifyTimeout)
	}
	if !cfg.NotifyAsync {
		t.Fatalf("expected async notify by default")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "MEMORY")
	t.Setenv("NOTIFY_TIMEOUT", "250ms")
	t.Setenv("NOTIFY_ASYNC", "false")

	cfg := FromEnv()
	if cfg.StorageBackend != BackendMemory {
		t.Fatalf("expected memory backend, got %q", cfg.StorageBackend)
	}
	if cfg.NotifyTimeout != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", cfg.NotifyTimeout)
	}
	if cfg.NotifyAsync {
		t.Fatalf("expected sync notify")
	}

	t.Setenv("NOTIFY_TIMEOUT", "nonsense")
	if got := FromEnv().NotifyTimeout; got != 5*time.Second {
		t.Fatalf("invalid duration should fall back, got %v", got)
	}
}
