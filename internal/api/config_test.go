package api

import (
	"testing"
	"time"
)

func TestLoadRetryConfig_Defaults(t *testing.T) {
	cfg, err := LoadRetryConfig()
	if err != nil {
		t.Fatalf("LoadRetryConfig returned error: %v", err)
	}
	if cfg.MaxAttempts != 4 {
		t.Errorf("MaxAttempts = %d, want 4", cfg.MaxAttempts)
	}
	if cfg.BaseBackoff != 100*time.Millisecond {
		t.Errorf("BaseBackoff = %v, want 100ms", cfg.BaseBackoff)
	}
	if cfg.MaxInterval != 5*time.Second {
		t.Errorf("MaxInterval = %v, want 5s", cfg.MaxInterval)
	}
}

func TestLoadRetryConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FEEDWAY_RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("FEEDWAY_RETRY_BASE_BACKOFF", "250ms")

	cfg, err := LoadRetryConfig()
	if err != nil {
		t.Fatalf("LoadRetryConfig returned error: %v", err)
	}
	if cfg.MaxAttempts != 7 {
		t.Errorf("MaxAttempts = %d, want 7", cfg.MaxAttempts)
	}
	if cfg.BaseBackoff != 250*time.Millisecond {
		t.Errorf("BaseBackoff = %v, want 250ms", cfg.BaseBackoff)
	}
}
