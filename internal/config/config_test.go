package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// No config file exists in the test working directory, so Load falls
	// back to defaults.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Mode != "release" {
		t.Errorf("Mode = %q, want release", cfg.Mode)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.ReadLimit != 32768 {
		t.Errorf("ReadLimit = %d, want 32768", cfg.ReadLimit)
	}
	if cfg.PingPeriod != 54*time.Second {
		t.Errorf("PingPeriod = %v, want 54s", cfg.PingPeriod)
	}
	if cfg.SendBuffer != 32 {
		t.Errorf("SendBuffer = %d, want 32", cfg.SendBuffer)
	}
}
