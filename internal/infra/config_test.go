package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SNAPSHOT_PATH", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.SnapshotPath != "./snapshots" {
		t.Fatalf("SnapshotPath = %q", cfg.SnapshotPath)
	}
	if cfg.CopyProvider != "gemini" {
		t.Fatalf("CopyProvider = %q", cfg.CopyProvider)
	}
	if cfg.ExportScale != 2 {
		t.Fatalf("ExportScale = %d, want 2", cfg.ExportScale)
	}
	if cfg.SettleDelay != 300*time.Millisecond {
		t.Fatalf("SettleDelay = %v", cfg.SettleDelay)
	}
	if cfg.GeminiAPIKey != "" {
		t.Fatalf("GeminiAPIKey should default to empty, got %q", cfg.GeminiAPIKey)
	}
}

func TestLoadConfigHonorsOverrides(t *testing.T) {
	t.Setenv("PORT", "1919")
	t.Setenv("EXPORT_SCALE", "1")
	t.Setenv("EXPORT_SETTLE_MS", "0")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://studio.example.com ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "1919" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.ExportScale != 1 {
		t.Fatalf("ExportScale = %d", cfg.ExportScale)
	}
	if cfg.SettleDelay != 0 {
		t.Fatalf("SettleDelay = %v, want 0", cfg.SettleDelay)
	}
	want := []string{"http://localhost:5173", "https://studio.example.com"}
	if len(cfg.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %#v", cfg.CORSOrigins)
	}
	for i := range want {
		if cfg.CORSOrigins[i] != want[i] {
			t.Fatalf("CORSOrigins[%d] = %q, want %q", i, cfg.CORSOrigins[i], want[i])
		}
	}
}

func TestLoadConfigIgnoresBadInt(t *testing.T) {
	t.Setenv("EXPORT_SCALE", "huge")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ExportScale != 2 {
		t.Fatalf("ExportScale = %d, want default 2", cfg.ExportScale)
	}
}
