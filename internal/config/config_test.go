package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.ChunkSize != 1800 || cfg.FPS != 4 || cfg.ECLevel != "M" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Defaults() {
		t.Fatalf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadPartialOverrideKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qrpipe.yaml")
	if err := os.WriteFile(path, []byte("fps: 10\n"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPS != 10 {
		t.Fatalf("FPS = %v, want 10", cfg.FPS)
	}
	if cfg.ChunkSize != 1800 || cfg.ECLevel != "M" || cfg.LogLevel != "info" {
		t.Fatalf("non-overridden fields drifted from defaults: %+v", cfg)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "qrpipe.yaml")
	want := &Config{ChunkSize: 900, FPS: 2.5, ECLevel: "H", LogLevel: "debug"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
