package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_EmptyPathIsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Render.CellSize != 12 || cfg.Render.FrameDelayMs != 300 {
		t.Fatalf("unexpected render defaults: %+v", cfg.Render)
	}
	if cfg.Server.Addr != ":8077" {
		t.Fatalf("server addr default = %q", cfg.Server.Addr)
	}
	if cfg.Discord.Enabled {
		t.Fatal("discord should be off by default")
	}
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "render:\n  cellSize: 20\nserver:\n  addr: \":9000\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Render.CellSize != 20 {
		t.Fatalf("cellSize = %d, want 20", cfg.Render.CellSize)
	}
	// Untouched fields keep their defaults.
	if cfg.Render.FrameDelayMs != 300 {
		t.Fatalf("frameDelayMs = %d, want default 300", cfg.Render.FrameDelayMs)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("addr = %q, want :9000", cfg.Server.Addr)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("explicit missing file should be an error")
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero cell size":       "render:\n  cellSize: 0\n",
		"discord needs token":  "discord:\n  enabled: true\n",
		"zero ticks per step":  "viewer:\n  ticksPerStep: 0\n",
		"negative frame delay": "render:\n  frameDelayMs: -5\n",
	}
	for name, data := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("render: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Fatalf("want wrapped parse error, got %v", err)
	}
}
