package demo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-theft-auto/dockspace/demo"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := demo.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}

	def := demo.DefaultConfig()
	if cfg != def {
		t.Errorf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadConfigParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dockspace.yaml")
	data := `
window:
  width: 1920
  height: 1080
  vsync: false
display_scale: 2.0
clear_color: [0.2, 0.3, 0.4, 1.0]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := demo.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("window = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.VSync {
		t.Error("vsync should be off")
	}
	if cfg.DisplayScale != 2.0 {
		t.Errorf("display_scale = %v", cfg.DisplayScale)
	}
	if cfg.ClearColor != [4]float32{0.2, 0.3, 0.4, 1.0} {
		t.Errorf("clear_color = %v", cfg.ClearColor)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dockspace.yaml")
	if err := os.WriteFile(path, []byte("display_scale: 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := demo.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.DisplayScale != 1.5 {
		t.Errorf("display_scale = %v, want 1.5", cfg.DisplayScale)
	}
	def := demo.DefaultConfig()
	if cfg.Window != def.Window {
		t.Errorf("window = %+v, want defaults", cfg.Window)
	}
	if cfg.ClearColor != def.ClearColor {
		t.Errorf("clear_color = %v, want default", cfg.ClearColor)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dockspace.yaml")
	if err := os.WriteFile(path, []byte("window: [not a mapping\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := demo.LoadConfig(path); err == nil {
		t.Fatal("malformed YAML should be an error")
	}
}

func TestLoadConfigClampsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dockspace.yaml")
	data := `
window:
  width: -100
  height: 0
display_scale: -1
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := demo.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	def := demo.DefaultConfig()
	if cfg.Window.Width != def.Window.Width || cfg.Window.Height != def.Window.Height {
		t.Errorf("window = %dx%d, want defaults", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.DisplayScale != 1.0 {
		t.Errorf("display_scale = %v, want fallback to 1", cfg.DisplayScale)
	}
}
