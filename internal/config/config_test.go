package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParseKeepsDefaultsForOmittedFields(t *testing.T) {
	cfg, err := Parse([]byte("grid:\n  size: 5\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Grid.Size != 5 {
		t.Errorf("Grid.Size = %d, want 5", cfg.Grid.Size)
	}
	if cfg.Grid.WinValue != 2048 || cfg.Spawn.InitialTiles != 1 {
		t.Errorf("omitted fields lost their defaults: %+v", cfg)
	}

	empty, err := Parse(nil)
	if err != nil || !reflect.DeepEqual(empty, Default()) {
		t.Errorf("Parse(nil) = %+v, %v; want defaults", empty, err)
	}

	if _, err := Parse([]byte("grid:\n  sise: 5\n")); err == nil {
		t.Error("unknown field should be rejected")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"size too small", func(c *Config) { c.Grid.Size = 1 }, false},
		{"size too large", func(c *Config) { c.Grid.Size = 17 }, false},
		{"win value not power of two", func(c *Config) { c.Grid.WinValue = 1000 }, false},
		{"win value too small", func(c *Config) { c.Grid.WinValue = 2 }, false},
		{"negative initial tiles", func(c *Config) { c.Spawn.InitialTiles = -1 }, false},
		{"initial tiles fill board", func(c *Config) { c.Spawn.InitialTiles = 16 }, true},
		{"initial tiles exceed board", func(c *Config) { c.Spawn.InitialTiles = 17 }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"empty log level", func(c *Config) { c.Log.Level = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  size: 6\n  win_value: 4096\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if cfg.Grid.Size != 6 || cfg.Grid.WinValue != 4096 {
		t.Errorf("Grid = %+v, want size 6 win 4096", cfg.Grid)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("malformed custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  size: 99\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("out-of-range file: err = %v, want ErrInvalid", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".t2048")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("spawn:\n  require_change: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != filepath.Join(dir, "config.yaml") {
		t.Errorf("source = %q, want user config", source)
	}
	if !cfg.Spawn.RequireChange {
		t.Error("user config not applied")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, want %q", source, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("T2048_GRID_SIZE", "5")
	t.Setenv("T2048_WIN_VALUE", "1") // unprefixed by section, must be ignored
	t.Setenv("T2048_GRID_WIN_VALUE", "512")
	t.Setenv("T2048_SPAWN_INITIAL_TILES", "2")
	t.Setenv("T2048_LOG_LEVEL", "debug")

	cfg, _, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Config{
		Grid:  GridConfig{Size: 5, WinValue: 512},
		Spawn: SpawnConfig{InitialTiles: 2},
		Log:   LogConfig{Level: "debug"},
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestEnvOverrideValidated(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("T2048_GRID_SIZE", "1")

	if _, _, err := Load(""); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() err = %v, want ErrInvalid", err)
	}

	t.Setenv("T2048_GRID_SIZE", "four")
	if _, _, err := Load(""); err == nil {
		t.Error("non-numeric env override should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil || !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Parse(Marshal(Default())) = %+v, %v", cfg, err)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for v, want := range map[int]bool{0: false, 1: true, 2: true, 3: false, 2048: true, -2: false, 1000: false} {
		if got := IsPowerOfTwo(v); got != want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", v, got, want)
		}
	}
}
