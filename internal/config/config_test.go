// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("color scheme = %q, want auto", cfg.UI.ColorScheme)
	}
	if cfg.UI.Verbose {
		t.Error("verbose defaulted to true")
	}
	if cfg.FigfileName != "" {
		t.Errorf("figfile name = %q, want empty", cfg.FigfileName)
	}
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	content := `
figfile_name: "predicates.cue"

ui: {
	color_scheme: "dark"
	verbose: true
}
`
	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FigfileName != "predicates.cue" {
		t.Errorf("figfile name = %q", cfg.FigfileName)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("color scheme = %q", cfg.UI.ColorScheme)
	}
	if !cfg.UI.Verbose {
		t.Error("verbose not applied")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte("ui: verbose: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UI.Verbose {
		t.Error("verbose not applied")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("color scheme = %q, want default auto", cfg.UI.ColorScheme)
	}
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad color scheme", `ui: color_scheme: "sepia"`},
		{"unknown field", `figfile: "x.cue"`},
		{"wrong type", `ui: verbose: "yes"`},
		{"empty figfile name", `figfile_name: ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			SetConfigDirOverride(dir)
			t.Cleanup(Reset)

			if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(); err == nil {
				t.Errorf("Load accepted %q", tt.content)
			}
		})
	}
}

func TestLoadConfigFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.cue")
	if err := os.WriteFile(path, []byte(`ui: color_scheme: "light"`), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigFilePathOverride(path)
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.ColorScheme != ColorSchemeLight {
		t.Errorf("color scheme = %q, want light", cfg.UI.ColorScheme)
	}
}

func TestLoadMissingOverrideFileFails(t *testing.T) {
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.cue"))
	t.Cleanup(Reset)

	if _, err := Load(); err == nil {
		t.Error("Load succeeded with a missing --config file")
	}
}

func TestGenerateCUERoundTrip(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	original := &Config{
		FigfileName: "predicates.cue",
		UI:          UIConfig{ColorScheme: ColorSchemeDark, Verbose: true},
	}
	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte(GenerateCUE(original)), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load(GenerateCUE(...)): %v", err)
	}
	if *cfg != *original {
		t.Errorf("round trip mismatch: got %+v, want %+v", cfg, original)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(filepath.Join(dir, "figgo"))
	t.Cleanup(Reset)

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "figgo", "config.cue"))
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !strings.Contains(string(data), "color_scheme") {
		t.Errorf("generated config missing defaults: %q", data)
	}

	// A second call must not clobber the existing file.
	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("second CreateDefaultConfig: %v", err)
	}
}
