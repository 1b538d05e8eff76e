package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hearthstack/hearth/internal/errdef"
	"github.com/hearthstack/hearth/internal/theme"
)

func TestLoadSettingsReturnsDefaultHandleWhenMissing(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	settings, handle, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	expectedPath := filepath.Join(dir, "settings.toml")
	if handle.Path != expectedPath {
		t.Fatalf("expected handle path %q, got %q", expectedPath, handle.Path)
	}
	if handle.Format != SettingsFormatTOML {
		t.Fatalf("expected format %q, got %q", SettingsFormatTOML, handle.Format)
	}
	if settings.Editor.SidebarWidth != EditorSidebarWidthDefault {
		t.Fatalf(
			"expected default sidebar width %v, got %v",
			EditorSidebarWidthDefault,
			settings.Editor.SidebarWidth,
		)
	}
	if settings.ActiveTheme != "" {
		t.Fatalf("expected empty active theme, got %q", settings.ActiveTheme)
	}
	if settings.ColorMode != theme.ModeLight {
		t.Fatalf("expected light mode default, got %q", settings.ColorMode)
	}
}

func TestSaveAndLoadSettingsTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	want := Settings{
		ActiveTheme: "Oceanic",
		ColorMode:   theme.ModeDark,
		Accent:      " #3cb371 ",
	}
	if err := SaveSettings(want, SettingsHandle{}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, handle, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got.ActiveTheme != "oceanic" {
		t.Fatalf("expected lowercased theme key, got %q", got.ActiveTheme)
	}
	if got.ColorMode != theme.ModeDark {
		t.Fatalf("expected dark mode, got %q", got.ColorMode)
	}
	if got.Accent != "#3cb371" {
		t.Fatalf("expected trimmed accent, got %q", got.Accent)
	}
	if handle.Format != SettingsFormatTOML {
		t.Fatalf("expected format %q after save, got %q", SettingsFormatTOML, handle.Format)
	}
}

func TestLoadSettingsJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	payload := Settings{ActiveTheme: "sunset", ThemeDirs: []string{"/srv/themes"}}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write json settings: %v", err)
	}

	got, handle, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got.ActiveTheme != payload.ActiveTheme {
		t.Fatalf("expected theme %q, got %q", payload.ActiveTheme, got.ActiveTheme)
	}
	if len(got.ThemeDirs) != 1 || got.ThemeDirs[0] != "/srv/themes" {
		t.Fatalf("expected theme dirs to survive, got %v", got.ThemeDirs)
	}
	if handle.Format != SettingsFormatJSON {
		t.Fatalf("expected json format, got %q", handle.Format)
	}
	if handle.Path != path {
		t.Fatalf("expected handle path %q, got %q", path, handle.Path)
	}
}

func TestLoadSettingsRejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte("active_theme = [broken"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	_, _, err := LoadSettings()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if errdef.CodeOf(err) != errdef.CodeConfig {
		t.Fatalf("expected config error code, got %q", errdef.CodeOf(err))
	}
	var typed *errdef.Error
	if !errors.As(err, &typed) {
		t.Fatalf("expected typed error, got %T", err)
	}
}
