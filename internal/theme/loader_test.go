package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatalogIncludesDefaultAndUserThemes(t *testing.T) {
	dir := t.TempDir()

	tomlContent := []byte(`
name = "Oceanic"

[colors_dark]
background = "#0b1622"
accent = "#38bdf8"

[element_styles.card]
border_radius = 12.0

[sidebar]
width = 280
`)
	if err := os.WriteFile(filepath.Join(dir, "oceanic.toml"), tomlContent, 0o644); err != nil {
		t.Fatalf("write toml theme: %v", err)
	}

	jsonContent := []byte(`{
  "name": "Oceanic",
  "colorsLight": {
    "accent": "#ff9900"
  },
  "kioskStyle": {
    "backgroundColor": "#101010"
  }
}`)
	if err := os.WriteFile(filepath.Join(dir, "sunset.json"), jsonContent, 0o644); err != nil {
		t.Fatalf("write json theme: %v", err)
	}

	yamlContent := []byte(`
name: Meadow
colors_light:
  accent: "#22c55e"
lcars_mode:
  enabled: true
  primary: "#ff9c00"
`)
	if err := os.WriteFile(filepath.Join(dir, "meadow.yaml"), yamlContent, 0o644); err != nil {
		t.Fatalf("write yaml theme: %v", err)
	}

	catalog, err := LoadCatalog([]string{dir})
	if err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}

	if _, ok := catalog.Get("default"); !ok {
		t.Fatalf("expected default theme to be present")
	}

	oceanic, ok := catalog.Get("oceanic")
	if !ok {
		t.Fatalf("expected oceanic theme to load")
	}
	if oceanic.Theme.ColorsDark.Background != "#0b1622" {
		t.Fatalf("expected dark background override, got %q", oceanic.Theme.ColorsDark.Background)
	}
	if oceanic.Theme.Sidebar.Width != 280 {
		t.Fatalf("expected sidebar width 280, got %d", oceanic.Theme.Sidebar.Width)
	}
	card, ok := oceanic.Theme.ElementStyles[ElementCard]
	if !ok || card.BorderRadius == nil || *card.BorderRadius != 12 {
		t.Fatalf("expected card border radius override, got %+v", card)
	}
	if oceanic.Theme.ID == "" {
		t.Fatalf("expected generated id for theme without one")
	}

	duplicate, ok := catalog.Get("oceanic-1")
	if !ok {
		t.Fatalf("expected duplicate slug to be uniquified")
	}
	if duplicate.Theme.ColorsLight.Accent != "#ff9900" {
		t.Fatalf("expected JSON accent override, got %q", duplicate.Theme.ColorsLight.Accent)
	}
	if duplicate.Theme.Kiosk == nil || duplicate.Theme.Kiosk.BackgroundColor == nil {
		t.Fatalf("expected kiosk bundle from JSON theme")
	}

	meadow, ok := catalog.Get("meadow")
	if !ok {
		t.Fatalf("expected yaml theme to load")
	}
	if meadow.Theme.LCARS == nil || !meadow.Theme.LCARS.Enabled {
		t.Fatalf("expected enabled lcars bundle from yaml theme")
	}
}

func TestLoadCatalogHandlesMissingDirectory(t *testing.T) {
	catalog, err := LoadCatalog([]string{"/nonexistent/path"})
	if err != nil {
		t.Fatalf("LoadCatalog should not error on missing directories: %v", err)
	}
	if _, ok := catalog.Get("default"); !ok {
		t.Fatalf("expected default theme even when directories are missing")
	}
	if len(catalog.All()) != 1 {
		t.Fatalf("expected only default theme, got %d", len(catalog.All()))
	}
}

func TestDecodeThemeRejectsUnknownElements(t *testing.T) {
	data := []byte(`{"name": "Broken", "elementStyles": {"mystery-surface": {"textColor": "#fff"}}}`)
	if _, err := DecodeTheme(data, FormatJSON); err == nil {
		t.Fatalf("expected unknown element to be rejected")
	}
}

func TestDecodeThemeRejectsUnknownJSONFields(t *testing.T) {
	data := []byte(`{"name": "Typo", "colorsLite": {}}`)
	if _, err := DecodeTheme(data, FormatJSON); err == nil {
		t.Fatalf("expected unknown top-level field to be rejected")
	}
}
