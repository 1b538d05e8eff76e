package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hearthstack/hearth/internal/compiler"
	"github.com/hearthstack/hearth/internal/config"
	"github.com/hearthstack/hearth/internal/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	var (
		themeKey    string
		themeFile   string
		themesDir   string
		modeName    string
		accent      string
		outPath     string
		listThemes  bool
		preview     bool
		showVersion bool
	)

	flag.StringVar(&themeKey, "theme", "", "Catalog key of the theme to compile")
	flag.StringVar(&themeFile, "theme-file", "", "Path to a single theme file to compile")
	flag.StringVar(&themesDir, "themes-dir", "", "Extra directory to scan for theme files")
	flag.StringVar(&modeName, "mode", "", "Color mode: light or dark")
	flag.StringVar(&accent, "accent", "", "Accent color override (hex or any CSS color)")
	flag.StringVar(&outPath, "out", "", "Write compiled CSS to this path instead of stdout")
	flag.BoolVar(&listThemes, "list", false, "List available themes and exit")
	flag.BoolVar(&preview, "preview", false, "Render a palette preview to the terminal")
	flag.BoolVar(&showVersion, "version", false, "Show hearththeme version")
	flag.Parse()

	if showVersion {
		fmt.Printf("hearththeme %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	settings, _, err := config.LoadSettings()
	if err != nil {
		log.Printf("settings load error: %v", err)
		settings = config.Settings{}
	}

	dirs := append([]string{config.ThemeDir()}, settings.ThemeDirs...)
	if strings.TrimSpace(themesDir) != "" {
		dirs = append(dirs, themesDir)
	}
	catalog, catalogErr := theme.LoadCatalog(dirs)
	if catalogErr != nil {
		log.Printf("theme load error: %v", catalogErr)
	}

	if listThemes {
		printCatalog(catalog)
		os.Exit(0)
	}

	selected, err := selectTheme(catalog, themeKey, themeFile, settings)
	if err != nil {
		log.Fatalf("%v", err)
	}

	mode := settings.ColorMode
	if strings.TrimSpace(modeName) != "" {
		mode = theme.NormaliseMode(theme.Mode(strings.ToLower(strings.TrimSpace(modeName))))
	}
	if strings.TrimSpace(accent) == "" {
		accent = settings.Accent
	}

	vars := compiler.Resolve(selected, mode, accent)

	if preview {
		printPreview(selected, mode, vars)
		os.Exit(0)
	}

	css := renderCSS(vars)
	if outPath == "" {
		fmt.Print(css)
		return
	}
	if err := os.WriteFile(outPath, []byte(css), 0o644); err != nil {
		log.Fatalf("write %q: %v", outPath, err)
	}
	fmt.Printf("Wrote %d variables to %s\n", len(vars), outPath)
}

func selectTheme(
	catalog theme.Catalog,
	key string,
	file string,
	settings config.Settings,
) (*theme.ExtendedTheme, error) {
	if strings.TrimSpace(file) != "" {
		loaded, err := theme.LoadFile(file)
		if err != nil {
			return nil, fmt.Errorf("load theme file %q: %w", file, err)
		}
		return loaded, nil
	}

	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		key = settings.ActiveTheme
	}
	if key == "" {
		key = "default"
	}
	entry, ok := catalog.Get(key)
	if !ok {
		return nil, fmt.Errorf(
			"unknown theme %q (use -list to see available themes)",
			key,
		)
	}
	return entry.Theme, nil
}

func printCatalog(catalog theme.Catalog) {
	for _, entry := range catalog.All() {
		origin := string(entry.Source)
		if entry.Path != "" {
			origin = entry.Path
		}
		fmt.Printf("%-24s %-28s %s\n", entry.Key, entry.DisplayName, origin)
	}
}

// renderCSS emits one :root block with every variable in sorted order so
// diffs between theme versions stay readable.
func renderCSS(vars compiler.Vars) string {
	var builder strings.Builder
	builder.WriteString(":root {\n")
	for _, name := range vars.SortedNames() {
		builder.WriteString("  ")
		builder.WriteString(name)
		builder.WriteString(": ")
		builder.WriteString(vars[name])
		builder.WriteString(";\n")
	}
	builder.WriteString("}\n")
	return builder.String()
}

// printPreview renders the resolved palette as terminal swatches. Only
// hex-valued variables get a colored block; everything else is printed plain.
func printPreview(t *theme.ExtendedTheme, mode theme.Mode, vars compiler.Vars) {
	title := lipgloss.NewStyle().Bold(true)
	fmt.Printf("%s (%s)\n\n", title.Render(t.Name), mode)

	names := make([]string, 0, len(vars))
	for name := range vars {
		if !compiler.IsElementVar(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		value := vars[name]
		line := fmt.Sprintf("%-24s %s", name, value)
		if strings.HasPrefix(value, "#") {
			swatch := lipgloss.NewStyle().
				Background(lipgloss.Color(value)).
				Render("      ")
			line = fmt.Sprintf("%-24s %s %s", name, swatch, value)
		}
		fmt.Println(line)
	}
}
