package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	yaml "go.yaml.in/yaml/v4"
)

type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceUser    Source = "user"
)

type Format string

const (
	FormatBuiltin Format = "builtin"
	FormatJSON    Format = "json"
	FormatTOML    Format = "toml"
	FormatYAML    Format = "yaml"
)

// CatalogEntry is one loadable theme: the built-in default or a user file.
type CatalogEntry struct {
	Key         string
	DisplayName string
	Theme       *ExtendedTheme
	Source      Source
	Format      Format
	Path        string
}

type Catalog struct {
	order []CatalogEntry
	index map[string]int
}

func (c Catalog) All() []CatalogEntry {
	out := make([]CatalogEntry, len(c.order))
	copy(out, c.order)
	return out
}

func (c Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	for i, entry := range c.order {
		keys[i] = entry.Key
	}
	return keys
}

func (c Catalog) Get(key string) (CatalogEntry, bool) {
	if c.index == nil {
		return CatalogEntry{}, false
	}
	idx, ok := c.index[key]
	if !ok {
		return CatalogEntry{}, false
	}
	return c.order[idx], true
}

func (c *Catalog) add(entry CatalogEntry) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[entry.Key] = len(c.order)
	c.order = append(c.order, entry)
}

// LoadCatalog scans the given directories for theme files and assembles a
// catalog with the built-in default first and user themes sorted by display
// name. Unreadable or malformed files are reported through the joined error
// but never block the remaining themes.
func LoadCatalog(dirs []string) (Catalog, error) {
	entries := []CatalogEntry{{
		Key:         "default",
		DisplayName: "Default",
		Theme:       DefaultTheme(),
		Source:      SourceBuiltin,
		Format:      FormatBuiltin,
	}}
	usedKeys := map[string]int{"default": 1}

	var combinedErr error

	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		files, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			combinedErr = errors.Join(
				combinedErr,
				fmt.Errorf("themes: read directory %q: %w", dir, err),
			)
			continue
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			format, ok := formatForExt(filepath.Ext(file.Name()))
			if !ok {
				continue
			}
			path := filepath.Join(dir, file.Name())
			entry, err := loadUserTheme(path, format)
			if err != nil {
				combinedErr = errors.Join(combinedErr, fmt.Errorf("themes: load %q: %w", path, err))
				continue
			}
			entry.Key = ensureUniqueKey(entry.Key, usedKeys)
			if strings.TrimSpace(entry.DisplayName) == "" {
				entry.DisplayName = humaniseSlug(entry.Key)
			}
			entries = append(entries, entry)
		}
	}

	catalog := assembleCatalog(entries)
	if combinedErr != nil {
		return catalog, combinedErr
	}
	return catalog, nil
}

// LoadFile reads a single theme file, inferring the format from the
// extension.
func LoadFile(path string) (*ExtendedTheme, error) {
	format, ok := formatForExt(filepath.Ext(path))
	if !ok {
		return nil, fmt.Errorf("themes: unsupported file extension %q", filepath.Ext(path))
	}
	entry, err := loadUserTheme(path, format)
	if err != nil {
		return nil, err
	}
	return entry.Theme, nil
}

func formatForExt(ext string) (Format, bool) {
	switch strings.ToLower(ext) {
	case ".json":
		return FormatJSON, true
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

func loadUserTheme(path string, format Format) (CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CatalogEntry{}, err
	}
	loaded, err := DecodeTheme(data, format)
	if err != nil {
		return CatalogEntry{}, err
	}
	if strings.TrimSpace(loaded.ID) == "" {
		loaded.ID = uuid.NewString()
	}

	slug := slugify(loaded.Name)
	if slug == "" {
		baseName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		slug = slugify(baseName)
	}
	return CatalogEntry{
		Key:         slug,
		DisplayName: strings.TrimSpace(loaded.Name),
		Theme:       loaded,
		Source:      SourceUser,
		Format:      format,
		Path:        path,
	}, nil
}

// DecodeTheme parses a theme document. JSON decoding rejects unknown fields
// so typos in hand-written themes surface instead of silently dropping
// overrides.
func DecodeTheme(data []byte, format Format) (*ExtendedTheme, error) {
	loaded := &ExtendedTheme{}
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(loaded); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, loaded); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, loaded); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("decode: unsupported format %q", format)
	}
	if err := validateElements(loaded); err != nil {
		return nil, err
	}
	return loaded, nil
}

func validateElements(t *ExtendedTheme) error {
	for key := range t.ElementStyles {
		if !IsKnownElement(key) {
			return fmt.Errorf("element_styles: unknown element %q", key)
		}
	}
	return nil
}

func assembleCatalog(entries []CatalogEntry) Catalog {
	var catalog Catalog
	if len(entries) == 0 {
		return catalog
	}
	catalog.add(entries[0])
	if len(entries) == 1 {
		return catalog
	}
	custom := make([]CatalogEntry, len(entries)-1)
	copy(custom, entries[1:])
	sort.SliceStable(custom, func(i, j int) bool {
		left := strings.ToLower(custom[i].DisplayName)
		right := strings.ToLower(custom[j].DisplayName)
		if left == right {
			return custom[i].Key < custom[j].Key
		}
		return left < right
	})
	for _, entry := range custom {
		catalog.add(entry)
	}
	return catalog
}

func ensureUniqueKey(candidate string, used map[string]int) string {
	key := candidate
	if strings.TrimSpace(key) == "" {
		key = "theme"
	}
	base := key
	counter := used[base]
	if counter == 0 {
		used[base] = 1
		used[key] = 1
		return key
	}
	for {
		suffix := fmt.Sprintf("%s-%d", base, counter)
		if _, exists := used[suffix]; !exists {
			used[base] = counter + 1
			used[suffix] = 1
			return suffix
		}
		counter++
	}
}

func slugify(name string) string {
	var builder strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(r)
			lastDash = false
		case r == '-' || r == '_' || unicode.IsSpace(r):
			if !lastDash {
				builder.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(builder.String(), "-")
}

func humaniseSlug(slug string) string {
	if slug == "" {
		return "Theme"
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
