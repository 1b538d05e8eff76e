// Package compiler turns a theme definition into the flat namespace of CSS
// custom properties the UI consumes. Every builder here is a pure function
// from theme state to a fresh Vars map; incremental application lives in the
// applier package.
package compiler

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hearthstack/hearth/internal/theme"
)

// Vars is a compiled variable map: CSS custom-property name to value. Built
// fresh on every resolve, never mutated in place by consumers.
type Vars map[string]string

func (v Vars) merge(other Vars) {
	for name, value := range other {
		v[name] = value
	}
}

// SortedNames returns the variable names in lexical order, for deterministic
// output rendering.
func (v Vars) SortedNames() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var elementVarPrefixes = buildElementVarPrefixes()

func buildElementVarPrefixes() []string {
	elements := theme.AllElements()
	prefixes := make([]string, 0, len(elements)+3)
	for _, el := range elements {
		prefixes = append(prefixes, "--"+theme.ElementPrefix(el)+"-")
	}
	// Special-mode namespaces live and die with their bundles, so they are
	// tracked for cleanup the same way element overrides are.
	prefixes = append(prefixes, "--login-", "--kiosk-", "--lcars-")
	return prefixes
}

// IsElementVar reports whether a variable name belongs to a per-element
// namespace. The applier uses this to know which properties are subject to
// cleanup when a theme stops defining them; base/global variables are only
// ever overwritten, never torn down.
func IsElementVar(name string) bool {
	for _, prefix := range elementVarPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// px renders a numeric dimension with its unit; values never leave the
// compiler bare.
func px(value float64) string {
	return formatNumber(value) + "px"
}

func deg(value float64) string {
	return formatNumber(value) + "deg"
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
