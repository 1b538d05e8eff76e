// Package applier pushes compiled variable maps onto a render target,
// keeping element-specific properties from one theme from leaking into the
// next.
package applier

import (
	"sort"

	"github.com/hearthstack/hearth/internal/compiler"
)

// RenderTarget abstracts the root style scope of the active document. The
// applier needs nothing beyond property writes and removals.
type RenderTarget interface {
	SetProperty(name, value string)
	RemoveProperty(name string)
}

// Applier owns the diffing state for exactly one render target. Each target
// (live app, preview pane) gets its own instance so their tracking never
// crosses.
type Applier struct {
	target  RenderTarget
	applied map[string]struct{}
}

func New(target RenderTarget) *Applier {
	return &Applier{
		target:  target,
		applied: make(map[string]struct{}),
	}
}

// Apply writes every variable in the map, then removes the element-specific
// properties applied on the previous call that the new map no longer
// carries. Base variables are only ever overwritten. After Apply the
// target's element-specific property set is exactly the element-specific
// subset of vars.
func (a *Applier) Apply(vars compiler.Vars) {
	next := make(map[string]struct{})
	for name, value := range vars {
		a.target.SetProperty(name, value)
		if compiler.IsElementVar(name) {
			next[name] = struct{}{}
		}
	}
	for name := range a.applied {
		if _, ok := next[name]; !ok {
			a.target.RemoveProperty(name)
		}
	}
	a.applied = next
}

// Reset drops the tracking state without touching the target, for use when
// the target itself was torn down and rebuilt.
func (a *Applier) Reset() {
	a.applied = make(map[string]struct{})
}

// MemoryTarget is an in-memory render target used by the CLI and tests.
type MemoryTarget struct {
	props map[string]string
}

func NewMemoryTarget() *MemoryTarget {
	return &MemoryTarget{props: make(map[string]string)}
}

func (m *MemoryTarget) SetProperty(name, value string) {
	m.props[name] = value
}

func (m *MemoryTarget) RemoveProperty(name string) {
	delete(m.props, name)
}

func (m *MemoryTarget) Get(name string) (string, bool) {
	value, ok := m.props[name]
	return value, ok
}

func (m *MemoryTarget) Len() int {
	return len(m.props)
}

// Names returns the applied property names in lexical order.
func (m *MemoryTarget) Names() []string {
	names := make([]string, 0, len(m.props))
	for name := range m.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
