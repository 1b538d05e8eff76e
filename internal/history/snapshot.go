package history

import (
	"reflect"

	"github.com/hearthstack/hearth/internal/theme"
)

// Snapshot is a deep-value copy of every editable theme sub-object at one
// point in time. Identity (id, name) is deliberately excluded: renaming a
// theme is not an undoable style edit.
type Snapshot struct {
	ColorsLight   theme.Colors
	ColorsDark    theme.Colors
	Layout        theme.LayoutSettings
	Typography    theme.TypographySettings
	Sidebar       theme.SidebarSettings
	Page          theme.PageBackground
	UI            theme.UISettings
	Icons         theme.IconSettings
	ElementStyles map[theme.Element]theme.ElementStyle
	LoginPage     *theme.LoginPageStyle
	Kiosk         *theme.KioskStyle
	LCARS         *theme.LCARSStyle
}

// Capture snapshots the editable state of a theme. The result shares no
// mutable memory with the source.
func Capture(t *theme.ExtendedTheme) Snapshot {
	if t == nil {
		return Snapshot{}
	}
	clone := t.Clone()
	return Snapshot{
		ColorsLight:   clone.ColorsLight,
		ColorsDark:    clone.ColorsDark,
		Layout:        clone.Layout,
		Typography:    clone.Typography,
		Sidebar:       clone.Sidebar,
		Page:          clone.Page,
		UI:            clone.UI,
		Icons:         clone.Icons,
		ElementStyles: clone.ElementStyles,
		LoginPage:     clone.LoginPage,
		Kiosk:         clone.Kiosk,
		LCARS:         clone.LCARS,
	}
}

// Restore writes the snapshot's state back onto a theme, leaving its
// identity untouched.
func (s Snapshot) Restore(t *theme.ExtendedTheme) {
	if t == nil {
		return
	}
	clone := s.Clone()
	t.ColorsLight = clone.ColorsLight
	t.ColorsDark = clone.ColorsDark
	t.Layout = clone.Layout
	t.Typography = clone.Typography
	t.Sidebar = clone.Sidebar
	t.Page = clone.Page
	t.UI = clone.UI
	t.Icons = clone.Icons
	t.ElementStyles = clone.ElementStyles
	t.LoginPage = clone.LoginPage
	t.Kiosk = clone.Kiosk
	t.LCARS = clone.LCARS
}

func (s Snapshot) Clone() Snapshot {
	clone := s
	if s.ElementStyles != nil {
		clone.ElementStyles = make(map[theme.Element]theme.ElementStyle, len(s.ElementStyles))
		for key, style := range s.ElementStyles {
			clone.ElementStyles[key] = style
		}
	}
	if s.LoginPage != nil {
		login := *s.LoginPage
		clone.LoginPage = &login
	}
	if s.Kiosk != nil {
		kiosk := *s.Kiosk
		clone.Kiosk = &kiosk
	}
	if s.LCARS != nil {
		lcars := *s.LCARS
		clone.LCARS = &lcars
	}
	return clone
}

// Equal compares by value, following pointers, so two snapshots carrying the
// same edits compare equal regardless of aliasing.
func (s Snapshot) Equal(other Snapshot) bool {
	return reflect.DeepEqual(s, other)
}
