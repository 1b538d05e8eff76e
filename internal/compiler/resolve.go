package compiler

import (
	"fmt"
	"strings"

	"github.com/hearthstack/hearth/internal/colorspace"
	"github.com/hearthstack/hearth/internal/theme"
)

// FallbackBorder is written onto a page's cards and widgets when the page
// gains a custom background, so default grey borders never sit on arbitrary
// backdrops.
const FallbackBorder = "rgba(255, 255, 255, 0.15)"

// Resolve compiles a theme into the full variable map for one colour mode and
// accent. Recomputed from scratch on every call; a nil theme resolves to the
// built-in defaults so the UI is never left without variables.
//
// Merge order, later layers winning: built-in defaults, theme scalars, the
// mode palette, element overrides (globals then page-scoped), special modes.
func Resolve(t *theme.ExtendedTheme, mode theme.Mode, accentColor string) Vars {
	mode = theme.NormaliseMode(mode)
	vars := Vars{}

	vars.merge(accentVars(accentColor))

	if t == nil {
		t = theme.DefaultTheme()
	}

	palette := theme.FillColorDefaults(t.ColorsFor(mode), mode)
	vars.merge(scalarVars(t))
	vars.merge(PaletteVars(palette))
	vars.merge(chromeVars(t, palette))

	for _, el := range theme.AllElements() {
		style, ok := t.ElementStyles[el]
		if !ok || style.IsZero() {
			continue
		}
		vars.merge(ElementVars(el, style))
	}

	vars.merge(borderFallbackVars(t))

	vars.merge(LoginVars(t.LoginPage))
	vars.merge(KioskVars(t.Kiosk))
	vars.merge(LCARSVars(t.LCARS))

	return vars
}

// accentVars always sets the legacy accent variable and its RGB triplet,
// theme or no theme. Non-hex accents keep the raw value but decompose the
// default accent so rgba(var(--accent-color-rgb), a) stays renderable.
func accentVars(accentColor string) Vars {
	accent := strings.TrimSpace(accentColor)
	if accent == "" {
		accent = theme.DefaultAccent
	}
	triplet, ok := colorspace.RGBTriplet(accent)
	if !ok {
		triplet, _ = colorspace.RGBTriplet(theme.DefaultAccent)
	}
	return Vars{
		"--accent-color":     accent,
		"--accent-color-rgb": triplet,
	}
}

// scalarVars emits the layout, typography, chrome and page-background layers,
// falling back to the built-in defaults field by field.
func scalarVars(t *theme.ExtendedTheme) Vars {
	layout := t.Layout
	defLayout := theme.DefaultLayout()
	if strings.TrimSpace(layout.Type) == "" {
		layout.Type = defLayout.Type
	}
	if layout.ContentMaxWidth <= 0 {
		layout.ContentMaxWidth = defLayout.ContentMaxWidth
	}
	if strings.TrimSpace(layout.Density) == "" {
		layout.Density = defLayout.Density
	}

	typography := t.Typography
	defType := theme.DefaultTypography()
	if strings.TrimSpace(typography.FontFamily) == "" {
		typography.FontFamily = defType.FontFamily
	}
	if typography.BaseSize <= 0 {
		typography.BaseSize = defType.BaseSize
	}
	if typography.HeadingWeight <= 0 {
		typography.HeadingWeight = defType.HeadingWeight
	}

	ui := t.UI
	defUI := theme.DefaultUI()
	if ui.Radius <= 0 {
		ui.Radius = defUI.Radius
	}
	if strings.TrimSpace(ui.Shadow) == "" {
		ui.Shadow = defUI.Shadow
	}

	sidebar := t.Sidebar
	if sidebar.Width <= 0 {
		sidebar.Width = theme.DefaultSidebar().Width
	}

	return Vars{
		"--layout-type":       layout.Type,
		"--content-max-width": px(float64(layout.ContentMaxWidth)),
		"--layout-density":    layout.Density,
		"--font-family":       typography.FontFamily,
		"--font-size-base":    px(typography.BaseSize),
		"--heading-weight":    fmt.Sprintf("%d", typography.HeadingWeight),
		"--radius-base":       px(ui.Radius),
		"--shadow-base":       colorspace.ShadowValue(ui.Shadow),
		"--sidebar-width":     px(float64(sidebar.Width)),
	}
}

// chromeVars layers the colour-bearing chrome on top of the palette: sidebar
// colours default to the card pair, and an explicit page background wins over
// the palette's background role.
func chromeVars(t *theme.ExtendedTheme, palette theme.Colors) Vars {
	vars := Vars{
		"--sidebar-bg": palette.Card,
		"--sidebar-fg": palette.CardForeground,
	}
	if strings.TrimSpace(t.Sidebar.Background) != "" {
		vars["--sidebar-bg"] = t.Sidebar.Background
	}
	if strings.TrimSpace(t.Sidebar.Foreground) != "" {
		vars["--sidebar-fg"] = t.Sidebar.Foreground
	}

	if strings.TrimSpace(t.Page.Color) != "" {
		vars["--page-bg"] = t.Page.Color
	}
	switch {
	case strings.TrimSpace(t.Page.Image) != "":
		vars["--page-bg-image"] = fmt.Sprintf("url(%s)", t.Page.Image)
	case strings.TrimSpace(t.Page.Gradient) != "":
		vars["--page-bg-image"] = t.Page.Gradient
	}

	if strings.TrimSpace(t.Icons.Set) != "" {
		vars["--icon-set"] = t.Icons.Set
	}
	if strings.TrimSpace(t.Icons.Color) != "" {
		vars["--icon-color"] = t.Icons.Color
	}
	return vars
}

// borderFallbackVars applies the derived-border rule: when a registered
// page-background element paints its own backdrop, every card/widget member
// of that page without an explicit border colour gets the translucent
// fallback border. Driven entirely by the static page-members table.
func borderFallbackVars(t *theme.ExtendedTheme) Vars {
	vars := Vars{}
	for _, background := range theme.PageBackgroundElements() {
		style, ok := t.ElementStyles[background]
		if !ok || !style.HasCustomBackground() {
			continue
		}
		for _, member := range theme.PageMembers(background) {
			memberStyle := t.ElementStyles[member]
			if memberStyle.BorderColor != nil {
				continue
			}
			vars["--"+theme.ElementPrefix(member)+"-border"] = FallbackBorder
		}
	}
	return vars
}
