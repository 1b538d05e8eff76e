package theme

// Mode selects which of a theme's two colour palettes is active.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

func NormaliseMode(in Mode) Mode {
	if in == ModeDark {
		return ModeDark
	}
	return ModeLight
}

// Colors is the fixed-shape semantic palette. Every role must hold a usable
// CSS colour notation; empty strings fall back to the built-in palette for
// the active mode during resolution.
type Colors struct {
	Primary               string `json:"primary"               toml:"primary"               yaml:"primary"`
	PrimaryForeground     string `json:"primaryForeground"     toml:"primary_foreground"    yaml:"primary_foreground"`
	Secondary             string `json:"secondary"             toml:"secondary"             yaml:"secondary"`
	SecondaryForeground   string `json:"secondaryForeground"   toml:"secondary_foreground"  yaml:"secondary_foreground"`
	Accent                string `json:"accent"                toml:"accent"                yaml:"accent"`
	AccentForeground      string `json:"accentForeground"      toml:"accent_foreground"     yaml:"accent_foreground"`
	Background            string `json:"background"            toml:"background"            yaml:"background"`
	Foreground            string `json:"foreground"            toml:"foreground"            yaml:"foreground"`
	Card                  string `json:"card"                  toml:"card"                  yaml:"card"`
	CardForeground        string `json:"cardForeground"        toml:"card_foreground"       yaml:"card_foreground"`
	Muted                 string `json:"muted"                 toml:"muted"                 yaml:"muted"`
	MutedForeground       string `json:"mutedForeground"       toml:"muted_foreground"      yaml:"muted_foreground"`
	Border                string `json:"border"                toml:"border"                yaml:"border"`
	Destructive           string `json:"destructive"           toml:"destructive"           yaml:"destructive"`
	DestructiveForeground string `json:"destructiveForeground" toml:"destructive_foreground" yaml:"destructive_foreground"`
	Success               string `json:"success"               toml:"success"               yaml:"success"`
	SuccessForeground     string `json:"successForeground"     toml:"success_foreground"    yaml:"success_foreground"`
	Warning               string `json:"warning"               toml:"warning"               yaml:"warning"`
	WarningForeground     string `json:"warningForeground"     toml:"warning_foreground"    yaml:"warning_foreground"`
}

type LayoutSettings struct {
	Type            string `json:"type"            toml:"type"              yaml:"type"`
	ContentMaxWidth int    `json:"contentMaxWidth" toml:"content_max_width" yaml:"content_max_width"`
	Density         string `json:"density"         toml:"density"           yaml:"density"`
}

type TypographySettings struct {
	FontFamily    string  `json:"fontFamily"    toml:"font_family"    yaml:"font_family"`
	BaseSize      float64 `json:"baseSize"      toml:"base_size"      yaml:"base_size"`
	HeadingWeight int     `json:"headingWeight" toml:"heading_weight" yaml:"heading_weight"`
}

type SidebarSettings struct {
	Width      int    `json:"width"      toml:"width"      yaml:"width"`
	Background string `json:"background" toml:"background" yaml:"background"`
	Foreground string `json:"foreground" toml:"foreground" yaml:"foreground"`
}

type PageBackground struct {
	Color    string `json:"color"    toml:"color"    yaml:"color"`
	Gradient string `json:"gradient" toml:"gradient" yaml:"gradient"`
	Image    string `json:"image"    toml:"image"    yaml:"image"`
}

type UISettings struct {
	Radius float64 `json:"radius" toml:"radius" yaml:"radius"`
	Shadow string  `json:"shadow" toml:"shadow" yaml:"shadow"`
}

type IconSettings struct {
	Set   string `json:"set"   toml:"set"   yaml:"set"`
	Color string `json:"color" toml:"color" yaml:"color"`
}

// Definition is the persisted identity plus the two per-mode palettes and the
// unscoped layout/typography/chrome scalars of a theme.
type Definition struct {
	ID          string             `json:"id"          toml:"id"          yaml:"id"`
	Name        string             `json:"name"        toml:"name"        yaml:"name"`
	ColorsLight Colors             `json:"colorsLight" toml:"colors_light" yaml:"colors_light"`
	ColorsDark  Colors             `json:"colorsDark"  toml:"colors_dark"  yaml:"colors_dark"`
	Layout      LayoutSettings     `json:"layout"      toml:"layout"      yaml:"layout"`
	Typography  TypographySettings `json:"typography"  toml:"typography"  yaml:"typography"`
	Sidebar     SidebarSettings    `json:"sidebar"     toml:"sidebar"     yaml:"sidebar"`
	Page        PageBackground     `json:"pageBackground" toml:"page_background" yaml:"page_background"`
	UI          UISettings         `json:"ui"          toml:"ui"          yaml:"ui"`
	Icons       IconSettings       `json:"icons"       toml:"icons"       yaml:"icons"`
}

// ElementStyle is a sparse per-surface override. Every field is optional;
// nil means "inherit the unscoped default for this element class".
type ElementStyle struct {
	BackgroundColor        *string  `json:"backgroundColor,omitempty"        toml:"background_color"         yaml:"background_color"`
	BackgroundGradientFrom *string  `json:"backgroundGradientFrom,omitempty" toml:"background_gradient_from" yaml:"background_gradient_from"`
	BackgroundGradientTo   *string  `json:"backgroundGradientTo,omitempty"   toml:"background_gradient_to"   yaml:"background_gradient_to"`
	BackgroundImage        *string  `json:"backgroundImage,omitempty"        toml:"background_image"         yaml:"background_image"`
	BackgroundOpacity      *float64 `json:"backgroundOpacity,omitempty"      toml:"background_opacity"       yaml:"background_opacity"`
	TextColor              *string  `json:"textColor,omitempty"              toml:"text_color"               yaml:"text_color"`
	FontSize               *float64 `json:"fontSize,omitempty"               toml:"font_size"                yaml:"font_size"`
	FontWeight             *int     `json:"fontWeight,omitempty"             toml:"font_weight"              yaml:"font_weight"`
	FontFamily             *string  `json:"fontFamily,omitempty"             toml:"font_family"              yaml:"font_family"`
	BorderColor            *string  `json:"borderColor,omitempty"            toml:"border_color"             yaml:"border_color"`
	BorderWidth            *float64 `json:"borderWidth,omitempty"            toml:"border_width"             yaml:"border_width"`
	BorderRadius           *float64 `json:"borderRadius,omitempty"           toml:"border_radius"            yaml:"border_radius"`
	BorderStyle            *string  `json:"borderStyle,omitempty"            toml:"border_style"             yaml:"border_style"`
	Shadow                 *string  `json:"shadow,omitempty"                 toml:"shadow"                   yaml:"shadow"`
	Blur                   *float64 `json:"blur,omitempty"                   toml:"blur"                     yaml:"blur"`
	Opacity                *float64 `json:"opacity,omitempty"                toml:"opacity"                  yaml:"opacity"`
	Scale                  *float64 `json:"scale,omitempty"                  toml:"scale"                    yaml:"scale"`
	Rotate                 *float64 `json:"rotate,omitempty"                 toml:"rotate"                   yaml:"rotate"`
	Skew                   *float64 `json:"skew,omitempty"                   toml:"skew"                     yaml:"skew"`
	GlowColor              *string  `json:"glowColor,omitempty"              toml:"glow_color"               yaml:"glow_color"`
	GlowSize               *float64 `json:"glowSize,omitempty"               toml:"glow_size"                yaml:"glow_size"`
	Saturation             *float64 `json:"saturation,omitempty"             toml:"saturation"               yaml:"saturation"`
	Grayscale              *float64 `json:"grayscale,omitempty"              toml:"grayscale"                yaml:"grayscale"`
	HoverScale             *float64 `json:"hoverScale,omitempty"             toml:"hover_scale"              yaml:"hover_scale"`
	HoverOpacity           *float64 `json:"hoverOpacity,omitempty"           toml:"hover_opacity"            yaml:"hover_opacity"`
	Padding                *string  `json:"padding,omitempty"                toml:"padding"                  yaml:"padding"`
	CustomCSS              *string  `json:"customCSS,omitempty"              toml:"custom_css"               yaml:"custom_css"`
}

// IsZero reports whether no field is set. A key mapped to an empty style is
// treated exactly like an absent key (explicit reset), so callers normalise
// on read instead of special-casing empty objects.
func (s ElementStyle) IsZero() bool {
	return s == ElementStyle{}
}

// HasCustomBackground reports whether the style paints its own background in
// any form. Drives the border-fallback rule during resolution.
func (s ElementStyle) HasCustomBackground() bool {
	return s.BackgroundColor != nil ||
		(s.BackgroundGradientFrom != nil && s.BackgroundGradientTo != nil) ||
		s.BackgroundImage != nil ||
		s.CustomCSS != nil
}

// LoginPageStyle brands the login screen independently of the main theme.
type LoginPageStyle struct {
	BackgroundColor *string  `json:"backgroundColor,omitempty" toml:"background_color" yaml:"background_color"`
	BackgroundImage *string  `json:"backgroundImage,omitempty" toml:"background_image" yaml:"background_image"`
	LogoURL         *string  `json:"logoUrl,omitempty"         toml:"logo_url"         yaml:"logo_url"`
	Title           *string  `json:"title,omitempty"           toml:"title"            yaml:"title"`
	Tagline         *string  `json:"tagline,omitempty"         toml:"tagline"          yaml:"tagline"`
	TextColor       *string  `json:"textColor,omitempty"       toml:"text_color"       yaml:"text_color"`
	AccentColor     *string  `json:"accentColor,omitempty"     toml:"accent_color"     yaml:"accent_color"`
	BoxBackground   *string  `json:"boxBackground,omitempty"   toml:"box_background"   yaml:"box_background"`
	BoxOpacity      *float64 `json:"boxOpacity,omitempty"      toml:"box_opacity"      yaml:"box_opacity"`
}

// KioskStyle skins the wall-mounted PIN entry screen.
type KioskStyle struct {
	BackgroundColor *string  `json:"backgroundColor,omitempty" toml:"background_color" yaml:"background_color"`
	ButtonColor     *string  `json:"buttonColor,omitempty"     toml:"button_color"     yaml:"button_color"`
	ButtonTextColor *string  `json:"buttonTextColor,omitempty" toml:"button_text_color" yaml:"button_text_color"`
	HighlightColor  *string  `json:"highlightColor,omitempty"  toml:"highlight_color"  yaml:"highlight_color"`
	ButtonSize      *float64 `json:"buttonSize,omitempty"      toml:"button_size"      yaml:"button_size"`
	FontScale       *float64 `json:"fontScale,omitempty"       toml:"font_scale"       yaml:"font_scale"`
}

// LCARSStyle is the whole-surface retro mode. When Enabled is false the
// compiler emits nothing for it, not even cleared defaults.
type LCARSStyle struct {
	Enabled      bool     `json:"enabled"                toml:"enabled"       yaml:"enabled"`
	Primary      *string  `json:"primary,omitempty"      toml:"primary"       yaml:"primary"`
	Secondary    *string  `json:"secondary,omitempty"    toml:"secondary"     yaml:"secondary"`
	Tertiary     *string  `json:"tertiary,omitempty"     toml:"tertiary"      yaml:"tertiary"`
	Background   *string  `json:"background,omitempty"   toml:"background"    yaml:"background"`
	CornerRadius *float64 `json:"cornerRadius,omitempty" toml:"corner_radius" yaml:"corner_radius"`
}

// ExtendedTheme is the full editable bundle: the base definition plus the
// optional per-element overrides and special-mode bundles. This is the
// JSON-serialisable shape exchanged with the persistence API.
type ExtendedTheme struct {
	Definition    `yaml:",inline"`
	ElementStyles map[Element]ElementStyle `json:"elementStyles,omitempty" toml:"element_styles" yaml:"element_styles"`
	LoginPage     *LoginPageStyle          `json:"loginPage,omitempty"     toml:"login_page"     yaml:"login_page"`
	Kiosk         *KioskStyle              `json:"kioskStyle,omitempty"    toml:"kiosk_style"    yaml:"kiosk_style"`
	LCARS         *LCARSStyle              `json:"lcarsMode,omitempty"     toml:"lcars_mode"     yaml:"lcars_mode"`
}

// ColorsFor returns the palette for the requested mode.
func (t *ExtendedTheme) ColorsFor(mode Mode) Colors {
	if NormaliseMode(mode) == ModeDark {
		return t.ColorsDark
	}
	return t.ColorsLight
}

// Clone returns a deep copy; element styles live in a map and the special
// bundles behind pointers, so a shallow copy would alias editor state.
func (t *ExtendedTheme) Clone() *ExtendedTheme {
	if t == nil {
		return nil
	}
	clone := *t
	if t.ElementStyles != nil {
		clone.ElementStyles = make(map[Element]ElementStyle, len(t.ElementStyles))
		for key, style := range t.ElementStyles {
			clone.ElementStyles[key] = style
		}
	}
	if t.LoginPage != nil {
		login := *t.LoginPage
		clone.LoginPage = &login
	}
	if t.Kiosk != nil {
		kiosk := *t.Kiosk
		clone.Kiosk = &kiosk
	}
	if t.LCARS != nil {
		lcars := *t.LCARS
		clone.LCARS = &lcars
	}
	return &clone
}
