package compiler

import (
	"fmt"

	"github.com/hearthstack/hearth/internal/colorspace"
	"github.com/hearthstack/hearth/internal/theme"
)

// LoginVars compiles the login-page branding bundle into the --login-*
// namespace.
func LoginVars(login *theme.LoginPageStyle) Vars {
	vars := Vars{}
	if login == nil {
		return vars
	}
	if login.BackgroundColor != nil {
		vars["--login-bg"] = *login.BackgroundColor
	}
	if login.BackgroundImage != nil {
		vars["--login-bg-image"] = fmt.Sprintf("url(%s)", *login.BackgroundImage)
	}
	if login.LogoURL != nil {
		vars["--login-logo"] = fmt.Sprintf("url(%s)", *login.LogoURL)
	}
	if login.Title != nil {
		vars["--login-title"] = fmt.Sprintf("%q", *login.Title)
	}
	if login.Tagline != nil {
		vars["--login-tagline"] = fmt.Sprintf("%q", *login.Tagline)
	}
	if login.TextColor != nil {
		vars["--login-text"] = *login.TextColor
	}
	if login.AccentColor != nil {
		vars["--login-accent"] = *login.AccentColor
	}
	if login.BoxBackground != nil {
		opacity := 1.0
		if login.BoxOpacity != nil {
			opacity = *login.BoxOpacity
		}
		vars["--login-box-bg"] = colorspace.ApplyOpacity(*login.BoxBackground, opacity)
	}
	return vars
}

// KioskVars compiles the PIN-entry kiosk bundle into the --kiosk-*
// namespace.
func KioskVars(kiosk *theme.KioskStyle) Vars {
	vars := Vars{}
	if kiosk == nil {
		return vars
	}
	if kiosk.BackgroundColor != nil {
		vars["--kiosk-bg"] = *kiosk.BackgroundColor
	}
	if kiosk.ButtonColor != nil {
		vars["--kiosk-btn-bg"] = *kiosk.ButtonColor
	}
	if kiosk.ButtonTextColor != nil {
		vars["--kiosk-btn-text"] = *kiosk.ButtonTextColor
	}
	if kiosk.HighlightColor != nil {
		vars["--kiosk-highlight"] = *kiosk.HighlightColor
	}
	if kiosk.ButtonSize != nil {
		vars["--kiosk-btn-size"] = px(*kiosk.ButtonSize)
	}
	if kiosk.FontScale != nil {
		vars["--kiosk-font-scale"] = formatNumber(*kiosk.FontScale)
	}
	return vars
}

// LCARSVars compiles the whole-surface retro mode. A disabled bundle emits
// nothing at all so it can never bleed into a regular theme.
func LCARSVars(lcars *theme.LCARSStyle) Vars {
	vars := Vars{}
	if lcars == nil || !lcars.Enabled {
		return vars
	}
	vars["--lcars-enabled"] = "1"
	primary := "#ff9c00"
	if lcars.Primary != nil {
		primary = *lcars.Primary
	}
	secondary := "#cc99cc"
	if lcars.Secondary != nil {
		secondary = *lcars.Secondary
	}
	tertiary := "#9999ff"
	if lcars.Tertiary != nil {
		tertiary = *lcars.Tertiary
	}
	background := "#000000"
	if lcars.Background != nil {
		background = *lcars.Background
	}
	vars["--lcars-primary"] = primary
	vars["--lcars-secondary"] = secondary
	vars["--lcars-tertiary"] = tertiary
	vars["--lcars-bg"] = background
	radius := 24.0
	if lcars.CornerRadius != nil {
		radius = *lcars.CornerRadius
	}
	vars["--lcars-corner-radius"] = px(radius)
	return vars
}
