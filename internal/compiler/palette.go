package compiler

import "github.com/hearthstack/hearth/internal/theme"

// PaletteVars maps every semantic colour role to its variable. Total: each
// role emits exactly one entry, none may be dropped.
func PaletteVars(colors theme.Colors) Vars {
	return Vars{
		"--primary":                colors.Primary,
		"--primary-foreground":     colors.PrimaryForeground,
		"--secondary":              colors.Secondary,
		"--secondary-foreground":   colors.SecondaryForeground,
		"--accent":                 colors.Accent,
		"--accent-foreground":      colors.AccentForeground,
		"--page-bg":                colors.Background,
		"--page-fg":                colors.Foreground,
		"--card-bg":                colors.Card,
		"--card-fg":                colors.CardForeground,
		"--muted":                  colors.Muted,
		"--muted-foreground":       colors.MutedForeground,
		"--card-border":            colors.Border,
		"--destructive":            colors.Destructive,
		"--destructive-foreground": colors.DestructiveForeground,
		"--success":                colors.Success,
		"--success-foreground":     colors.SuccessForeground,
		"--warning":                colors.Warning,
		"--warning-foreground":     colors.WarningForeground,
	}
}
