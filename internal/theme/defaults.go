package theme

// DefaultAccent is applied when neither the caller nor the theme supplies an
// accent colour.
const DefaultAccent = "#3b82f6"

func defaultLightColors() Colors {
	return Colors{
		Primary:               "#3b82f6",
		PrimaryForeground:     "#ffffff",
		Secondary:             "#64748b",
		SecondaryForeground:   "#ffffff",
		Accent:                "#3b82f6",
		AccentForeground:      "#ffffff",
		Background:            "#f8fafc",
		Foreground:            "#0f172a",
		Card:                  "#ffffff",
		CardForeground:        "#0f172a",
		Muted:                 "#f1f5f9",
		MutedForeground:       "#64748b",
		Border:                "#e2e8f0",
		Destructive:           "#ef4444",
		DestructiveForeground: "#ffffff",
		Success:               "#22c55e",
		SuccessForeground:     "#ffffff",
		Warning:               "#f59e0b",
		WarningForeground:     "#1c1917",
	}
}

func defaultDarkColors() Colors {
	return Colors{
		Primary:               "#60a5fa",
		PrimaryForeground:     "#0f172a",
		Secondary:             "#94a3b8",
		SecondaryForeground:   "#0f172a",
		Accent:                "#60a5fa",
		AccentForeground:      "#0f172a",
		Background:            "#0f172a",
		Foreground:            "#f1f5f9",
		Card:                  "#1e293b",
		CardForeground:        "#f1f5f9",
		Muted:                 "#334155",
		MutedForeground:       "#94a3b8",
		Border:                "#334155",
		Destructive:           "#f87171",
		DestructiveForeground: "#0f172a",
		Success:               "#4ade80",
		SuccessForeground:     "#0f172a",
		Warning:               "#fbbf24",
		WarningForeground:     "#0f172a",
	}
}

// DefaultColors returns the built-in palette for a mode. The UI must never
// render with zero variables, so this is the floor every resolve starts from.
func DefaultColors(mode Mode) Colors {
	if NormaliseMode(mode) == ModeDark {
		return defaultDarkColors()
	}
	return defaultLightColors()
}

func DefaultLayout() LayoutSettings {
	return LayoutSettings{
		Type:            "sidebar",
		ContentMaxWidth: 1200,
		Density:         "comfortable",
	}
}

func DefaultTypography() TypographySettings {
	return TypographySettings{
		FontFamily:    "system-ui, sans-serif",
		BaseSize:      16,
		HeadingWeight: 600,
	}
}

func DefaultSidebar() SidebarSettings {
	return SidebarSettings{Width: 240}
}

func DefaultUI() UISettings {
	return UISettings{Radius: 8, Shadow: "subtle"}
}

// DefaultTheme assembles the built-in theme used when no definition is
// available and as the base every loaded theme file overlays.
func DefaultTheme() *ExtendedTheme {
	return &ExtendedTheme{
		Definition: Definition{
			ID:          "default",
			Name:        "Default",
			ColorsLight: defaultLightColors(),
			ColorsDark:  defaultDarkColors(),
			Layout:      DefaultLayout(),
			Typography:  DefaultTypography(),
			Sidebar:     DefaultSidebar(),
			UI:          DefaultUI(),
			Icons:       IconSettings{Set: "lucide"},
		},
	}
}

// FillColorDefaults replaces empty roles with the built-in palette for the
// mode so every role always resolves to a usable colour.
func FillColorDefaults(colors Colors, mode Mode) Colors {
	base := DefaultColors(mode)
	merged := colors
	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&merged.Primary, base.Primary)
	fill(&merged.PrimaryForeground, base.PrimaryForeground)
	fill(&merged.Secondary, base.Secondary)
	fill(&merged.SecondaryForeground, base.SecondaryForeground)
	fill(&merged.Accent, base.Accent)
	fill(&merged.AccentForeground, base.AccentForeground)
	fill(&merged.Background, base.Background)
	fill(&merged.Foreground, base.Foreground)
	fill(&merged.Card, base.Card)
	fill(&merged.CardForeground, base.CardForeground)
	fill(&merged.Muted, base.Muted)
	fill(&merged.MutedForeground, base.MutedForeground)
	fill(&merged.Border, base.Border)
	fill(&merged.Destructive, base.Destructive)
	fill(&merged.DestructiveForeground, base.DestructiveForeground)
	fill(&merged.Success, base.Success)
	fill(&merged.SuccessForeground, base.SuccessForeground)
	fill(&merged.Warning, base.Warning)
	fill(&merged.WarningForeground, base.WarningForeground)
	return merged
}
