package theme

import "testing"

func strPtr(value string) *string {
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}

func TestCloneIsDeep(t *testing.T) {
	original := DefaultTheme()
	original.ElementStyles = map[Element]ElementStyle{
		ElementCard: {TextColor: strPtr("#111111")},
	}
	original.Kiosk = &KioskStyle{BackgroundColor: strPtr("#000000")}

	clone := original.Clone()
	clone.ElementStyles[ElementCard] = ElementStyle{TextColor: strPtr("#222222")}
	clone.Kiosk.BackgroundColor = strPtr("#ffffff")

	if got := *original.ElementStyles[ElementCard].TextColor; got != "#111111" {
		t.Errorf("clone mutation leaked into original element styles: %q", got)
	}
	if got := *original.Kiosk.BackgroundColor; got != "#000000" {
		t.Errorf("clone mutation leaked into original kiosk bundle: %q", got)
	}
}

func TestCloneNil(t *testing.T) {
	var missing *ExtendedTheme
	if missing.Clone() != nil {
		t.Fatalf("cloning a nil theme should stay nil")
	}
}

func TestElementStyleIsZeroTreatsEmptyAsReset(t *testing.T) {
	if !(ElementStyle{}).IsZero() {
		t.Errorf("empty style should read as absent")
	}
	if (ElementStyle{TextColor: strPtr("#fff")}).IsZero() {
		t.Errorf("populated style should not read as absent")
	}
}

func TestHasCustomBackground(t *testing.T) {
	if (ElementStyle{}).HasCustomBackground() {
		t.Errorf("empty style has no custom background")
	}
	cases := map[string]ElementStyle{
		"color":    {BackgroundColor: strPtr("#123456")},
		"gradient": {BackgroundGradientFrom: strPtr("#000"), BackgroundGradientTo: strPtr("#fff")},
		"image":    {BackgroundImage: strPtr("https://example.com/bg.png")},
		"raw css":  {CustomCSS: strPtr("background: url(x)")},
	}
	for name, style := range cases {
		if !style.HasCustomBackground() {
			t.Errorf("%s: expected custom background", name)
		}
	}
	half := ElementStyle{BackgroundGradientFrom: strPtr("#000")}
	if half.HasCustomBackground() {
		t.Errorf("gradient with one stop should not count as a background")
	}
}

func TestFillColorDefaultsKeepsExplicitRoles(t *testing.T) {
	partial := Colors{Accent: "#ff00ff"}
	filled := FillColorDefaults(partial, ModeDark)
	if filled.Accent != "#ff00ff" {
		t.Errorf("explicit accent should survive, got %q", filled.Accent)
	}
	if filled.Background != defaultDarkColors().Background {
		t.Errorf("empty background should fall back to dark default, got %q", filled.Background)
	}
	if filled.WarningForeground == "" {
		t.Errorf("no role may remain empty after filling")
	}
}

func TestElementRegistryPartition(t *testing.T) {
	for _, el := range GlobalElements() {
		if !IsGlobalElement(el) {
			t.Errorf("%s should be global", el)
		}
	}
	for _, el := range PageElements() {
		if IsGlobalElement(el) {
			t.Errorf("%s should be page-scoped", el)
		}
		if !IsKnownElement(el) {
			t.Errorf("%s should be known", el)
		}
	}
	if IsKnownElement(Element("mystery-surface")) {
		t.Errorf("unknown elements must not validate")
	}
}

func TestElementPrefixes(t *testing.T) {
	if got := ElementPrefix(ElementButtonPrimary); got != "btn-primary" {
		t.Errorf("button-primary prefix: got %q", got)
	}
	if got := ElementPrefix(ElementCalendarGrid); got != "calendar-grid" {
		t.Errorf("calendar-grid prefix: got %q", got)
	}
}

func TestPageMembersTableScope(t *testing.T) {
	members := PageMembers(ElementHomeBackground)
	if len(members) == 0 {
		t.Fatalf("home page should have registered members")
	}
	for _, member := range members {
		if IsGlobalElement(member) {
			t.Errorf("page members must be page-scoped, got %s", member)
		}
	}
	if got := PageMembers(ElementBudgetSummaryCard); got != nil {
		t.Errorf("budget surfaces are outside the fallback table, got %v", got)
	}
	for _, background := range PageBackgroundElements() {
		if len(PageMembers(background)) == 0 {
			t.Errorf("background %s should have members", background)
		}
	}
}

func TestGlobalFallback(t *testing.T) {
	if got := GlobalFallback(ElementShoppingListCard); got != ElementCard {
		t.Errorf("shopping list card should fall back to card, got %s", got)
	}
	if got := GlobalFallback(ElementSettingsNav); got != ElementSidebar {
		t.Errorf("settings nav should fall back to sidebar, got %s", got)
	}
	if got := GlobalFallback(ElementHeader); got != ElementHeader {
		t.Errorf("globals map to themselves, got %s", got)
	}
}
