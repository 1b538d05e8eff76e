package colorspace

import (
	"strings"
	"testing"
)

func TestApplyOpacityFullOpacityPassthrough(t *testing.T) {
	inputs := []string{"#abc", "#aabbcc", "rgb(1, 2, 3)", "tomato", "var(--card-bg)"}
	for _, input := range inputs {
		if got := ApplyOpacity(input, 1); got != input {
			t.Errorf("ApplyOpacity(%q, 1) = %q, want unchanged", input, got)
		}
		if got := ApplyOpacity(input, 1.5); got != input {
			t.Errorf("ApplyOpacity(%q, 1.5) = %q, want unchanged", input, got)
		}
	}
}

func TestApplyOpacityZeroReturnsTransparent(t *testing.T) {
	if got := ApplyOpacity("#aabbcc", 0); got != Transparent {
		t.Errorf("expected transparent sentinel, got %q", got)
	}
	if got := ApplyOpacity("tomato", -0.2); got != Transparent {
		t.Errorf("expected transparent sentinel for negative opacity, got %q", got)
	}
}

func TestApplyOpacityHexExpansion(t *testing.T) {
	short := ApplyOpacity("#abc", 0.5)
	long := ApplyOpacity("#aabbcc", 0.5)
	want := "rgba(170, 187, 204, 0.5)"
	if short != want {
		t.Errorf("short hex: got %q, want %q", short, want)
	}
	if long != want {
		t.Errorf("long hex: got %q, want %q", long, want)
	}
}

func TestApplyOpacityEightDigitHexIgnoresAlphaByte(t *testing.T) {
	got := ApplyOpacity("#aabbccdd", 0.25)
	want := "rgba(170, 187, 204, 0.25)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyOpacityRewritesRGBAlpha(t *testing.T) {
	if got := ApplyOpacity("rgb(12, 34, 56)", 0.4); got != "rgba(12, 34, 56, 0.4)" {
		t.Errorf("rgb input: got %q", got)
	}
	if got := ApplyOpacity("rgba(12, 34, 56, 0.9)", 0.4); got != "rgba(12, 34, 56, 0.4)" {
		t.Errorf("rgba input: got %q", got)
	}
}

func TestApplyOpacityFallbackWrapsUnknownNotation(t *testing.T) {
	got := ApplyOpacity("var(--card-bg)", 0.3)
	want := "color-mix(in srgb, var(--card-bg) 30%, transparent)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := ApplyOpacity("tomato", 0.15); got != "color-mix(in srgb, tomato 15%, transparent)" {
		t.Errorf("named color fallback: got %q", got)
	}
}

func TestApplyOpacityComposes(t *testing.T) {
	inputs := []string{"#abc", "#aabbcc", "rgba(1, 2, 3, 0.8)", "tomato", "color-mix(in srgb, red 50%, transparent)"}
	for _, input := range inputs {
		once := ApplyOpacity(input, 0.7)
		twice := ApplyOpacity(once, 0.5)
		if strings.TrimSpace(twice) == "" {
			t.Errorf("composed opacity on %q produced empty output", input)
		}
		if !strings.HasPrefix(twice, "rgba(") &&
			!strings.HasPrefix(twice, "color-mix(") &&
			twice != Transparent {
			t.Errorf("composed opacity on %q produced malformed %q", input, twice)
		}
	}
}

func TestRGBTriplet(t *testing.T) {
	got, ok := RGBTriplet("#3cb371")
	if !ok {
		t.Fatalf("expected #3cb371 to decompose")
	}
	if got != "60, 179, 113" {
		t.Errorf("got %q, want %q", got, "60, 179, 113")
	}
	if _, ok := RGBTriplet("tomato"); ok {
		t.Errorf("named colors should not decompose")
	}
	if triplet, ok := RGBTriplet("#abc"); !ok || triplet != "170, 187, 204" {
		t.Errorf("short hex: got %q (ok=%v)", triplet, ok)
	}
}

func TestShadowValuePresets(t *testing.T) {
	if got := ShadowValue("none"); got != "none" {
		t.Errorf("none preset: got %q", got)
	}
	if got := ShadowValue("Medium"); got != "0 4px 6px rgba(0, 0, 0, 0.1)" {
		t.Errorf("medium preset: got %q", got)
	}
	raw := "0 2px 4px rebeccapurple"
	if got := ShadowValue(raw); got != raw {
		t.Errorf("raw shadow should pass through, got %q", got)
	}
}
