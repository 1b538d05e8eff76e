package colorspace

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Transparent is the sentinel emitted for fully transparent results.
const Transparent = "transparent"

var (
	rgbPattern = regexp.MustCompile(
		`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[0-9.]+\s*)?\)$`,
	)
	hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

// ApplyOpacity rewrites color so it renders at the given opacity.
// rgb/rgba inputs keep their channel integers and get the alpha replaced,
// hex inputs are decomposed into rgba, and anything else falls through to a
// color-mix blend against transparent. The fallback accepts every valid CSS
// color, including this function's own output, so repeated application
// always yields a renderable value.
func ApplyOpacity(color string, opacity float64) string {
	if opacity >= 1 {
		return color
	}
	if opacity <= 0 {
		return Transparent
	}

	trimmed := strings.TrimSpace(color)
	if trimmed == "" {
		return Transparent
	}

	if match := rgbPattern.FindStringSubmatch(trimmed); match != nil {
		return fmt.Sprintf(
			"rgba(%s, %s, %s, %s)",
			match[1],
			match[2],
			match[3],
			formatAlpha(opacity),
		)
	}

	if hexPattern.MatchString(trimmed) {
		r, g, b, ok := hexChannels(trimmed)
		if ok {
			return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(opacity))
		}
	}

	return fmt.Sprintf(
		"color-mix(in srgb, %s %d%%, transparent)",
		trimmed,
		int(math.Round(opacity*100)),
	)
}

// RGBTriplet decomposes a hex color into its "r, g, b" channel list, the form
// consumers splice into rgba(var(--x), a) expressions. Reports false for
// anything that is not 3/6/8-digit hex.
func RGBTriplet(color string) (string, bool) {
	trimmed := strings.TrimSpace(color)
	if !hexPattern.MatchString(trimmed) {
		return "", false
	}
	r, g, b, ok := hexChannels(trimmed)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%d, %d, %d", r, g, b), true
}

var shadowPresets = map[string]string{
	"none":   "none",
	"subtle": "0 1px 2px rgba(0, 0, 0, 0.05)",
	"medium": "0 4px 6px rgba(0, 0, 0, 0.1)",
	"strong": "0 10px 25px rgba(0, 0, 0, 0.25)",
}

// ShadowValue resolves a shadow preset name. Unrecognised values pass through
// as raw CSS so themes can carry their own box-shadow strings.
func ShadowValue(preset string) string {
	key := strings.ToLower(strings.TrimSpace(preset))
	if value, ok := shadowPresets[key]; ok {
		return value
	}
	return preset
}

// hexChannels extracts the 0-255 channel integers from #rgb, #rrggbb or
// #rrggbbaa notation. Short hex expands digit-by-digit (#abc -> #aabbcc);
// a trailing alpha byte is ignored because callers supply their own alpha.
func hexChannels(hex string) (r, g, b int, ok bool) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 3 {
		var expanded strings.Builder
		for _, d := range digits {
			expanded.WriteRune(d)
			expanded.WriteRune(d)
		}
		digits = expanded.String()
	}
	if len(digits) != 6 && len(digits) != 8 {
		return 0, 0, 0, false
	}

	channels := make([]int, 3)
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		channels[i] = int(value)
	}
	return channels[0], channels[1], channels[2], true
}

func formatAlpha(opacity float64) string {
	return strconv.FormatFloat(opacity, 'g', -1, 64)
}
