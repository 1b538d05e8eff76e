package compiler

import (
	"fmt"
	"strings"

	"github.com/hearthstack/hearth/internal/colorspace"
	"github.com/hearthstack/hearth/internal/theme"
)

// ElementVars compiles one element override into its variable set, keyed
// under the element's prefix. Pure mapping; called once per populated
// override.
func ElementVars(el theme.Element, style theme.ElementStyle) Vars {
	prefix := "--" + theme.ElementPrefix(el)
	vars := Vars{}

	compileBackground(vars, prefix, style)

	if style.TextColor != nil {
		vars[prefix+"-text"] = *style.TextColor
	}
	if style.FontSize != nil {
		vars[prefix+"-font-size"] = px(*style.FontSize)
	}
	if style.FontWeight != nil {
		vars[prefix+"-font-weight"] = fmt.Sprintf("%d", *style.FontWeight)
	}
	if style.FontFamily != nil {
		vars[prefix+"-font-family"] = *style.FontFamily
	}

	if style.BorderColor != nil {
		vars[prefix+"-border"] = *style.BorderColor
	}
	if style.BorderWidth != nil {
		vars[prefix+"-border-width"] = px(*style.BorderWidth)
	}
	if style.BorderRadius != nil {
		vars[prefix+"-radius"] = px(*style.BorderRadius)
	}
	if style.BorderStyle != nil {
		vars[prefix+"-border-style"] = *style.BorderStyle
	}

	if style.Shadow != nil {
		vars[prefix+"-shadow"] = colorspace.ShadowValue(*style.Shadow)
	}
	if style.Blur != nil {
		vars[prefix+"-blur"] = px(*style.Blur)
	}
	if style.Opacity != nil {
		vars[prefix+"-opacity"] = formatNumber(*style.Opacity)
	}

	if transform := compileTransform(style); transform != "" {
		vars[prefix+"-transform"] = transform
	}
	if glow := compileGlow(style); glow != "" {
		vars[prefix+"-glow"] = glow
	}
	if filter := compileFilter(style); filter != "" {
		vars[prefix+"-filter"] = filter
	}

	if style.HoverScale != nil {
		vars[prefix+"-hover-scale"] = formatNumber(*style.HoverScale)
	}
	if style.HoverOpacity != nil {
		vars[prefix+"-hover-opacity"] = formatNumber(*style.HoverOpacity)
	}
	if style.Padding != nil {
		vars[prefix+"-padding"] = *style.Padding
	}

	// Deliberately verbatim: sanitising theme CSS is a product question, not
	// a compiler one. Flagged for review where themes can come from
	// untrusted households.
	if style.CustomCSS != nil {
		vars[prefix+"-custom-css"] = *style.CustomCSS
	}

	return vars
}

// compileBackground implements the background precedence: an explicit colour
// wins; gradients and images are independent channels; with nothing set but a
// sub-1 opacity, a translucent blend against the card background is
// synthesised so translucency still composes.
func compileBackground(vars Vars, prefix string, style theme.ElementStyle) {
	opacity := 1.0
	if style.BackgroundOpacity != nil {
		opacity = *style.BackgroundOpacity
	}

	if style.BackgroundColor != nil {
		vars[prefix+"-bg"] = colorspace.ApplyOpacity(*style.BackgroundColor, opacity)
	}

	hasGradient := style.BackgroundGradientFrom != nil && style.BackgroundGradientTo != nil
	if hasGradient {
		// Opacity applies per stop, not to the composed gradient string.
		from := colorspace.ApplyOpacity(*style.BackgroundGradientFrom, opacity)
		to := colorspace.ApplyOpacity(*style.BackgroundGradientTo, opacity)
		vars[prefix+"-bg-gradient"] = fmt.Sprintf("linear-gradient(135deg, %s, %s)", from, to)
	}

	if style.BackgroundImage != nil {
		vars[prefix+"-bg-image"] = fmt.Sprintf("url(%s)", *style.BackgroundImage)
	}

	if style.BackgroundColor == nil && !hasGradient && style.BackgroundImage == nil && opacity < 1 {
		vars[prefix+"-bg"] = colorspace.ApplyOpacity("var(--card-bg)", opacity)
	}
}

func compileTransform(style theme.ElementStyle) string {
	parts := make([]string, 0, 3)
	if style.Scale != nil {
		parts = append(parts, fmt.Sprintf("scale(%s)", formatNumber(*style.Scale)))
	}
	if style.Rotate != nil {
		parts = append(parts, fmt.Sprintf("rotate(%s)", deg(*style.Rotate)))
	}
	if style.Skew != nil {
		parts = append(parts, fmt.Sprintf("skew(%s)", deg(*style.Skew)))
	}
	return strings.Join(parts, " ")
}

func compileGlow(style theme.ElementStyle) string {
	if style.GlowColor == nil && style.GlowSize == nil {
		return ""
	}
	size := 10.0
	if style.GlowSize != nil {
		size = *style.GlowSize
	}
	color := "var(--accent-color)"
	if style.GlowColor != nil {
		color = *style.GlowColor
	}
	return fmt.Sprintf("0 0 %s %s", px(size), color)
}

func compileFilter(style theme.ElementStyle) string {
	parts := make([]string, 0, 2)
	if style.Saturation != nil {
		parts = append(parts, fmt.Sprintf("saturate(%s)", formatNumber(*style.Saturation)))
	}
	if style.Grayscale != nil {
		parts = append(parts, fmt.Sprintf("grayscale(%s)", formatNumber(*style.Grayscale)))
	}
	return strings.Join(parts, " ")
}
