package config

import "strings"

type PreviewOrientation string

const (
	PreviewOrientationVertical   PreviewOrientation = "vertical"
	PreviewOrientationHorizontal PreviewOrientation = "horizontal"
)

// EditorLayout describes the theme editor surface: the theme-list sidebar,
// the split between the style controls and the live preview, and the
// optional side-by-side light/dark preview panes.
type EditorLayout struct {
	SidebarWidth       float64            `json:"sidebar_width"        toml:"sidebar_width"`
	EditorSplit        float64            `json:"editor_split"         toml:"editor_split"`
	PreviewSplit       bool               `json:"preview_split"        toml:"preview_split"`
	PreviewSplitRatio  float64            `json:"preview_split_ratio"  toml:"preview_split_ratio"`
	PreviewOrientation PreviewOrientation `json:"preview_orientation"  toml:"preview_orientation"`
}

const (
	EditorSidebarWidthDefault = 0.2
	EditorSidebarWidthMin     = 0.05
	EditorSidebarWidthMax     = 0.35
	EditorSplitDefault        = 0.45
	EditorSplitMin            = 0.25
	EditorSplitMax            = 0.7
	PreviewRatioDefault       = 0.5
	PreviewRatioMin           = 0.1
	PreviewRatioMax           = 0.9
)

func DefaultEditorLayout() EditorLayout {
	return EditorLayout{
		SidebarWidth:       EditorSidebarWidthDefault,
		EditorSplit:        EditorSplitDefault,
		PreviewSplit:       false,
		PreviewSplitRatio:  PreviewRatioDefault,
		PreviewOrientation: PreviewOrientationVertical,
	}
}

func NormaliseEditorLayout(in EditorLayout) EditorLayout {
	layout := DefaultEditorLayout()
	layout.SidebarWidth = clampFloat(
		in.SidebarWidth,
		EditorSidebarWidthMin,
		EditorSidebarWidthMax,
		EditorSidebarWidthDefault,
	)
	layout.EditorSplit = clampFloat(
		in.EditorSplit,
		EditorSplitMin,
		EditorSplitMax,
		EditorSplitDefault,
	)
	layout.PreviewSplit = in.PreviewSplit
	layout.PreviewSplitRatio = clampFloat(
		in.PreviewSplitRatio,
		PreviewRatioMin,
		PreviewRatioMax,
		PreviewRatioDefault,
	)
	layout.PreviewOrientation = normalisePreviewOrientation(
		in.PreviewOrientation,
		layout.PreviewOrientation,
	)
	return layout
}

func normalisePreviewOrientation(
	in PreviewOrientation,
	def PreviewOrientation,
) PreviewOrientation {
	switch strings.ToLower(strings.TrimSpace(string(in))) {
	case string(PreviewOrientationHorizontal):
		return PreviewOrientationHorizontal
	case string(PreviewOrientationVertical):
		return PreviewOrientationVertical
	default:
		return def
	}
}

func clampFloat[T ~float64](value, min, max, fallback T) T {
	if value == 0 {
		return fallback
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
