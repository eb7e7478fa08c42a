package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// pagerTheme is the demo theme: the default theme with a blue primary
// color and slightly smaller body text.
type pagerTheme struct{}

var _ fyne.Theme = (*pagerTheme)(nil)

func (t *pagerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameButton:
		return demoPalette[0]
	case theme.ColorNameWarning:
		return demoPalette[2]
	case theme.ColorNameError:
		return demoPalette[3]
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *pagerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *pagerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *pagerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	default:
		return theme.DefaultTheme().Size(name)
	}
}
