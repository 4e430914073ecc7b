package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestCompactThemeColors(t *testing.T) {
	th := NewCompactTheme()

	tests := []struct {
		name     fyne.ThemeColorName
		expected color.Color
	}{
		{theme.ColorNamePrimary, colorAccent},
		{theme.ColorNameSuccess, colorReduction},
		{theme.ColorNameError, colorDanger},
		{theme.ColorNameWarning, colorUploading},
	}

	for _, tt := range tests {
		if got := th.Color(tt.name, theme.VariantLight); got != tt.expected {
			t.Errorf("Color(%s) = %v, expected %v", tt.name, got, tt.expected)
		}
	}

	light := th.Color(theme.ColorNameBackground, theme.VariantLight)
	dark := th.Color(theme.ColorNameBackground, theme.VariantDark)
	if light == dark {
		t.Errorf("background is the same for light and dark variants")
	}
}

func TestCompactThemeSizes(t *testing.T) {
	th := NewCompactTheme()

	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("Size(padding) = %v, expected 3", got)
	}
	if got, expected := th.Size(theme.SizeNameSeparatorThickness), theme.DefaultTheme().Size(theme.SizeNameSeparatorThickness); got != expected {
		t.Errorf("Size(separator) = %v, expected default %v", got, expected)
	}
}
