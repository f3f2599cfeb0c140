package styles

import (
	"hash/fnv"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, false, from, to)
}

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, true, from, to)
}

func applyGradient(text string, bold bool, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	colors := BlendColors(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(colors[i])
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// BlendColors returns size colors from from to to, blended in HCL space.
func BlendColors(size int, from, to lipgloss.Color) []lipgloss.Color {
	if size <= 0 {
		return nil
	}
	if size == 1 {
		return []lipgloss.Color{from}
	}

	c1 := toColorful(from)
	c2 := toColorful(to)
	colors := make([]lipgloss.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	colors[0], colors[size-1] = from, to
	return colors
}

// Fade mixes fg toward bg. opacity 1 returns fg, 0 returns bg.
func Fade(fg, bg lipgloss.Color, opacity float64) lipgloss.Color {
	switch {
	case opacity >= 1:
		return fg
	case opacity <= 0:
		return bg
	}
	return lipgloss.Color(toColorful(bg).BlendLab(toColorful(fg), opacity).Clamped().Hex())
}

// CoverColors derives a stable two-color gradient from seed, used to paint
// placeholder cover art.
func CoverColors(seed string) (from, to lipgloss.Color) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	sum := h.Sum32()

	hue := float64(sum % 360)
	shift := 40 + float64((sum>>9)%80)
	from = lipgloss.Color(colorful.Hcl(hue, 0.55, 0.55).Clamped().Hex())
	to = lipgloss.Color(colorful.Hcl(hue+shift, 0.45, 0.30).Clamped().Hex())
	return from, to
}

// toColorful converts a hex lipgloss color. ANSI palette indices and
// malformed values become neutral gray.
func toColorful(c lipgloss.Color) colorful.Color {
	s := string(c)
	if len(s) == 7 && s[0] == '#' {
		if col, err := colorful.Hex(s); err == nil {
			return col
		}
	}
	col, _ := colorful.MakeColor(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return col
}
