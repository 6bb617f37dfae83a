package effect

import (
	"fmt"
	"strings"
)

// CellAppearance maps a cell's activation to a glyph and a grayscale
// intensity. Returns ok=false for cells below the brightness threshold,
// which render as a blank placeholder.
func (c *Config) CellAppearance(activation float64) (glyph rune, intensity int, ok bool) {
	if activation < c.BrightnessThreshold {
		return 0, 0, false
	}

	idx := int(activation * float64(len(c.Palette)-1))
	if idx < 0 {
		idx = 0
	}
	if idx > len(c.Palette)-1 {
		idx = len(c.Palette) - 1
	}

	// 34 + 187 keeps the channel in 0x22..0xDD, dim gray to near-white.
	intensity = 34 + int(activation*187)
	return c.Palette[idx], intensity, true
}

// GrayHex formats an equal-RGB hex color for an intensity from CellAppearance.
func GrayHex(intensity int) string {
	return fmt.Sprintf("#%02x%02x%02x", intensity, intensity, intensity)
}

// RenderHTML regenerates the whole grid as a single markup block, one span
// per visible glyph, rows newline-terminated. The sink replaces its content
// with this every frame; there are no partial updates.
func (e *Effect) RenderHTML() string {
	var b strings.Builder
	b.Grow(e.Grid.Rows * (e.Grid.Cols + 1) * 8)

	for row := 0; row < e.Grid.Rows; row++ {
		for col := 0; col < e.Grid.Cols; col++ {
			glyph, intensity, ok := e.Config.CellAppearance(e.Grid.At(row, col))
			if !ok {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(`<span style="color:`)
			b.WriteString(GrayHex(intensity))
			b.WriteString(`">`)
			b.WriteRune(glyph)
			b.WriteString(`</span>`)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
