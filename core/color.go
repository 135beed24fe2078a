package core

import colorful "github.com/lucasb-eyer/go-colorful"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{R: 0, G: 0, B: 0}
	RGBWhite = RGB{R: 255, G: 255, B: 255}
)

// Alpha8 converts a 0-255 opacity to the 0.0-1.0 range used by blending
func Alpha8(a uint8) float64 {
	return float64(a) / 255.0
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	r, g, b := c.colorful().BlendRgb(src.colorful(), alpha).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
