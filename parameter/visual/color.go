package visual

import "github.com/lixenwraith/firework-quiz/core"

// core.RGB color definitions for all screens
var (
	RgbBlack = core.RGBBlack
	RgbWhite = core.RGBWhite

	RgbBackground       = core.RGB{R: 173, G: 216, B: 230} // Light blue
	RgbResultBackground = core.RGB{R: 255, G: 255, B: 150} // Pale yellow
	RgbAmbient          = core.RGB{R: 255, G: 255, B: 255}

	RgbTitle    = core.RGB{R: 30, G: 60, B: 90}
	RgbText     = core.RGB{R: 20, G: 20, B: 20}
	RgbOutcome  = core.RGB{R: 80, G: 30, B: 200} // Purple result message
	RgbCorrect  = core.RGB{R: 0, G: 255, B: 0}
	RgbWrong    = core.RGB{R: 255, G: 0, B: 0}
	RgbButton   = core.RGB{R: 50, G: 100, B: 200}
	RgbHover    = core.RGB{R: 100, G: 180, B: 255}
	RgbBtnLabel = core.RGB{R: 255, G: 255, B: 255}
)

// Opacities on the 0-255 scale
const (
	AlphaButton    = 200
	AlphaFeedback  = 140
	AlphaEncourage = 40
)

// FireworkPalette is the warm palette a burst draws its single color from
var FireworkPalette = [5]core.RGB{
	{R: 255, G: 200, B: 0},   // Gold
	{R: 255, G: 100, B: 0},   // Orange
	{R: 255, G: 50, B: 50},   // Red
	{R: 255, G: 255, B: 100}, // Bright yellow
	{R: 255, G: 150, B: 0},   // Deep orange
}
