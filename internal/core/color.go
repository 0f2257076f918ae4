package core

import "image/color"

// Color represents a colour used by renderers.
// Terminal renderers map it to ANSI 256-color codes, window renderers to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorGold
)

var rgba = map[Color]color.RGBA{
	ColorDefault:       {R: 0, G: 0, B: 0, A: 0},
	ColorBlack:         {R: 0, G: 0, B: 0, A: 255},
	ColorRed:           {R: 200, G: 70, B: 70, A: 255},
	ColorGreen:         {R: 70, G: 200, B: 70, A: 255},
	ColorYellow:        {R: 255, G: 255, B: 0, A: 255},
	ColorBlue:          {R: 70, G: 70, B: 200, A: 255},
	ColorMagenta:       {R: 200, G: 70, B: 200, A: 255},
	ColorCyan:          {R: 70, G: 200, B: 200, A: 255},
	ColorWhite:         {R: 255, G: 255, B: 255, A: 255},
	ColorBrightRed:     {R: 255, G: 50, B: 50, A: 255},
	ColorBrightGreen:   {R: 120, G: 255, B: 120, A: 255},
	ColorBrightYellow:  {R: 255, G: 255, B: 120, A: 255},
	ColorBrightBlue:    {R: 120, G: 120, B: 255, A: 255},
	ColorBrightMagenta: {R: 255, G: 120, B: 255, A: 255},
	ColorBrightCyan:    {R: 120, G: 255, B: 255, A: 255},
	ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	ColorOrange:        {R: 255, G: 140, B: 0, A: 255},
	ColorGray:          {R: 128, G: 128, B: 128, A: 255},
	ColorGold:          {R: 255, G: 215, B: 0, A: 255},
}

// RGBA returns the colour as an opaque RGBA value (transparent for ColorDefault).
func (c Color) RGBA() color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[ColorWhite]
}
