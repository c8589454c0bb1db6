package game

import "math"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Floats returns the colour as 0..1 channels.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// HueRGB converts a hue in degrees at full saturation and half lightness.
func HueRGB(h float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	x := 1 - math.Abs(math.Mod(h/60, 2)-1)
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = 1, x, 0
	case h < 120:
		r, g, b = x, 1, 0
	case h < 180:
		r, g, b = 0, 1, x
	case h < 240:
		r, g, b = 0, x, 1
	case h < 300:
		r, g, b = x, 0, 1
	default:
		r, g, b = 1, 0, x
	}
	return RGB{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}

var Palette = struct {
	Sky        RGB
	SkyLow     RGB
	Backdrop   RGB
	Mountain   RGB
	Snow       RGB
	Cloud      RGB
	Basket     RGB
	Rope       RGB
	Molecule   RGB
	FlameOuter RGB
	FlameInner RGB
	Glow       RGB
	Smoke      RGB
	FireHot    RGB
	FireMid    RGB
	FireCool   RGB
	Lose       RGB
	Win        RGB
	Text       RGB
}{
	Sky:        RGB{R: 135, G: 206, B: 235},
	SkyLow:     RGB{R: 224, G: 246, B: 255},
	Backdrop:   RGB{R: 255, G: 255, B: 255},
	Mountain:   RGB{R: 139, G: 69, B: 19},
	Snow:       RGB{R: 255, G: 255, B: 255},
	Cloud:      RGB{R: 176, G: 196, B: 222},
	Basket:     RGB{R: 139, G: 69, B: 19},
	Rope:       RGB{R: 101, G: 67, B: 33},
	Molecule:   RGB{R: 255, G: 255, B: 255},
	FlameOuter: RGB{R: 255, G: 69, B: 0},
	FlameInner: RGB{R: 255, G: 215, B: 0},
	Glow:       RGB{R: 255, G: 68, B: 68},
	Smoke:      RGB{R: 120, G: 120, B: 125},
	FireHot:    RGB{R: 255, G: 210, B: 110},
	FireMid:    RGB{R: 255, G: 150, B: 70},
	FireCool:   RGB{R: 190, G: 70, B: 45},
	Lose:       RGB{R: 231, G: 76, B: 60},
	Win:        RGB{R: 255, G: 215, B: 0},
	Text:       RGB{R: 255, G: 255, B: 255},
}

// StripeColors are the envelope panels, clockwise from +x.
var StripeColors = [...]RGB{
	{R: 255, G: 107, B: 107},
	{R: 255, G: 217, B: 61},
	{R: 107, G: 203, B: 119},
	{R: 77, G: 150, B: 255},
	{R: 157, G: 78, B: 221},
}
