package utility

import (
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	TargetSaturation = 0.7
	TargetLightness  = 0.6
)

// RandomTargetColor picks a hue uniformly in [0,360) at fixed saturation and lightness.
func RandomTargetColor(rng *rand.Rand) colorful.Color {
	return colorful.Hsl(rng.Float64()*360, TargetSaturation, TargetLightness)
}

// Hex formats any colour as #rrggbb. Nil maps to black.
func Hex(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Clamped().Hex()
}
