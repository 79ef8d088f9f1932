package scene

import "github.com/lucasb-eyer/go-colorful"

// HemisphereLight blends from SkyColor above to GroundColor below.
type HemisphereLight struct {
	Node
	SkyColor    colorful.Color
	GroundColor colorful.Color
	Intensity   float64
}

func NewHemisphereLight(sky, ground colorful.Color, intensity float64) *HemisphereLight {
	return &HemisphereLight{SkyColor: sky, GroundColor: ground, Intensity: intensity}
}

// AmbientLight lights everything equally; its position has no effect on
// shading.
type AmbientLight struct {
	Node
	Color     colorful.Color
	Intensity float64
}

func NewAmbientLight(c colorful.Color, intensity float64) *AmbientLight {
	return &AmbientLight{Color: c, Intensity: intensity}
}

// RGB converts a 0xRRGGBB literal.
func RGB(hex uint32) colorful.Color {
	return colorful.Color{
		R: float64(hex>>16&0xff) / 255,
		G: float64(hex>>8&0xff) / 255,
		B: float64(hex&0xff) / 255,
	}
}
