package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Geometry is an ordered vertex list. Callers may mutate Vertices in place;
// the slice itself is never reallocated after construction.
type Geometry struct {
	Vertices []mgl64.Vec3
}

func (g *Geometry) Len() int { return len(g.Vertices) }

// NewSphereGeometry samples a sphere on a widthSegments x heightSegments
// grid. Rows follow theta (from thetaStart, over thetaLength) and columns
// follow phi, giving exactly widthSegments*heightSegments vertices. With
// both lengths set to a full turn the surface is wrapped twice, which is
// what produces the mandala folds.
func NewSphereGeometry(radius float64, widthSegments, heightSegments int, phiStart, phiLength, thetaStart, thetaLength float64) *Geometry {
	if widthSegments < 1 {
		widthSegments = 1
	}
	if heightSegments < 1 {
		heightSegments = 1
	}
	g := &Geometry{Vertices: make([]mgl64.Vec3, 0, widthSegments*heightSegments)}
	for iy := 0; iy < heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		theta := thetaStart + v*thetaLength
		sinT, cosT := math.Sincos(theta)
		for ix := 0; ix < widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			phi := phiStart + u*phiLength
			sinP, cosP := math.Sincos(phi)
			g.Vertices = append(g.Vertices, mgl64.Vec3{
				-radius * cosP * sinT,
				radius * cosT,
				radius * sinP * sinT,
			})
		}
	}
	return g
}

// PointsMaterial is unlit: lights in the scene do not change point color.
type PointsMaterial struct {
	Color       colorful.Color
	Size        float64
	Opacity     float64
	Transparent bool
	DepthTest   bool
	// SizeAttenuation scales Size with distance from the camera.
	SizeAttenuation bool
}

func NewPointsMaterial(c colorful.Color, size float64) *PointsMaterial {
	return &PointsMaterial{
		Color:           c,
		Size:            size,
		Opacity:         1,
		DepthTest:       true,
		SizeAttenuation: true,
	}
}

// Points renders every geometry vertex as a square sprite.
type Points struct {
	Node
	Geometry *Geometry
	Material *PointsMaterial
}

func NewPoints(g *Geometry, m *PointsMaterial) *Points {
	return &Points{Geometry: g, Material: m}
}
