package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

const lookEpsilon = 1e-9

// Camera is a perspective camera. Its orientation only changes through
// LookAt, so moving Position afterwards keeps the previous facing.
type Camera struct {
	Node

	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64

	Up mgl64.Vec3

	rotation   mgl64.Mat4
	projection mgl64.Mat4
}

func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	c := &Camera{
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
		Up:       mgl64.Vec3{0, 1, 0},
		rotation: mgl64.Ident4(),
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix must be called after changing FOV, Aspect, Near or
// Far. A non-positive aspect is treated as square until a real size arrives.
func (c *Camera) UpdateProjectionMatrix() {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// LookAt turns the camera towards target from its current position. When
// the view direction is degenerate (zero length, or parallel to Up) the
// previous orientation is kept.
func (c *Camera) LookAt(target mgl64.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() < lookEpsilon {
		return
	}
	if dir.Normalize().Cross(c.Up).Len() < lookEpsilon {
		return
	}
	c.rotation = mgl64.LookAtV(c.Position, target, c.Up).Mat3().Mat4()
}

func (c *Camera) ProjectionMatrix() mgl64.Mat4 { return c.projection }

// ViewMatrix maps world space into camera space.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	p := c.Position
	return c.rotation.Mul4(mgl64.Translate3D(-p.X(), -p.Y(), -p.Z()))
}

// Forward is the world-space direction the camera faces.
func (c *Camera) Forward() mgl64.Vec3 {
	// Third row of the world->camera rotation is the camera +Z axis.
	return mgl64.Vec3{-c.rotation.At(2, 0), -c.rotation.At(2, 1), -c.rotation.At(2, 2)}
}
