package mandala

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/mandala-cloud/internal/config"
	"github.com/iburimskiy/mandala-cloud/internal/scene"
)

const tau = 2 * math.Pi

// Cloud is the point-cloud animation. It reads wave and orbit tunables
// from the stage config on every Advance, so hosts may change them between
// frames.
type Cloud struct {
	stage *Stage

	tick  uint64
	phase float64

	Geometry *scene.Geometry
	Points   *scene.Points
}

// NewCloud builds the cloud into stage.
func NewCloud(stage *Stage) (*Cloud, error) {
	m := &Cloud{stage: stage}
	if err := m.Build(); err != nil {
		return nil, err
	}
	return m, nil
}

// Build creates the sphere cloud, attaches it at the origin and parks the
// camera in front of it.
func (m *Cloud) Build() error {
	pts, err := m.newPoints()
	if err != nil {
		return err
	}
	m.attach(pts)
	return nil
}

// Reset discards the cloud and any accumulated displacement and builds a
// fresh one. On error the current cloud and tick are left untouched.
func (m *Cloud) Reset() error {
	pts, err := m.newPoints()
	if err != nil {
		return err
	}
	m.stage.Scene.Remove(m.Points)
	m.tick = 0
	m.phase = 0
	m.attach(pts)
	return nil
}

func (m *Cloud) newPoints() (*scene.Points, error) {
	p := m.stage.Config.Particles
	c, err := colorful.Hex(p.Color)
	if err != nil {
		return nil, fmt.Errorf("particle color: %w", err)
	}
	if p.YSegments <= 0 || p.XSegments <= 0 {
		return nil, fmt.Errorf("particle segments must be > 0, got %dx%d", p.YSegments, p.XSegments)
	}
	mat := scene.NewPointsMaterial(c, 1)
	mat.Transparent = true
	mat.DepthTest = true

	geom := scene.NewSphereGeometry(config.SphereRadius, p.YSegments, p.XSegments, 0, tau, 0, tau)
	return scene.NewPoints(geom, mat), nil
}

func (m *Cloud) attach(pts *scene.Points) {
	m.Points = pts
	m.Geometry = pts.Geometry
	m.stage.Scene.Add(pts)
	m.stage.Camera.Position = mgl64.Vec3{0, -600, 600}
}

func (m *Cloud) Tick() uint64 { return m.tick }

// Phase is the continuous time parameter, tick x PhaseStep.
func (m *Cloud) Phase() float64 { return m.phase }

// Anchor is where the camera aims every frame.
func (m *Cloud) Anchor() mgl64.Vec3 { return m.Points.Position }

// Advance moves the animation one frame forward. Offsets are added to the
// already displaced vertices, so the cloud drifts instead of oscillating
// around its rest shape.
func (m *Cloud) Advance() {
	m.tick++
	m.phase = float64(m.tick) * config.PhaseStep

	p := m.stage.Config.Particles
	ax := p.WaveSizeX * config.WaveScale
	ay := p.WaveSizeY * config.WaveScale
	az := p.WaveSizeZ * config.WaveScale

	verts := m.Geometry.Vertices
	for i := range verts {
		sin, cos := math.Sincos(m.phase + float64(i))
		verts[i] = verts[i].Add(mgl64.Vec3{sin * ax, cos * sin * ay, cos * az})
	}

	cam := m.stage.Camera
	cc := m.stage.Config.Camera
	cam.LookAt(m.Points.Position)
	cam.Position = mgl64.Vec3{
		cc.DistanceX * math.Cos(m.phase*cc.SpeedX),
		cc.DistanceY * math.Cos(m.phase*cc.SpeedY),
		cc.DistanceZ * math.Cos(m.phase*cc.SpeedZ),
	}
}
