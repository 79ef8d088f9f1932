// Package mandala builds the mandala point cloud on a renderable stage and
// drives its per-frame wave animation.
package mandala

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/mandala-cloud/internal/config"
	"github.com/iburimskiy/mandala-cloud/internal/render"
	"github.com/iburimskiy/mandala-cloud/internal/scene"
)

// Viewport reports the current output size in pixels.
type Viewport interface {
	Size() (width, height int)
}

// FixedViewport is a viewport whose size only changes when assigned.
type FixedViewport struct {
	Width, Height int
}

func (v *FixedViewport) Size() (int, int) { return v.Width, v.Height }

// Stage is the generic renderable scene: camera, scene root, lights and the
// renderer that draws them.
type Stage struct {
	Config   config.Config
	Viewport Viewport

	Camera       *scene.Camera
	Scene        *scene.Scene
	MainLight    *scene.HemisphereLight
	AmbientLight *scene.AmbientLight
	Renderer     *render.Renderer
}

// NewStage assembles the camera, scene and lights from cfg and sizes the
// renderer to vp.
func NewStage(cfg config.Config, vp Viewport) (*Stage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, err := colorful.Hex(cfg.Renderer.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	s := &Stage{Config: cfg, Viewport: vp}
	s.initCamera()
	s.initScene(bg)
	s.initLights()
	return s, nil
}

func (s *Stage) initCamera() {
	c := s.Config.Camera
	s.Camera = scene.NewPerspectiveCamera(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (s *Stage) initScene(bg colorful.Color) {
	s.Scene = scene.New()
	s.Scene.Add(s.Camera)
	s.Renderer = render.New(bg)
	s.Resize()
}

func (s *Stage) initLights() {
	s.MainLight = scene.NewHemisphereLight(scene.RGB(0x000000), scene.RGB(0xffffff), config.LightPower)
	s.MainLight.Position = mgl64.Vec3{0, -500, 0}
	s.Scene.Add(s.MainLight)

	s.AmbientLight = scene.NewAmbientLight(scene.RGB(0xaaccff), config.LightPower)
	s.AmbientLight.Position = mgl64.Vec3{-200, -100, 0}
	s.Scene.Add(s.AmbientLight)
}

// Resize reads the viewport and propagates its size to the config, the
// renderer surface and the camera projection. A zero height keeps the
// previous aspect.
func (s *Stage) Resize() {
	w, h := s.Viewport.Size()
	s.Config.Dimensions.Width = w
	s.Config.Dimensions.Height = h
	s.Renderer.SetSize(w, h)
	if h <= 0 {
		return
	}
	aspect := float64(w) / float64(h)
	s.Config.Camera.AspectRatio = aspect
	s.Camera.Aspect = aspect
	s.Camera.UpdateProjectionMatrix()
}

// Render draws one frame and returns the number of visible points.
func (s *Stage) Render() int {
	return s.Renderer.Render(s.Scene, s.Camera)
}
