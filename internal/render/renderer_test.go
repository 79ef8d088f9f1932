package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/mandala-cloud/internal/scene"
)

func newFixture(width, height int, verts ...mgl64.Vec3) (*Renderer, *scene.Scene, *scene.Camera, *scene.Points) {
	r := New(scene.RGB(0xffffff))
	r.SetSize(width, height)
	cam := scene.NewPerspectiveCamera(70, float64(width)/float64(height), 0.1, 1000)
	cam.Position = mgl64.Vec3{0, 0, 10}
	cam.LookAt(mgl64.Vec3{})
	mat := scene.NewPointsMaterial(scene.RGB(0xff0000), 1)
	mat.SizeAttenuation = false
	pts := scene.NewPoints(&scene.Geometry{Vertices: verts}, mat)
	s := scene.New()
	s.Add(cam, pts)
	return r, s, cam, pts
}

func TestRenderOriginLandsInCentre(t *testing.T) {
	r, s, cam, _ := newFixture(64, 48, mgl64.Vec3{})
	if n := r.Render(s, cam); n != 1 {
		t.Fatalf("drawn = %d, want 1", n)
	}
	got := r.Surface().RGBAAt(32, 24)
	if got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("centre pixel = %v", got)
	}
	if bg := r.Surface().RGBAAt(0, 0); bg != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("background pixel = %v", bg)
	}
}

func TestRenderClipsBehindCamera(t *testing.T) {
	r, s, cam, _ := newFixture(32, 32, mgl64.Vec3{0, 0, 20}, mgl64.Vec3{1e6, 0, 0})
	if n := r.Render(s, cam); n != 0 {
		t.Fatalf("drawn = %d, want 0", n)
	}
}

func TestRenderDepthTest(t *testing.T) {
	// The nearer point is drawn first, so a failing depth test would let the
	// farther one overwrite it.
	r, s, cam, pts := newFixture(32, 32, mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -5})
	far := scene.NewPoints(&scene.Geometry{Vertices: []mgl64.Vec3{{0, 0, -5}}}, scene.NewPointsMaterial(scene.RGB(0x0000ff), 1))
	far.Material.SizeAttenuation = false
	pts.Geometry.Vertices = pts.Geometry.Vertices[:1]
	s.Add(far)

	r.Render(s, cam)
	if got := r.Surface().RGBAAt(16, 16); got.R != 255 || got.B != 0 {
		t.Fatalf("farther point won depth test: %v", got)
	}
}

func TestRenderTransparentBlend(t *testing.T) {
	r, s, cam, pts := newFixture(16, 16, mgl64.Vec3{})
	pts.Material.Color = scene.RGB(0x000000)
	pts.Material.Transparent = true
	pts.Material.Opacity = 0.5
	r.Render(s, cam)
	got := r.Surface().RGBAAt(8, 8)
	if got.R != 128 || got.G != 128 || got.B != 128 || got.A != 255 {
		t.Fatalf("blended pixel = %v", got)
	}
}

func TestSetSizeAndEmptySurface(t *testing.T) {
	r, s, cam, _ := newFixture(10, 10, mgl64.Vec3{})
	r.SetSize(0, 0)
	if n := r.Render(s, cam); n != 0 {
		t.Fatalf("drawn on empty surface: %d", n)
	}
	r.SetSize(20, 5)
	if w, h := r.Size(); w != 20 || h != 5 {
		t.Fatalf("size = %dx%d", w, h)
	}
}

func TestWritePNG(t *testing.T) {
	r, s, cam, _ := newFixture(8, 6, mgl64.Vec3{})
	r.Render(s, cam)
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := r.WritePNG(path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("png bounds = %v", b)
	}
}
