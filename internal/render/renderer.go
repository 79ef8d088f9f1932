// Package render rasterizes scene point clouds into an RGBA surface that the
// host uploads to the screen once per frame.
package render

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/mandala-cloud/internal/scene"
)

// Renderer owns the output surface and its depth buffer.
type Renderer struct {
	background colorful.Color
	surface    *image.RGBA
	depth      []float64
}

func New(background colorful.Color) *Renderer {
	return &Renderer{
		background: background,
		surface:    image.NewRGBA(image.Rect(0, 0, 0, 0)),
	}
}

// SetSize resizes the output surface. Contents are discarded when the size
// changes.
func (r *Renderer) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if w, h := r.Size(); w == width && h == height {
		return
	}
	r.surface = image.NewRGBA(image.Rect(0, 0, width, height))
	r.depth = make([]float64, width*height)
}

func (r *Renderer) Size() (int, int) {
	b := r.surface.Bounds()
	return b.Dx(), b.Dy()
}

// Surface is the last rendered frame. It stays valid until the next
// SetSize with a different size.
func (r *Renderer) Surface() *image.RGBA { return r.surface }

// Render draws one frame of s as seen from cam and returns how many point
// sprites passed clipping.
func (r *Renderer) Render(s *scene.Scene, cam *scene.Camera) int {
	r.clear()
	width, height := r.Size()
	if width == 0 || height == 0 {
		return 0
	}
	viewProj := cam.ProjectionMatrix().Mul4(cam.ViewMatrix())
	drawn := 0
	for _, p := range s.Points() {
		if p.Geometry == nil || p.Material == nil {
			continue
		}
		mvp := viewProj.Mul4(mgl64.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()))
		drawn += r.drawPoints(mvp, p, width, height)
	}
	return drawn
}

func (r *Renderer) drawPoints(mvp mgl64.Mat4, p *scene.Points, width, height int) int {
	m := p.Material
	c := m.Color.Clamped()
	alpha := 1.0
	if m.Transparent {
		alpha = clamp01(m.Opacity)
	}
	halfH := float64(height) / 2

	drawn := 0
	for _, v := range p.Geometry.Vertices {
		clip := mvp.Mul4x1(v.Vec4(1))
		w := clip.W()
		if w <= 0 {
			continue
		}
		x, y, z := clip.X()/w, clip.Y()/w, clip.Z()/w
		if x < -1 || x > 1 || y < -1 || y > 1 || z < -1 || z > 1 {
			continue
		}

		size := m.Size
		if m.SizeAttenuation {
			// w is the view-space distance along the camera axis.
			size *= halfH / w
		}
		px := int(math.Round(size))
		if px < 1 {
			px = 1
		}

		sx := int((x + 1) * 0.5 * float64(width))
		sy := int((1 - y) * 0.5 * float64(height))
		r.fillSquare(sx-px/2, sy-px/2, px, z, m.DepthTest, c, alpha)
		drawn++
	}
	return drawn
}

func (r *Renderer) fillSquare(x0, y0, size int, z float64, depthTest bool, c colorful.Color, alpha float64) {
	width, height := r.Size()
	for y := y0; y < y0+size; y++ {
		if y < 0 || y >= height {
			continue
		}
		for x := x0; x < x0+size; x++ {
			if x < 0 || x >= width {
				continue
			}
			di := y*width + x
			if depthTest {
				if z >= r.depth[di] {
					continue
				}
				r.depth[di] = z
			}
			r.blend(x, y, c, alpha)
		}
	}
}

// blend composites c over the destination pixel. image.RGBA stores
// premultiplied alpha.
func (r *Renderer) blend(x, y int, c colorful.Color, alpha float64) {
	i := r.surface.PixOffset(x, y)
	px := r.surface.Pix[i : i+4 : i+4]
	inv := 1 - alpha
	px[0] = channel(c.R*alpha + float64(px[0])/255*inv)
	px[1] = channel(c.G*alpha + float64(px[1])/255*inv)
	px[2] = channel(c.B*alpha + float64(px[2])/255*inv)
	px[3] = channel(alpha + float64(px[3])/255*inv)
}

func (r *Renderer) clear() {
	bg := r.background.Clamped()
	cr, cg, cb := channel(bg.R), channel(bg.G), channel(bg.B)
	pix := r.surface.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = cr, cg, cb, 0xff
	}
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
	}
}

// WritePNG saves the current surface.
func (r *Renderer) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, r.surface); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
