package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/mandala-cloud/internal/config"
	"github.com/iburimskiy/mandala-cloud/internal/mandala"
	"github.com/iburimskiy/mandala-cloud/internal/scheduler"
)

// Game adapts the mandala stage to ebiten. Each ebiten Update steps the
// frame scheduler once, so the driver runs at the display refresh rate.
type Game struct {
	stage    *mandala.Stage
	cloud    *mandala.Cloud
	driver   *mandala.Driver
	sched    *scheduler.Manual
	viewport *mandala.FixedViewport

	canvas *ebiten.Image

	showHelp bool
	lastErr  error
	started  time.Time
}

// New builds the stage, the cloud and a started driver.
func New(cfg config.Config) (*Game, error) {
	vp := &mandala.FixedViewport{Width: cfg.Dimensions.Width, Height: cfg.Dimensions.Height}
	stage, err := mandala.NewStage(cfg, vp)
	if err != nil {
		return nil, err
	}
	cloud, err := mandala.NewCloud(stage)
	if err != nil {
		return nil, err
	}
	sched := scheduler.NewManual()
	d := mandala.NewDriver(stage, cloud, sched)
	d.Start()

	return &Game{
		stage:    stage,
		cloud:    cloud,
		driver:   d,
		sched:    sched,
		viewport: vp,
		showHelp: true,
		started:  time.Now(),
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.driver.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.cloud.Reset(); err != nil {
			g.lastErr = err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveSnapshotDialog(); err != nil {
			g.lastErr = err
		}
	}

	g.sched.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	surface := g.stage.Renderer.Surface()
	b := surface.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	if g.canvas == nil || g.canvas.Bounds().Size() != b.Size() {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.canvas.WritePixels(surface.Pix)
	screen.DrawImage(g.canvas, nil)

	if g.showHelp {
		g.drawHelp(screen)
	}
}

func (g *Game) status(elapsed time.Duration) string {
	status := fmt.Sprintf("tick %d  %s", g.cloud.Tick(), formatDuration(elapsed))
	if g.driver.Paused() {
		status += "  paused"
	}
	status += "  |  Space: pause  R: reset  S: snapshot  H: hide  Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) drawHelp(screen *ebiten.Image) {
	status := g.status(time.Since(g.started))
	vector.DrawFilledRect(screen, 6, 6, float32(len(status)*6+12), 24, color.RGBA{R: 0, G: 0, B: 0, A: 160}, false)
	ebitenutil.DebugPrintAt(screen, status, 12, 10)
}

// Layout is the resize hook: a new outside size is pushed through the
// viewport into the stage before the next frame renders.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.viewport.Size()
	}
	if outsideWidth != g.viewport.Width || outsideHeight != g.viewport.Height {
		g.viewport.Width, g.viewport.Height = outsideWidth, outsideHeight
		g.stage.Resize()
	}
	return outsideWidth, outsideHeight
}

func (g *Game) saveSnapshotDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("mandala.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if err := g.stage.Renderer.WritePNG(filename); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	log.Printf("saved snapshot %s at tick %d", filename, g.cloud.Tick())
	return nil
}
