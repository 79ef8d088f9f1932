package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/mandala-cloud/internal/config"
	"github.com/iburimskiy/mandala-cloud/internal/game"
	"github.com/iburimskiy/mandala-cloud/internal/mandala"
	"github.com/iburimskiy/mandala-cloud/internal/scheduler"
)

func main() {
	log.SetPrefix("[mandala] ")
	flags := config.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		fail(err, !flags.Headless)
	}

	if flags.Headless {
		if err := runHeadless(cfg, flags.Frames, flags.Out); err != nil {
			fail(err, false)
		}
		return
	}

	ebiten.SetWindowSize(cfg.Dimensions.Width, cfg.Dimensions.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Window.TPS only paces the headless timer; the window follows the display.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g, err := game.New(cfg)
	if err != nil {
		fail(err, true)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fail(err, true)
	}
}

// runHeadless drives the animation on the fallback timer without a window
// and writes the last frame to out.
func runHeadless(cfg config.Config, frames int, out string) error {
	if frames <= 0 {
		return fmt.Errorf("headless mode needs -frames > 0, got %d", frames)
	}
	stage, err := mandala.NewStage(cfg, &mandala.FixedViewport{Width: cfg.Dimensions.Width, Height: cfg.Dimensions.Height})
	if err != nil {
		return err
	}
	cloud, err := mandala.NewCloud(stage)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, done := context.WithCancel(ctx)
	defer done()

	timer := scheduler.NewTimer(cfg.Window.TPS)
	d := mandala.NewDriver(stage, cloud, timer)
	d.OnFrame = func(n uint64) {
		if n >= uint64(frames) {
			done()
		}
	}
	d.Start()

	log.Printf("headless: %d frames at %dx%d, %d points", frames, cfg.Dimensions.Width, cfg.Dimensions.Height, cloud.Geometry.Len())
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return timer.Run(gctx)
	})
	g.Go(func() error {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				log.Printf("frame %d/%d", d.Frames(), frames)
			}
		}
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if d.Frames() < uint64(frames) {
		log.Printf("interrupted after %d frames", d.Frames())
	}

	if err := stage.Renderer.WritePNG(out); err != nil {
		return err
	}
	log.Printf("wrote %s", out)
	return nil
}

func fail(err error, dialog bool) {
	log.Printf("error: %v", err)
	if dialog {
		_ = zenity.Error(err.Error(), zenity.Title("Mandala Cloud"), zenity.ErrorIcon)
	}
	os.Exit(1)
}
