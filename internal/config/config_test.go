package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsIndependentCopy(t *testing.T) {
	a := Default()
	b := Default()
	a.Camera.DistanceX = 1
	a.Particles.Color = "#f00"
	if b.Camera.DistanceX != 50 || b.Particles.Color != "#000" {
		t.Fatalf("defaults shared between copies: %+v", b)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if n := b.Particles.YSegments * b.Particles.XSegments; n != 30000 {
		t.Fatalf("default vertex count = %d, want 30000", n)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero segments", func(c *Config) { c.Particles.XSegments = 0 }},
		{"bad fov", func(c *Config) { c.Camera.FOV = 0 }},
		{"far before near", func(c *Config) { c.Camera.FarPlane = 0.01 }},
		{"bad color", func(c *Config) { c.Particles.Color = "black" }},
		{"bad background", func(c *Config) { c.Renderer.Background = "#12" }},
		{"negative width", func(c *Config) { c.Dimensions.Width = -1 }},
		{"zero width", func(c *Config) { c.Dimensions.Width = 0 }},
		{"zero height", func(c *Config) { c.Dimensions.Height = 0 }},
		{"zero size", func(c *Config) { c.Particles.Size = 0 }},
		{"zero tps", func(c *Config) { c.Window.TPS = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mod(&c)
			if err := c.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	doc := `{"camera":{"speedX":1.5},"particles":{"color":"#336699","waveSizeY":40}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Camera.SpeedX != 1.5 || c.Particles.WaveSizeY != 40 || c.Particles.Color != "#336699" {
		t.Fatalf("overlay not applied: %+v", c)
	}
	if c.Camera.DistanceY != 700 || c.Particles.XSegments != 300 {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte(`{"particles":{"ySegments":-3}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for negative segments")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := Bind(fs)
	if err := fs.Parse([]string{"-wave-y", "12", "-speed-z", "0.3", "-width", "640"}); err != nil {
		t.Fatal(err)
	}
	c, err := f.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if c.Particles.WaveSizeY != 12 || c.Camera.SpeedZ != 0.3 || c.Dimensions.Width != 640 {
		t.Fatalf("flags not applied: %+v", c)
	}
	if c.Particles.WaveSizeX != 250 || c.Camera.SpeedX != 0.8 || c.Dimensions.Height != WindowHeight {
		t.Fatalf("unset flags changed config: %+v", c)
	}
}

func TestFlagsRejectZeroSize(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := Bind(fs)
	if err := fs.Parse([]string{"-width", "0"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Resolve(); err == nil {
		t.Fatal("expected error for zero width")
	}
}
