package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// Dimensions is the viewport size in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Camera holds the projection parameters and the per-axis orbit.
type Camera struct {
	FOV         float64 `json:"fov"`
	AspectRatio float64 `json:"aspectRatio"`
	NearPlane   float64 `json:"nearPlane"`
	FarPlane    float64 `json:"farPlane"`
	DistanceX   float64 `json:"distanceX"`
	DistanceY   float64 `json:"distanceY"`
	DistanceZ   float64 `json:"distanceZ"`
	SpeedX      float64 `json:"speedX"`
	SpeedY      float64 `json:"speedY"`
	SpeedZ      float64 `json:"speedZ"`
}

// Particles describes the sphere grid and the wave applied to it.
type Particles struct {
	YSegments int     `json:"ySegments"`
	XSegments int     `json:"xSegments"`
	Size      float64 `json:"size"`
	Color     string  `json:"color"`
	WaveSpeed float64 `json:"waveSpeed"`
	WaveSizeX float64 `json:"waveSizeX"`
	WaveSizeY float64 `json:"waveSizeY"`
	WaveSizeZ float64 `json:"waveSizeZ"`
}

type Renderer struct {
	Background string `json:"background"`
}

type Window struct {
	Title string `json:"title"`
	TPS   int    `json:"tps"`
}

// Config is copied by value; nothing in it is shared between instances.
type Config struct {
	Dimensions Dimensions `json:"dimensions"`
	Camera     Camera     `json:"camera"`
	Particles  Particles  `json:"particles"`
	Renderer   Renderer   `json:"renderer"`
	Window     Window     `json:"window"`
}

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Visualization parameters
	SphereRadius = 400
	PhaseStep    = 0.005
	WaveScale    = 0.004
	LightPower   = 0.95
	FallbackTPS  = 60
)

// Default returns a fresh copy of the built-in defaults.
func Default() Config {
	return Config{
		Dimensions: Dimensions{Width: WindowWidth, Height: WindowHeight},
		Camera: Camera{
			FOV:       70,
			NearPlane: 0.1,
			FarPlane:  10000,
			DistanceX: 50,
			DistanceY: 700,
			DistanceZ: -50,
			SpeedX:    0.8,
			SpeedY:    0.4,
			SpeedZ:    0.1,
		},
		Particles: Particles{
			YSegments: 100,
			XSegments: 300,
			Size:      1,
			Color:     "#000",
			WaveSpeed: 0.5,
			WaveSizeX: 250,
			WaveSizeY: 0,
			WaveSizeZ: 250,
		},
		Renderer: Renderer{Background: "#fff"},
		Window:   Window{Title: "Mandala Cloud - Space: pause, R: reset, S: snapshot, Esc/Q: quit", TPS: FallbackTPS},
	}
}

// Validate reports the first field that would make the scene unusable.
func (c Config) Validate() error {
	if c.Dimensions.Width <= 0 || c.Dimensions.Height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", c.Dimensions.Width, c.Dimensions.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0,180), got %g", c.Camera.FOV)
	}
	if c.Camera.NearPlane <= 0 || c.Camera.FarPlane <= c.Camera.NearPlane {
		return fmt.Errorf("camera planes invalid: near=%g far=%g", c.Camera.NearPlane, c.Camera.FarPlane)
	}
	if c.Particles.YSegments <= 0 || c.Particles.XSegments <= 0 {
		return fmt.Errorf("particle segments must be > 0, got %dx%d", c.Particles.YSegments, c.Particles.XSegments)
	}
	if c.Particles.Size <= 0 {
		return fmt.Errorf("particle size must be > 0, got %g", c.Particles.Size)
	}
	if _, err := colorful.Hex(c.Particles.Color); err != nil {
		return fmt.Errorf("particle color %q: %w", c.Particles.Color, err)
	}
	if _, err := colorful.Hex(c.Renderer.Background); err != nil {
		return fmt.Errorf("background color %q: %w", c.Renderer.Background, err)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be > 0, got %d", c.Window.TPS)
	}
	return nil
}

// Load overlays the JSON document at path on top of the defaults. Fields
// missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
