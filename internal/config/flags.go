package config

import "flag"

// Flags are the command-line tunables. Wave, speed and distance flags
// override the loaded configuration only when set explicitly.
type Flags struct {
	// ConfigPath points at an optional JSON overlay.
	ConfigPath string

	// Headless runs the animation without a window and writes Out.
	Headless bool
	Frames   int
	Out      string

	Width, Height int
	Color         string

	WaveX, WaveY, WaveZ             float64
	SpeedX, SpeedY, SpeedZ          float64
	DistanceX, DistanceY, DistanceZ float64

	fs *flag.FlagSet
}

// Bind registers every flag on fs.
func Bind(fs *flag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "JSON file overlaying the default configuration")
	fs.BoolVar(&f.Headless, "headless", false, "render without a window and write the last frame to -out")
	fs.IntVar(&f.Frames, "frames", 600, "number of frames to run in headless mode")
	fs.StringVar(&f.Out, "out", "mandala.png", "PNG written by headless mode")
	fs.IntVar(&f.Width, "width", d.Dimensions.Width, "initial viewport width")
	fs.IntVar(&f.Height, "height", d.Dimensions.Height, "initial viewport height")
	fs.StringVar(&f.Color, "color", d.Particles.Color, "particle color (hex)")
	fs.Float64Var(&f.WaveX, "wave-x", d.Particles.WaveSizeX, "wave amplitude on X")
	fs.Float64Var(&f.WaveY, "wave-y", d.Particles.WaveSizeY, "wave amplitude on Y")
	fs.Float64Var(&f.WaveZ, "wave-z", d.Particles.WaveSizeZ, "wave amplitude on Z")
	fs.Float64Var(&f.SpeedX, "speed-x", d.Camera.SpeedX, "camera orbit speed on X")
	fs.Float64Var(&f.SpeedY, "speed-y", d.Camera.SpeedY, "camera orbit speed on Y")
	fs.Float64Var(&f.SpeedZ, "speed-z", d.Camera.SpeedZ, "camera orbit speed on Z")
	fs.Float64Var(&f.DistanceX, "distance-x", d.Camera.DistanceX, "camera orbit distance on X")
	fs.Float64Var(&f.DistanceY, "distance-y", d.Camera.DistanceY, "camera orbit distance on Y")
	fs.Float64Var(&f.DistanceZ, "distance-z", d.Camera.DistanceZ, "camera orbit distance on Z")
	return f
}

// Resolve builds the effective configuration: defaults, then the JSON
// overlay, then explicitly set flags.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.ConfigPath != "" {
		var err error
		if cfg, err = Load(f.ConfigPath); err != nil {
			return cfg, err
		}
	}

	set := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	apply := func(name string, dst *float64, v float64) {
		if set[name] {
			*dst = v
		}
	}
	if set["width"] {
		cfg.Dimensions.Width = f.Width
	}
	if set["height"] {
		cfg.Dimensions.Height = f.Height
	}
	if set["color"] {
		cfg.Particles.Color = f.Color
	}
	apply("wave-x", &cfg.Particles.WaveSizeX, f.WaveX)
	apply("wave-y", &cfg.Particles.WaveSizeY, f.WaveY)
	apply("wave-z", &cfg.Particles.WaveSizeZ, f.WaveZ)
	apply("speed-x", &cfg.Camera.SpeedX, f.SpeedX)
	apply("speed-y", &cfg.Camera.SpeedY, f.SpeedY)
	apply("speed-z", &cfg.Camera.SpeedZ, f.SpeedZ)
	apply("distance-x", &cfg.Camera.DistanceX, f.DistanceX)
	apply("distance-y", &cfg.Camera.DistanceY, f.DistanceY)
	apply("distance-z", &cfg.Camera.DistanceZ, f.DistanceZ)

	return cfg, cfg.Validate()
}
