package sculptor

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the startup settings read from sculptor.toml. Every field
// has a sane default so a missing file is not an error.
type Config struct {
	Window WindowConfig `toml:"window"`
	Shape  ShapeConfig  `toml:"shape"`
	Camera CameraConfig `toml:"camera"`
	Debug  bool         `toml:"debug"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type ShapeConfig struct {
	Kind   string `toml:"kind"`
	Width  int    `toml:"width"`
	Depth  int    `toml:"depth"`
	Height int    `toml:"height"`
}

type CameraConfig struct {
	RotateSensitivity float32 `toml:"rotate_sensitivity"`
	PanSensitivity    float32 `toml:"pan_sensitivity"`
	ZoomSensitivity   float32 `toml:"zoom_sensitivity"`
	MinDistance       float32 `toml:"min_distance"`
	MaxDistance       float32 `toml:"max_distance"`
}

const DefaultConfigPath = "sculptor.toml"

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
			Title:  defaultWindowTitle,
		},
		Shape: ShapeConfig{
			Kind:   ShapeCube.String(),
			Width:  8,
			Depth:  8,
			Height: 8,
		},
		Camera: CameraConfig{
			RotateSensitivity: defaultRotateSensitivity,
			PanSensitivity:    defaultPanSensitivity,
			ZoomSensitivity:   defaultZoomSensitivity,
			MinDistance:       defaultMinDistance,
			MaxDistance:       defaultMaxDistance,
		},
	}
}

// LoadConfig reads the given TOML file over the defaults. A missing file
// yields the defaults with no error; a malformed file is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.sanitize()
	return cfg, nil
}

// sanitize clamps out-of-range values instead of rejecting the file.
func (c *Config) sanitize() {
	if c.Window.Width < 320 {
		c.Window.Width = 320
	}
	if c.Window.Height < 240 {
		c.Window.Height = 240
	}
	if c.Window.Title == "" {
		c.Window.Title = defaultWindowTitle
	}
	if _, ok := ParseShapeKind(c.Shape.Kind); !ok {
		c.Shape.Kind = ShapeCube.String()
	}
	c.Shape.Width = clampDimension(c.Shape.Width)
	c.Shape.Depth = clampDimension(c.Shape.Depth)
	c.Shape.Height = clampDimension(c.Shape.Height)

	cam := &c.Camera
	if cam.RotateSensitivity <= 0 {
		cam.RotateSensitivity = defaultRotateSensitivity
	}
	if cam.PanSensitivity <= 0 {
		cam.PanSensitivity = defaultPanSensitivity
	}
	if cam.ZoomSensitivity <= 0 {
		cam.ZoomSensitivity = defaultZoomSensitivity
	}
	if cam.MinDistance <= 0 {
		cam.MinDistance = defaultMinDistance
	}
	if cam.MaxDistance <= cam.MinDistance {
		cam.MaxDistance = defaultMaxDistance
	}
	if cam.MaxDistance <= cam.MinDistance {
		cam.MaxDistance = cam.MinDistance + 1
	}
}

// ShapeKindValue resolves the configured kind label, falling back to Cube.
func (c *Config) ShapeKindValue() ShapeKind {
	if k, ok := ParseShapeKind(c.Shape.Kind); ok {
		return k
	}
	return ShapeCube
}
