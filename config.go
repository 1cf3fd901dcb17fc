package polyview

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type ViewConfig struct {
	Zoom          float64 `toml:"zoom"`
	NormalLength  float64 `toml:"normal_length"`
	ShowNormals   bool    `toml:"show_normals"`
	ShowGrid      bool    `toml:"show_grid"`
	ShowXAxis     bool    `toml:"show_x_axis"`
	ShowYAxis     bool    `toml:"show_y_axis"`
	ShowZAxis     bool    `toml:"show_z_axis"`
	CullBackfaces bool    `toml:"cull_backfaces"`
}

// Config selects the solid to show and how to show it.
type Config struct {
	Solid    string     `toml:"solid"`
	TriakisA float64    `toml:"triakis_a"`
	CubeSize float64    `toml:"cube_size"`
	Scale    [3]float64 `toml:"scale"`

	Window WindowConfig `toml:"window"`
	View   ViewConfig   `toml:"view"`
}

func DefaultConfig() Config {
	return Config{
		Solid:    TriakisTetrahedronName,
		TriakisA: DefaultTriakisA,
		CubeSize: 1,
		Scale:    [3]float64{1, 1, 1},
		Window: WindowConfig{
			Width:  1280,
			Height: 960,
			Title:  "polyview",
		},
		View: ViewConfig{
			Zoom:          defaultZoom,
			NormalLength:  DefaultNormalLength,
			ShowNormals:   true,
			ShowGrid:      true,
			CullBackfaces: true,
		},
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path returns the
// defaults. A leading ~ in path is expanded to the home directory.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not expand config path %s: %w", path, err)
	}

	file, err := os.Open(expanded)
	if err != nil {
		return Config{}, fmt.Errorf("could not open config file %s: %w", expanded, err)
	}
	defer file.Close()

	cfg, err := DecodeConfig(file)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file %s: %w", expanded, err)
	}
	return cfg, nil
}

// DecodeConfig reads TOML from r over the defaults and validates the result.
// Unknown keys are an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Generator(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.View.Zoom < minZoom {
		return fmt.Errorf("%w: zoom %g is below %g", ErrInvalidConfig, c.View.Zoom, minZoom)
	}
	if !(c.View.NormalLength > 0) {
		return fmt.Errorf("%w: normal length %g must be positive", ErrInvalidConfig, c.View.NormalLength)
	}
	return nil
}

func (c Config) Generator() (Generator, error) {
	return NewGenerator(c.Solid, WithTriakisA(c.TriakisA), WithCubeSize(c.CubeSize))
}

func (c Config) ScaleModifier() ScaleModifier {
	return NewScaleModifier(c.Scale[0], c.Scale[1], c.Scale[2])
}

// BuildMesh creates the configured solid and applies the configured scale.
func (c Config) BuildMesh() (*Mesh, error) {
	gen, err := c.Generator()
	if err != nil {
		return nil, err
	}

	log.Printf("Creating %s...", gen.Name())
	m := gen.Create()

	if s := c.ScaleModifier(); !s.IsIdentity() {
		log.Printf("Scaling by (%g, %g, %g)", s.SX, s.SY, s.SZ)
		s.Apply(m)
	}

	log.Printf("Mesh ready: %d vertices, %d faces", m.VertexCount(), m.FaceCount())
	return m, nil
}

func (c Config) NewWorkspace() *Workspace {
	ws := NewWorkspace()
	ws.Scale = c.View.Zoom
	ws.NormalsVisible = c.View.ShowNormals
	ws.GridVisible = c.View.ShowGrid
	ws.XAxisVisible = c.View.ShowXAxis
	ws.YAxisVisible = c.View.ShowYAxis
	ws.ZAxisVisible = c.View.ShowZAxis
	ws.CullBackfaces = c.View.CullBackfaces
	return ws
}

func (c Config) NewRenderer(m *Mesh) *Renderer {
	r := NewRenderer(m)
	r.NormalLength = c.View.NormalLength
	return r
}
