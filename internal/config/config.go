package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel   = "grayscott"
	DefaultWidth   = 256
	DefaultHeight  = 256
	DefaultSteps   = 16
	DefaultFeed    = 0.04
	DefaultKill    = 0.06
	DefaultDiffU   = 2e-5
	DefaultDiffV   = 1e-5
	DefaultDt      = 1.0
	DefaultDensity = 0.3
	DefaultSpeed   = 0.05
	DefaultWindowW = 600
	DefaultWindowH = 600
)

type Config struct {
	Model   string       `yaml:"model"`
	Width   int          `yaml:"width"`
	Height  int          `yaml:"height"`
	Steps   int          `yaml:"steps_per_frame"`
	Seed    int64        `yaml:"seed"`
	Params  ModelParams  `yaml:"params"`
	Window  WindowConfig `yaml:"window"`
	Shaders ShaderConfig `yaml:"shaders"`
	OutDir  string       `yaml:"out_dir"`
}

type ModelParams struct {
	Feed       float64 `yaml:"feed"`
	Kill       float64 `yaml:"kill"`
	DiffusionU float64 `yaml:"diffusion_u"`
	DiffusionV float64 `yaml:"diffusion_v"`
	Dt         float64 `yaml:"dt"`
	Channel    string  `yaml:"channel"`
	Density    float64 `yaml:"density"`
	Speed      float64 `yaml:"speed"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// ShaderConfig selects the shader sources. An empty Dir means the binary's
// embedded defaults; a non-empty Dir is read from disk.
type ShaderConfig struct {
	Dir      string `yaml:"dir"`
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:  DefaultModel,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Steps:  DefaultSteps,
		Params: ModelParams{
			Feed:       DefaultFeed,
			Kill:       DefaultKill,
			DiffusionU: DefaultDiffU,
			DiffusionV: DefaultDiffV,
			Dt:         DefaultDt,
			Channel:    "u",
			Density:    DefaultDensity,
			Speed:      DefaultSpeed,
		},
		Window: WindowConfig{
			Title:  "morphogen",
			Width:  DefaultWindowW,
			Height: DefaultWindowH,
			VSync:  true,
		},
		Shaders: ShaderConfig{
			Vertex:   "quad.vert",
			Fragment: "field.frag",
		},
		OutDir: "out",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetModelParams flattens the typed parameters into the map form the model
// registry consumes. Only the selected model's parameters are included.
func (c *Config) GetModelParams() map[string]float64 {
	switch c.Model {
	case "life":
		return map[string]float64{"density": c.Params.Density}
	case "plasma":
		return map[string]float64{"speed": c.Params.Speed}
	default:
		return map[string]float64{
			"feed":        c.Params.Feed,
			"kill":        c.Params.Kill,
			"diffusion_u": c.Params.DiffusionU,
			"diffusion_v": c.Params.DiffusionV,
			"dt":          c.Params.Dt,
		}
	}
}
