// Package config loads the service configuration from a YAML or JSON file with
// optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/neurofleetx/decision/core/eta"
	"github.com/neurofleetx/decision/core/recommend"
	"github.com/neurofleetx/decision/core/region"
	"github.com/neurofleetx/decision/metrics"
)

type Config struct {
	Eta         EtaConfig         `json:"eta"`
	Recommend   RecommendConfig   `json:"recommend"`
	Maintenance MaintenanceConfig `json:"maintenance"`
	Regions     RegionsConfig     `json:"regions"`
	Metrics     metrics.Config    `json:"metrics"`
}

// EtaConfig tunes the trip duration engine.
type EtaConfig struct {
	Speeds eta.SpeedBands `json:"speeds"`
	// UseModel enables the regression strategy once a model is trained.
	UseModel bool `json:"use_model"`
}

func (c *EtaConfig) SetDefaults() {
	if c.Speeds == (eta.SpeedBands{}) {
		c.Speeds = eta.DefaultSpeedBands()
	}
}

func (c EtaConfig) Validate() error {
	if c.Speeds.Heavy <= 0 || c.Speeds.Moderate <= 0 || c.Speeds.Light <= 0 {
		return fmt.Errorf("eta: speed bands must be positive, got %+v", c.Speeds)
	}
	return nil
}

// RecommendConfig tunes the vehicle ranking engine.
type RecommendConfig struct {
	Weights recommend.Weights `json:"weights"`
}

func (c *RecommendConfig) SetDefaults() {
	if c.Weights == (recommend.Weights{}) {
		c.Weights = recommend.DefaultWeights()
	}
}

func (c RecommendConfig) Validate() error {
	w := c.Weights
	sum := w.Region + w.Distance + w.Capacity + w.Health + w.Energy + w.Type
	if sum < 0.99 || sum > 1.01 {
		return fmt.Errorf("recommend: weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}

// MaintenanceConfig selects the risk assessment backend.
type MaintenanceConfig struct {
	// UseClassifier switches to the trained classifier once available. The
	// formula remains the fallback either way.
	UseClassifier bool `json:"use_classifier"`
}

// RegionsConfig overrides the compiled-in bounding boxes. Order matters: the
// first matching box wins.
type RegionsConfig struct {
	Boxes []region.Box `json:"boxes"`
}

func (c RegionsConfig) Validate() error {
	for i, b := range c.Boxes {
		if b.Code == "" {
			return fmt.Errorf("regions: box %d has no code", i)
		}
		if b.MinLat > b.MaxLat || b.MinLon > b.MaxLon {
			return fmt.Errorf("regions: box %q has an inverted rectangle", b.Code)
		}
	}
	return nil
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FD_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fd_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Eta.SetDefaults()
	cfg.Recommend.SetDefaults()
	if err := cfg.Eta.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Recommend.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Regions.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Eta.SetDefaults()
	cfg.Recommend.SetDefaults()
	return cfg
}
