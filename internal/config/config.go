package config

import (
	"fmt"
	"os"

	"Conveyor3D/internal/conveyor"

	"gopkg.in/yaml.v3"
)

// BeltConfig holds the operator-facing belt tunables
type BeltConfig struct {
	Speed                 float32 `yaml:"speed"`
	DirectionMultiplier   float32 `yaml:"direction_multiplier"`
	EdgeDetectionDistance float32 `yaml:"edge_detection_distance"`
	PushOffEdge           bool    `yaml:"push_off_edge"`
	EdgePushForce         float32 `yaml:"edge_push_force"`
}

// DefaultBeltConfig mirrors a freshly constructed Belt
func DefaultBeltConfig() BeltConfig {
	return BeltConfig{
		Speed:               2,
		DirectionMultiplier: 1,
	}
}

// Load reads a belt configuration from a YAML file. Missing fields keep
// their defaults.
func Load(path string) (BeltConfig, error) {
	cfg := DefaultBeltConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read belt config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse belt config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("belt config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *BeltConfig) validate() error {
	switch c.DirectionMultiplier {
	case 0:
		c.DirectionMultiplier = 1
	case 1, -1:
	default:
		return fmt.Errorf("direction_multiplier must be 1 or -1, got %v", c.DirectionMultiplier)
	}

	if c.Speed < 0 {
		return fmt.Errorf("speed must be non-negative, got %v", c.Speed)
	}
	if c.EdgeDetectionDistance < 0 {
		return fmt.Errorf("edge_detection_distance must be non-negative, got %v", c.EdgeDetectionDistance)
	}
	if c.EdgePushForce < 0 {
		return fmt.Errorf("edge_push_force must be non-negative, got %v", c.EdgePushForce)
	}

	return nil
}

// Apply copies the tunables onto a live belt. Safe between steps; the belt
// reads its configuration fresh every frame.
func (c BeltConfig) Apply(b *conveyor.Belt) {
	b.Speed = c.Speed
	b.DirectionMultiplier = c.DirectionMultiplier
	b.EdgeDetectionDistance = c.EdgeDetectionDistance
	b.PushOffEdge = c.PushOffEdge
	b.EdgePushForce = c.EdgePushForce
}
