package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime tunables. Values load from an optional YAML
// file over the defaults, and the file can be hot-reloaded through Watcher
// while the game runs.
type Config struct {
	// FlowfieldSmooth smooths flow directions at tiles with a direct
	// sight line to the target.
	FlowfieldSmooth bool `yaml:"flowfield_smooth"`
	// FlowCostThreshold bounds how far from the target flow directions
	// are still re-derived each frame.
	FlowCostThreshold uint32 `yaml:"flow_cost_threshold"`
	// SecondsPerIter is how long one full cost-grid propagation may take.
	SecondsPerIter float64 `yaml:"seconds_per_iter"`

	MaxChasers            int     `yaml:"max_chasers"`
	ChaserDetectionRadius float64 `yaml:"chaser_detection_radius"`
	ChaserAvoidanceMul    float64 `yaml:"chaser_avoidance_mul"`
	ChaserAvoidanceMax    float64 `yaml:"chaser_avoidance_max"`
	ChaserRNGForce        float64 `yaml:"chaser_rng_force"`

	StickDeadzone float64 `yaml:"stick_deadzone"`
	// CameraFollowDist is how far the player may drift from the screen
	// center before the camera follows.
	CameraFollowDist float64 `yaml:"camera_follow_dist"`
}

// DebugViews toggles the debug overlays. Runtime-only state, flipped from
// the pause menu's config panel.
type DebugViews struct {
	RenderObjects   bool
	RenderFlowfield bool
	ComputeFullFlow bool
	RenderPhysics   bool
	PerfOverlay     bool
}

func Default() *Config {
	return &Config{
		FlowfieldSmooth:       true,
		FlowCostThreshold:     150,
		SecondsPerIter:        0.4,
		MaxChasers:            5000,
		ChaserDetectionRadius: 35.0,
		ChaserAvoidanceMul:    3_200_000.0,
		ChaserAvoidanceMax:    30_000.0,
		ChaserRNGForce:        0.4,
		StickDeadzone:         0.0746,
		CameraFollowDist:      125.0,
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults simply apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	cfg.sanitize()
	return cfg, nil
}

// sanitize snaps values the simulation cannot run with back to defaults.
func (c *Config) sanitize() {
	def := Default()
	if c.SecondsPerIter <= 0 {
		c.SecondsPerIter = def.SecondsPerIter
	}
	if c.MaxChasers < 0 {
		c.MaxChasers = 0
	}
	if c.ChaserDetectionRadius < 0 {
		c.ChaserDetectionRadius = 0
	}
	if c.ChaserAvoidanceMul < 0 {
		c.ChaserAvoidanceMul = 0
	}
	if c.ChaserAvoidanceMax < 0 {
		c.ChaserAvoidanceMax = 0
	}
	if c.CameraFollowDist <= 0 {
		c.CameraFollowDist = def.CameraFollowDist
	}
}
