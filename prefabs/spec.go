package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name            string     `yaml:"name"`
	Radius          float64    `yaml:"radius"`
	Mass            float64    `yaml:"mass"`
	MoveSpeed       float64    `yaml:"move_speed"`
	BoostMultiplier float64    `yaml:"boost_multiplier"`
	Accel           float64    `yaml:"accel"`
	Brake           float64    `yaml:"brake"`
	Drag            float64    `yaml:"drag"`
	Color           *YAMLColor `yaml:"color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ChaserSpec struct {
	Name          string     `yaml:"name"`
	Radius        float64    `yaml:"radius"`
	Mass          float64    `yaml:"mass"`
	MaxForce      float64    `yaml:"max_force"`
	RotationSpeed float64    `yaml:"rotation_speed"`
	Color         *YAMLColor `yaml:"color"`
	SpawnScript   string     `yaml:"spawn_script"`
}

func LoadChaserSpec() (*ChaserSpec, error) {
	spec, err := LoadSpec[ChaserSpec]("chaser.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// RGBA8 returns the parsed color as 8-bit RGBA, defaulting to white
// when the spec omitted the field.
func (c *YAMLColor) RGBA8() color.RGBA {
	if c == nil || c.Color == nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	r, g, b, a := c.Color.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		if a, err = parse(6); err != nil {
			return err
		}
	}

	c.Color = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}
