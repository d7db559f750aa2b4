package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the showroom configuration, usually read from showroom.yaml or showroom.toml.
// Zero values in the file fall back to Default().
type Config struct {
	Engine   EngineConfig    `yaml:"engine" toml:"engine"`
	Showroom ShowroomConfig  `yaml:"showroom" toml:"showroom"`
	Player   PlayerConfig    `yaml:"player" toml:"player"`
	Look     LookConfig      `yaml:"look" toml:"look"`
	Fog      FogConfig       `yaml:"fog" toml:"fog"`
	Smoke    SmokeConfig     `yaml:"smoke" toml:"smoke"`
	Products []ProductConfig `yaml:"products" toml:"products"`
}

// EngineConfig controls the simulation loop.
type EngineConfig struct {
	// TickRate is the number of simulation frames per second.
	TickRate int `yaml:"tickRate" toml:"tickRate"`
	// Workers is the number of goroutines animating products in parallel.
	Workers int `yaml:"workers" toml:"workers"`
	// Profile enables periodic stats logging.
	Profile bool `yaml:"profile" toml:"profile"`
}

// ShowroomConfig describes the circular room.
type ShowroomConfig struct {
	Radius float32 `yaml:"radius" toml:"radius"`
	Height float32 `yaml:"height" toml:"height"`
}

// PlayerConfig tunes locomotion and the boundary.
type PlayerConfig struct {
	Radius    float32    `yaml:"radius" toml:"radius"`
	MoveSpeed float32    `yaml:"moveSpeed" toml:"moveSpeed"`
	JumpForce float32    `yaml:"jumpForce" toml:"jumpForce"`
	Gravity   float32    `yaml:"gravity" toml:"gravity"`
	Start     [3]float32 `yaml:"start" toml:"start"`
}

// LookConfig tunes the first-person view.
type LookConfig struct {
	EyeHeight        float32 `yaml:"eyeHeight" toml:"eyeHeight"`
	MouseSensitivity float32 `yaml:"mouseSensitivity" toml:"mouseSensitivity"`
	TouchSensitivity float32 `yaml:"touchSensitivity" toml:"touchSensitivity"`
	Fov              float32 `yaml:"fov" toml:"fov"`
}

// FogConfig holds the shared fog parameters.
type FogConfig struct {
	Color               uint32  `yaml:"color" toml:"color"`
	Density             float32 `yaml:"density" toml:"density"`
	Height              float32 `yaml:"height" toml:"height"`
	Radius              float32 `yaml:"radius" toml:"radius"`
	NoiseScale          float32 `yaml:"noiseScale" toml:"noiseScale"`
	NoiseStrength       float32 `yaml:"noiseStrength" toml:"noiseStrength"`
	NoiseAnimationSpeed float32 `yaml:"noiseAnimationSpeed" toml:"noiseAnimationSpeed"`
}

// SmokeConfig derives each product's particle field from its model size.
type SmokeConfig struct {
	Count          int     `yaml:"count" toml:"count"`
	AreaFactor     float32 `yaml:"areaFactor" toml:"areaFactor"`
	SizeFactor     float32 `yaml:"sizeFactor" toml:"sizeFactor"`
	MaxLife        float32 `yaml:"maxLife" toml:"maxLife"`
	VerticalOffset float32 `yaml:"verticalOffset" toml:"verticalOffset"`
}

// ProductConfig is one item on display.
type ProductConfig struct {
	Name                string     `yaml:"name" toml:"name"`
	Model               string     `yaml:"model" toml:"model"`
	Position            [3]float32 `yaml:"position" toml:"position"`
	Scale               float32    `yaml:"scale" toml:"scale"`
	FogScale            float32    `yaml:"fogScale" toml:"fogScale"`
	ParticleAreaScale   float32    `yaml:"particleAreaScale" toml:"particleAreaScale"`
	InteractionMessage  string     `yaml:"interactionMessage" toml:"interactionMessage"`
	InteractionDistance float32    `yaml:"interactionDistance" toml:"interactionDistance"`
	Title               string     `yaml:"title" toml:"title"`
	Content             string     `yaml:"content" toml:"content"`
	Image               string     `yaml:"image" toml:"image"`
}

// Default returns the stock showroom: a 10 unit room with no products.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			TickRate: 60,
			Workers:  4,
		},
		Showroom: ShowroomConfig{
			Radius: 10,
			Height: 4,
		},
		Player: PlayerConfig{
			Radius:    0.4,
			MoveSpeed: 5,
			JumpForce: 8,
			Gravity:   25,
			Start:     [3]float32{0, 0, 5},
		},
		Look: LookConfig{
			EyeHeight:        1.6,
			MouseSensitivity: 0.002,
			TouchSensitivity: 0.005,
			Fov:              75,
		},
		Fog: FogConfig{
			Color:               0xbbbbbb,
			Density:             0.35,
			Height:              0.25,
			Radius:              0.75,
			NoiseScale:          4,
			NoiseStrength:       0.3,
			NoiseAnimationSpeed: 0.1,
		},
		Smoke: SmokeConfig{
			Count:      84,
			AreaFactor: 0.78,
			SizeFactor: 0.08,
			MaxLife:    2.5 / 1.4,
		},
	}
}

// Load reads, parses and validates a configuration file. Files ending in .toml are read as
// TOML, everything else as YAML.
//
// Parameters:
//   - path: path to the configuration file
//
// Returns:
//   - *Config: the loaded configuration
//   - error: read, parse or validation failure
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read showroom config: %w", err)
	}

	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseTOML
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default() and validates the result.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Config: the parsed configuration
//   - error: parse or validation failure
func Parse(data []byte) (*Config, error) {
	return decode(data, yaml.Unmarshal)
}

// ParseTOML is Parse for TOML documents. Keys match the YAML ones.
func ParseTOML(data []byte) (*Config, error) {
	return decode(data, toml.Unmarshal)
}

func decode(data []byte, unmarshal func([]byte, any) error) (*Config, error) {
	cfg := Default()
	if err := unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse showroom config: %w", err)
	}

	cfg.applyProductDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid showroom config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyProductDefaults() {
	for i := range c.Products {
		p := &c.Products[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("product_%d", i)
		}
		if p.Scale == 0 {
			p.Scale = 1
		}
		if p.FogScale == 0 {
			p.FogScale = 1
		}
		if p.ParticleAreaScale == 0 {
			p.ParticleAreaScale = 1
		}
	}
}

// Validate reports the first out-of-range value.
//
// Returns:
//   - error: nil when the configuration is usable
func (c *Config) Validate() error {
	if c.Engine.TickRate <= 0 {
		return fmt.Errorf("engine.tickRate must be positive, got %d", c.Engine.TickRate)
	}
	if c.Engine.Workers <= 0 {
		return fmt.Errorf("engine.workers must be positive, got %d", c.Engine.Workers)
	}
	if c.Showroom.Radius <= 0 {
		return fmt.Errorf("showroom.radius must be positive, got %.2f", c.Showroom.Radius)
	}
	if c.Player.Radius < 0 || c.Player.Radius >= c.Showroom.Radius {
		return fmt.Errorf("player.radius must be in [0, %.2f), got %.2f", c.Showroom.Radius, c.Player.Radius)
	}
	if c.Player.Gravity <= 0 {
		return fmt.Errorf("player.gravity must be positive, got %.2f", c.Player.Gravity)
	}
	if c.Look.Fov <= 0 || c.Look.Fov >= 180 {
		return fmt.Errorf("look.fov must be in (0, 180), got %.2f", c.Look.Fov)
	}
	if c.Fog.Radius <= 0 || c.Fog.Height <= 0 {
		return fmt.Errorf("fog radius and height must be positive, got %.2f and %.2f", c.Fog.Radius, c.Fog.Height)
	}
	if c.Smoke.Count < 0 {
		return fmt.Errorf("smoke.count must not be negative, got %d", c.Smoke.Count)
	}
	if c.Smoke.MaxLife <= 0 {
		return fmt.Errorf("smoke.maxLife must be positive, got %.2f", c.Smoke.MaxLife)
	}

	names := make(map[string]struct{}, len(c.Products))
	for i, p := range c.Products {
		if _, ok := names[p.Name]; ok {
			return fmt.Errorf("products[%d]: duplicate name %q", i, p.Name)
		}
		names[p.Name] = struct{}{}
		if p.Scale < 0 || p.FogScale < 0 || p.InteractionDistance < 0 {
			return fmt.Errorf("products[%d] %q: scale, fogScale and interactionDistance must not be negative", i, p.Name)
		}
	}

	return nil
}
