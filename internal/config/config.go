// Package config provides YAML-based tuning for the duel simulation.
package config

import "errors"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// DuelConfig contains all tuning values for the two-player duel.
type DuelConfig struct {
	World  WorldConfig  `yaml:"world"`
	Bird   BirdConfig   `yaml:"bird"`
	Pipes  PipesConfig  `yaml:"pipes"`
	Ground GroundConfig `yaml:"ground"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	GroundY         float64 `yaml:"ground_y"`
	GroundThreshold float64 `yaml:"ground_threshold"`
}

// BirdConfig defines bird physics, size and start positions.
type BirdConfig struct {
	Gravity         float64 `yaml:"gravity"`
	FlapImpulse     float64 `yaml:"flap_impulse"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	StartX          float64 `yaml:"start_x"`
	Player1StartY   float64 `yaml:"player1_start_y"`
	Player2StartY   float64 `yaml:"player2_start_y"`
	AnimationPeriod int     `yaml:"animation_period"`
}

// PipesConfig holds the values shared by every pipe in play.
// Speed and Gap are process-wide: pipes reference one PipesConfig, never copies.
type PipesConfig struct {
	Speed         float64 `yaml:"speed"`
	Gap           float64 `yaml:"gap"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnInterval int     `yaml:"spawn_interval"`
	MinGapY       int     `yaml:"min_gap_y"`
	MaxGapY       int     `yaml:"max_gap_y"`
}

// GroundConfig defines the cosmetic scrolling ground strip.
type GroundConfig struct {
	TileWidth float64 `yaml:"tile_width"`
}
