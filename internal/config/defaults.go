package config

import (
	_ "embed"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultDuelConfig returns the built-in duel tuning.
// It mirrors defaults/duel.yaml and is used if the embedded file cannot be parsed.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		World: WorldConfig{
			Width:           600,
			Height:          768,
			GroundY:         578,
			GroundThreshold: 540,
		},
		Bird: BirdConfig{
			Gravity:         14,
			FlapImpulse:     300,
			Width:           51,
			Height:          36,
			StartX:          100,
			Player1StartY:   50,
			Player2StartY:   150,
			AnimationPeriod: 5,
		},
		Pipes: PipesConfig{
			Speed:         400,
			Gap:           170,
			Width:         78,
			Height:        480,
			SpawnInterval: 70,
			MinGapY:       250,
			MaxGapY:       550,
		},
		Ground: GroundConfig{
			TileWidth: 504,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDuelYAML
}
