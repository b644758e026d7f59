package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the hardcoded default configuration.
// It mirrors defaults/pacman.yaml and is used if the embed cannot be parsed.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Screen: ScreenConfig{
			Width:    600,
			Height:   400,
			CellSize: 20,
		},
		FPS: 10,
		Enemies: EnemyConfig{
			Count:           4,
			RedirectSeconds: 5,
			Spawn:           SpawnClamped,
			Palette:         []string{"red", "green", "blue"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPacmanYAML
}
