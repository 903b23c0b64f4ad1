package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
// It matches defaults/snake.yaml and is the base every loaded file overlays.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Rows:    26,
			Columns: 25,
		},
		Gameplay: GameplayConfig{
			SecondsPerTick: 0.1,
			InitialLength:  5,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
		Terminal: TerminalConfig{
			TileWidth:  3,
			TileHeight: 1,
		},
		Web: WebConfig{
			Width:  575,
			Height: 598,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
