// Package config provides YAML-based configuration loading and validation
// for the Snake game and its hosts.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Board layout needs a top bar, a wall ring and a floor big enough for the
// title labels. The top bar holds the game-over labels (columns 1-16) left
// of the score label, which starts 5 columns from the right edge.
const (
	MinRows    = 16
	MinColumns = 22
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Loop     LoopConfig     `yaml:"loop"`
	Terminal TerminalConfig `yaml:"terminal"`
	Web      WebConfig      `yaml:"web"`
}

// GridConfig defines the tile dimensions of the board.
type GridConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// GameplayConfig defines movement cadence and the starting snake.
type GameplayConfig struct {
	SecondsPerTick float64 `yaml:"seconds_per_tick"` // Wall-clock time between snake moves
	InitialLength  int     `yaml:"initial_length"`
}

// LoopConfig defines the host frame loop.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // Frames per second
}

// TerminalConfig defines how many character cells make up one tile.
type TerminalConfig struct {
	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`
}

// WebConfig defines the browser canvas size in pixels.
type WebConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MoveInterval returns the movement tick as a duration.
func (g GameplayConfig) MoveInterval() time.Duration {
	return time.Duration(g.SecondsPerTick * float64(time.Second))
}

// TerminalSize returns the board size in character cells.
func (c SnakeConfig) TerminalSize() (width, height int) {
	return c.Grid.Columns * c.Terminal.TileWidth, c.Grid.Rows * c.Terminal.TileHeight
}

// FloorColumns returns the number of walkable columns inside the walls.
func (c SnakeConfig) FloorColumns() int {
	return c.Grid.Columns - 2
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Rows < MinRows {
		errs = append(errs, fmt.Errorf("grid.rows must be at least %d, got %d", MinRows, c.Grid.Rows))
	}
	if c.Grid.Columns < MinColumns {
		errs = append(errs, fmt.Errorf("grid.columns must be at least %d, got %d", MinColumns, c.Grid.Columns))
	}
	if c.Gameplay.SecondsPerTick <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.seconds_per_tick must be positive, got %g", c.Gameplay.SecondsPerTick))
	}
	if c.Gameplay.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("gameplay.initial_length must be at least 1, got %d", c.Gameplay.InitialLength))
	} else if c.Grid.Columns >= MinColumns && c.Gameplay.InitialLength >= c.FloorColumns() {
		errs = append(errs, fmt.Errorf("gameplay.initial_length %d does not fit a floor %d tiles wide",
			c.Gameplay.InitialLength, c.FloorColumns()))
	}
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_rate must be positive, got %d", c.Loop.TickRate))
	}
	if c.Terminal.TileWidth < 1 || c.Terminal.TileHeight < 1 {
		errs = append(errs, fmt.Errorf("terminal tile size must be at least 1x1, got %dx%d",
			c.Terminal.TileWidth, c.Terminal.TileHeight))
	}
	if c.Web.Width < c.Grid.Columns || c.Web.Height < c.Grid.Rows {
		errs = append(errs, fmt.Errorf("web canvas %dx%d is smaller than one pixel per tile",
			c.Web.Width, c.Web.Height))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}
