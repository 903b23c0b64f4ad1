package core

// RuntimeConfig contains configuration passed to a game at initialization.
// Hosts fill it from the loaded game config and their own surface size.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in pixels (cells for terminal hosts)
	ScreenH  int   // Surface height in pixels
	TickRate int   // Frames per second driven by the host loop (default 60)
	Seed     int64 // RNG seed for food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  575,
		ScreenH:  598,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
