package core

// RuntimeConfig contains configuration passed to the replay viewer.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Replay frames per second
	Seed     int64 // RNG seed for deterministic simulation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use a fresh seed in the platform layer
	}
}
