package app

// Config carries the window and pacing parameters for the GUI app.
type Config struct {
	Scale   int
	TPS     int
	Seed    int64
	Sidebar int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() Config {
	return Config{Scale: 3, TPS: 60, Seed: 42, Sidebar: 220}
}