package livereload

// Config holds configuration for the live reload feature.
type Config struct {
	// Enabled turns the watcher and the websocket endpoint on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// DebounceMs is how long to wait after the last filesystem event
	// before broadcasting a reload, coalescing editor write bursts.
	DebounceMs int `mapstructure:"debounce_ms" default:"200"`
}
