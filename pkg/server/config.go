package server

import "time"

// Config configures the Velocity SSR server.
type Config struct {
	// Address is the listen address (default ":8080").
	Address string

	// Title is the rendered document title.
	Title string

	// RuntimeSrc is the client runtime module URL embedded in pages.
	RuntimeSrc string

	// SnapshotKey is the key used when persisting state snapshots
	// (default "state").
	SnapshotKey string

	// DevtoolsInterval is how often the devtools stream emits frames
	// (default 1s).
	DevtoolsInterval time.Duration

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout for the HTTP server (default 5s).
	ReadHeaderTimeout time.Duration
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":8080",
		Title:             "Velocity App",
		RuntimeSrc:        "/velocity-runtime.js",
		SnapshotKey:       "state",
		DevtoolsInterval:  time.Second,
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c *Config) withDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.RuntimeSrc == "" {
		c.RuntimeSrc = d.RuntimeSrc
	}
	if c.SnapshotKey == "" {
		c.SnapshotKey = d.SnapshotKey
	}
	if c.DevtoolsInterval == 0 {
		c.DevtoolsInterval = d.DevtoolsInterval
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	return c
}
