package metro

import (
	"time"

	"github.com/Scoheart-Order/metro/routes"
)

// Config defines the tunables of the session engine. Configure before
// [Builder.Build]; treat as immutable afterwards.
type Config struct {
	API     APIConfig
	Paths   PathsConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig locates the backend when the builder constructs its own API
// client. Ignored when a client is injected.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

/*
====================================
PATHS CONFIG
====================================
*/

// PathsConfig names the landing paths the engine and gate redirect to.
type PathsConfig struct {
	Login          string
	Home           string
	AdminHome      string
	SuperAdminHome string
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig tunes the asynchronous audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull drops events instead of blocking when the buffer is
	// full; dropped events are counted.
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig enables the in-process counters.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the configuration the metro client ships with.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout:   10 * time.Second,
			UserAgent: "metro-client/1",
		},
		Paths: PathsConfig{
			Login:          routes.PathLogin,
			Home:           routes.PathHome,
			AdminHome:      routes.PathAdminHome,
			SuperAdminHome: routes.PathSuperAdminHome,
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func normalizeConfig(cfg Config) Config {
	def := DefaultConfig()
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = def.API.Timeout
	}
	if cfg.API.UserAgent == "" {
		cfg.API.UserAgent = def.API.UserAgent
	}
	if cfg.Paths.Login == "" {
		cfg.Paths.Login = def.Paths.Login
	}
	if cfg.Paths.Home == "" {
		cfg.Paths.Home = def.Paths.Home
	}
	if cfg.Paths.AdminHome == "" {
		cfg.Paths.AdminHome = def.Paths.AdminHome
	}
	if cfg.Paths.SuperAdminHome == "" {
		cfg.Paths.SuperAdminHome = def.Paths.SuperAdminHome
	}
	if cfg.Audit.BufferSize <= 0 {
		cfg.Audit.BufferSize = def.Audit.BufferSize
	}
	return cfg
}
