package metro

import (
	"github.com/Scoheart-Order/metro/api"
	"github.com/Scoheart-Order/metro/tokenstore"
)

// Builder assembles an [Engine]. Collaborators left unset fall back to
// defaults where one exists: the token store defaults to in-memory, and
// the API services are constructed from Config.API.BaseURL when no client
// or service overrides are provided.
type Builder struct {
	config Config

	tokens    tokenstore.Store
	client    *api.Client
	auth      AuthAPI
	users     UserAPI
	auditSink AuditSink

	built bool
}

// New returns a builder loaded with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithTokenStore injects the token persistence backend.
func (b *Builder) WithTokenStore(store tokenstore.Store) *Builder {
	b.tokens = store
	return b
}

// WithAPIClient injects a prebuilt API client; its Auth and Users services
// become the engine's collaborators unless overridden.
func (b *Builder) WithAPIClient(client *api.Client) *Builder {
	b.client = client
	return b
}

// WithAuthAPI overrides the auth collaborator, typically with a test fake.
func (b *Builder) WithAuthAPI(a AuthAPI) *Builder {
	b.auth = a
	return b
}

// WithUserAPI overrides the user collaborator, typically with a test fake.
func (b *Builder) WithUserAPI(u UserAPI) *Builder {
	b.users = u
	return b
}

// WithAuditSink injects the audit destination. Ignored when auditing is
// disabled in the config.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// Build validates the wiring and returns a ready engine.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}

	cfg := normalizeConfig(b.config)

	tokens := b.tokens
	if tokens == nil {
		tokens = tokenstore.NewMemory()
	}

	client := b.client
	if client == nil && (b.auth == nil || b.users == nil) && cfg.API.BaseURL != "" {
		client = api.NewClient(api.ClientConfig{
			BaseURL:     cfg.API.BaseURL,
			Timeout:     cfg.API.Timeout,
			UserAgent:   cfg.API.UserAgent,
			TokenSource: tokens.Get,
		})
	}

	auth := b.auth
	if auth == nil && client != nil {
		auth = client.Auth
	}
	users := b.users
	if users == nil && client != nil {
		users = client.Users
	}
	if auth == nil {
		return nil, ErrAuthAPIRequired
	}
	if users == nil {
		return nil, ErrUserAPIRequired
	}

	var metrics *Metrics
	if cfg.Metrics.Enabled {
		metrics = NewMetrics()
	}

	b.built = true
	return &Engine{
		config:  cfg,
		tokens:  tokens,
		auth:    auth,
		users:   users,
		audit:   newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics: metrics,
	}, nil
}
