package metro

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/Scoheart-Order/metro/api"
	"github.com/Scoheart-Order/metro/tokenstore"
)

// AuthAPI is the slice of the backend auth surface the engine consumes.
// *api.AuthService satisfies it; tests inject fakes.
type AuthAPI interface {
	Login(ctx context.Context, in api.LoginInput) (api.TokenPair, error)
	LoginByPhone(ctx context.Context, in api.PhoneLoginInput) (api.TokenPair, error)
	Register(ctx context.Context, in api.RegisterInput) error
	Logout(ctx context.Context) error
}

// UserAPI is the slice of the backend user surface the engine consumes.
// *api.UserService satisfies it; tests inject fakes.
type UserAPI interface {
	GetProfile(ctx context.Context) (*api.User, error)
	UpdateProfile(ctx context.Context, in api.ProfileUpdate) (*api.User, error)
	UpdatePassword(ctx context.Context, in api.PasswordUpdate) error
	Recharge(ctx context.Context, in api.RechargeInput) error
	UploadAvatar(ctx context.Context, filename string, file io.Reader) (string, error)
}

// Engine owns the client session: the stored bearer token, the cached user
// profile, and every mutation of either. Build with [Builder.Build].
//
// Invariant: the cached profile is populated only while a token is stored;
// whatever clears the token clears the profile in the same critical
// section.
type Engine struct {
	config  Config
	tokens  tokenstore.Store
	auth    AuthAPI
	users   UserAPI
	audit   *auditDispatcher
	metrics *Metrics

	mu   sync.Mutex
	user *api.User
}

// Close flushes the audit pipeline. The engine must not be used after
// Close.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped reports how many audit events were discarded because the
// buffer was full.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot copies the engine's counters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:            map[MetricID]uint64{},
			ProfileFetchLatency: make([]uint64, latencyBucketCount),
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) auditEmit(ctx context.Context, event AuditEvent) {
	if e == nil || e.audit == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	e.audit.Emit(ctx, event)
}

// token reads the stored bearer token; empty means logged out.
func (e *Engine) token(ctx context.Context) string {
	tok, err := e.tokens.Get(ctx)
	if err != nil {
		return ""
	}
	return tok
}

// IsAuthenticated reports whether a bearer token is stored. True does not
// guarantee validity; that is only learned from the backend.
func (e *Engine) IsAuthenticated(ctx context.Context) bool {
	if e == nil {
		return false
	}
	return e.token(ctx) != ""
}
