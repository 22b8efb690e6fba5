package gate

import (
	"context"
	"sync/atomic"

	"github.com/Scoheart-Order/metro/roles"
	"github.com/Scoheart-Order/metro/routes"
)

// Session is the slice of the session engine the gate consults.
// *metro.Engine satisfies it; tests inject fakes.
type Session interface {
	// IsAuthenticated reports whether a bearer token is stored.
	IsAuthenticated(ctx context.Context) bool
	// HasProfile reports whether a profile is cached.
	HasProfile() bool
	// FetchProfile loads the profile; any failure rolls the session
	// back to logged-out.
	FetchProfile(ctx context.Context) error
	// Logout clears the session; idempotent.
	Logout(ctx context.Context) error
	// HasAnyRole reports any-of membership against the cached profile.
	HasAnyRole(wanted ...roles.Label) bool
}

// Observer receives every decision, e.g. for audit and metrics.
// *metro.Engine satisfies it via RecordNavigation.
type Observer interface {
	RecordNavigation(ctx context.Context, path, reason string, allowed bool)
}

// Action is what the router must do with a decision.
type Action uint8

const (
	// ActionAllow renders the target.
	ActionAllow Action = iota
	// ActionRedirect navigates to Decision.Target instead.
	ActionRedirect
	// ActionSuperseded marks a decision computed for a target that a
	// newer navigation replaced; it must not be applied.
	ActionSuperseded
)

// Reason explains a decision.
type Reason uint8

const (
	// ReasonPublic: the route chain requires no authentication.
	ReasonPublic Reason = iota
	// ReasonAuthorized: authenticated and role requirements satisfied.
	ReasonAuthorized
	// ReasonNeedsLogin: no token is stored.
	ReasonNeedsLogin
	// ReasonProfileFailed: the profile fetch failed and the session was
	// logged out.
	ReasonProfileFailed
	// ReasonDenied: authenticated but no required role held.
	ReasonDenied
	// ReasonSuperseded: a newer navigation started meanwhile.
	ReasonSuperseded
)

func (r Reason) String() string {
	switch r {
	case ReasonPublic:
		return "public"
	case ReasonAuthorized:
		return "authorized"
	case ReasonNeedsLogin:
		return "needs_login"
	case ReasonProfileFailed:
		return "profile_failed"
	case ReasonDenied:
		return "denied"
	case ReasonSuperseded:
		return "superseded"
	}
	return "unknown"
}

// Decision is the outcome of one navigation attempt.
type Decision struct {
	Action Action
	// Target is the redirect destination when Action is ActionRedirect.
	Target string
	// ReturnTo carries the originally requested path on login redirects
	// so the router can come back after authentication.
	ReturnTo string
	Reason   Reason
}

// Allowed reports whether the target may render.
func (d Decision) Allowed() bool {
	return d.Action == ActionAllow
}

// Config names the redirect destinations.
type Config struct {
	// LoginPath receives unauthenticated navigations. Default "/login".
	LoginPath string
	// DefaultPath receives authenticated but under-privileged
	// navigations. Default "/".
	DefaultPath string
}

// Evaluator runs the navigation state machine against an injected session
// and route table. Safe for concurrent use; overlapping Evaluate calls
// resolve last-request-wins.
type Evaluator struct {
	session  Session
	table    *routes.Table
	cfg      Config
	observer Observer

	seq atomic.Uint64
}

// NewEvaluator wires a gate. observer may be nil.
func NewEvaluator(session Session, table *routes.Table, cfg Config, observer Observer) *Evaluator {
	if cfg.LoginPath == "" {
		cfg.LoginPath = routes.PathLogin
	}
	if cfg.DefaultPath == "" {
		cfg.DefaultPath = routes.PathHome
	}
	return &Evaluator{
		session:  session,
		table:    table,
		cfg:      cfg,
		observer: observer,
	}
}

// Evaluate decides one navigation attempt from a serialized router. If
// another Evaluate starts while this one awaits the profile fetch, the
// stale decision comes back with ActionSuperseded.
func (e *Evaluator) Evaluate(ctx context.Context, path string) Decision {
	gen := e.seq.Add(1)
	return e.decide(ctx, path, gen, true)
}

// Decide is Evaluate without supersession tracking, for callers that are
// not serialized — most notably the HTTP middleware, where concurrent
// requests are independent navigations.
func (e *Evaluator) Decide(ctx context.Context, path string) Decision {
	return e.decide(ctx, path, 0, false)
}

func (e *Evaluator) decide(ctx context.Context, path string, gen uint64, tracked bool) Decision {
	// Unmatched paths fall back to "authenticated, no specific role":
	// the router's catch-all view sits behind login.
	requiresAuth := true
	var required []roles.Label
	if chain, ok := e.table.Match(path); ok {
		requiresAuth = chain.RequiresAuth()
		required = chain.RequiredRoles()
	}

	if !requiresAuth {
		return e.finish(ctx, path, Decision{Action: ActionAllow, Reason: ReasonPublic})
	}

	if !e.session.IsAuthenticated(ctx) {
		return e.finish(ctx, path, Decision{
			Action:   ActionRedirect,
			Target:   e.cfg.LoginPath,
			ReturnTo: path,
			Reason:   ReasonNeedsLogin,
		})
	}

	if !e.session.HasProfile() {
		err := e.session.FetchProfile(ctx)
		if tracked && e.seq.Load() != gen {
			return e.finish(ctx, path, Decision{Action: ActionSuperseded, Reason: ReasonSuperseded})
		}
		if err != nil {
			// FetchProfile already rolled the token back; Logout makes
			// the remaining teardown explicit and is idempotent.
			_ = e.session.Logout(ctx)
			return e.finish(ctx, path, Decision{
				Action:   ActionRedirect,
				Target:   e.cfg.LoginPath,
				ReturnTo: path,
				Reason:   ReasonProfileFailed,
			})
		}
	}

	if len(required) == 0 || e.session.HasAnyRole(required...) {
		return e.finish(ctx, path, Decision{Action: ActionAllow, Reason: ReasonAuthorized})
	}

	// Authenticated but under-privileged: send to the safe default, not
	// to login.
	return e.finish(ctx, path, Decision{
		Action: ActionRedirect,
		Target: e.cfg.DefaultPath,
		Reason: ReasonDenied,
	})
}

func (e *Evaluator) finish(ctx context.Context, path string, d Decision) Decision {
	if e.observer != nil {
		e.observer.RecordNavigation(ctx, path, d.Reason.String(), d.Allowed())
	}
	return d
}
