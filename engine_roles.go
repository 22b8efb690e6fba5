package metro

import (
	"context"

	"github.com/Scoheart-Order/metro/api"
	"github.com/Scoheart-Order/metro/roles"
)

// CurrentUser returns the cached profile, or nil before the first
// successful fetch.
func (e *Engine) CurrentUser() *api.User {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.user
}

// HasProfile reports whether a profile is cached.
func (e *Engine) HasProfile() bool {
	return e.CurrentUser() != nil
}

// roleSet converts the cached profile's role grants into labels. An absent
// user means no roles, never an error.
func (e *Engine) roleSet() []roles.Label {
	user := e.CurrentUser()
	if user == nil {
		return nil
	}
	return roles.FromNames(user.RoleNames())
}

// HasRole reports whether the cached user holds the role.
func (e *Engine) HasRole(l roles.Label) bool {
	return roles.Has(e.roleSet(), l)
}

// HasAnyRole reports whether the cached user holds at least one of the
// wanted roles. An empty wanted list is never satisfied.
func (e *Engine) HasAnyRole(wanted ...roles.Label) bool {
	return roles.HasAny(e.roleSet(), wanted)
}

// IsAdmin reports whether the cached user holds an admin tier.
func (e *Engine) IsAdmin() bool {
	return roles.IsAdmin(e.roleSet())
}

// IsSuperAdmin reports whether the cached user holds the super-admin tier.
func (e *Engine) IsSuperAdmin() bool {
	return roles.IsSuperAdmin(e.roleSet())
}

// Balance returns the cached user's balance, zero when no profile is
// loaded.
func (e *Engine) Balance() float64 {
	user := e.CurrentUser()
	if user == nil {
		return 0
	}
	return user.Money
}

// HomeRoute resolves the landing path for the current session in strict
// priority order: no profile → login, super-admin → super-admin landing,
// admin → admin landing, else the default landing.
func (e *Engine) HomeRoute() string {
	if e == nil {
		return routesLoginFallback
	}
	set := e.roleSet()
	switch {
	case e.CurrentUser() == nil:
		return e.config.Paths.Login
	case roles.IsSuperAdmin(set):
		return e.config.Paths.SuperAdminHome
	case roles.IsAdmin(set):
		return e.config.Paths.AdminHome
	default:
		return e.config.Paths.Home
	}
}

const routesLoginFallback = "/login"

// RecordNavigation lets the gate report its decisions into the engine's
// audit trail and metrics. reason is the gate's Reason string.
func (e *Engine) RecordNavigation(ctx context.Context, path, reason string, allowed bool) {
	if e == nil {
		return
	}
	switch {
	case allowed:
		e.metricInc(MetricNavAllowed)
	case reason == "denied":
		e.metricInc(MetricNavDenied)
	case reason == "superseded":
		e.metricInc(MetricNavSuperseded)
	default:
		e.metricInc(MetricNavRedirectLogin)
	}
	e.auditEmit(ctx, AuditEvent{
		EventType: EventNavigation,
		Path:      path,
		Success:   allowed,
		Metadata:  map[string]string{"reason": reason},
	})
}
