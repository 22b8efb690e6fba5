package metro

import (
	"context"

	"github.com/Scoheart-Order/metro/api"
)

// Login exchanges username/password credentials for a token and stores it.
// The profile is NOT fetched eagerly: login stays usable even when a
// profile fetch would fail transiently. Failures are propagated unwrapped
// so the caller can surface the specific reason.
func (e *Engine) Login(ctx context.Context, username, password string) error {
	if e == nil {
		return ErrEngineNotReady
	}

	pair, err := e.auth.Login(ctx, api.LoginInput{Username: username, Password: password})
	if err != nil {
		e.metricInc(MetricLoginFailure)
		e.auditEmit(ctx, AuditEvent{EventType: EventLogin, Username: username, Error: err.Error()})
		return err
	}

	return e.adoptToken(ctx, EventLogin, username, pair)
}

// LoginByPhone is [Engine.Login] with phone/password credentials.
func (e *Engine) LoginByPhone(ctx context.Context, phone, password string) error {
	if e == nil {
		return ErrEngineNotReady
	}

	pair, err := e.auth.LoginByPhone(ctx, api.PhoneLoginInput{Phone: phone, Password: password})
	if err != nil {
		e.metricInc(MetricLoginFailure)
		e.auditEmit(ctx, AuditEvent{EventType: EventLoginByPhone, Username: phone, Error: err.Error()})
		return err
	}

	return e.adoptToken(ctx, EventLoginByPhone, phone, pair)
}

func (e *Engine) adoptToken(ctx context.Context, event, identifier string, pair api.TokenPair) error {
	if err := e.tokens.Set(ctx, pair.AccessToken); err != nil {
		e.metricInc(MetricLoginFailure)
		e.auditEmit(ctx, AuditEvent{EventType: event, Username: identifier, Error: err.Error()})
		return err
	}

	// A fresh token invalidates whatever profile the previous session
	// cached.
	e.mu.Lock()
	e.user = nil
	e.mu.Unlock()

	e.metricInc(MetricLoginSuccess)
	e.auditEmit(ctx, AuditEvent{EventType: event, Username: identifier, Success: true})
	return nil
}

// Register creates a rider account. Errors are propagated unwrapped for
// display; no session state changes.
func (e *Engine) Register(ctx context.Context, in api.RegisterInput) error {
	if e == nil {
		return ErrEngineNotReady
	}

	if err := e.auth.Register(ctx, in); err != nil {
		e.metricInc(MetricRegisterFailure)
		e.auditEmit(ctx, AuditEvent{EventType: EventRegister, Username: in.Username, Error: err.Error()})
		return err
	}

	e.metricInc(MetricRegisterSuccess)
	e.auditEmit(ctx, AuditEvent{EventType: EventRegister, Username: in.Username, Success: true})
	return nil
}
