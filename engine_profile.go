package metro

import (
	"context"
	"io"
	"time"

	"github.com/Scoheart-Order/metro/api"
)

// FetchProfile loads the account record for the stored token and replaces
// the cached profile wholesale. Without a token it returns [ErrNoToken]
// and makes no network call.
//
// Any fetch failure is treated as an invalid token: the token and the
// cached profile are cleared and the session rolls back to logged-out.
// That conflates network failures with real 401s on purpose; the policy is
// isolated in invalidateOn so a stricter variant stays a local change.
func (e *Engine) FetchProfile(ctx context.Context) error {
	if e == nil {
		return ErrEngineNotReady
	}
	if e.token(ctx) == "" {
		return ErrNoToken
	}

	start := time.Now()
	user, err := e.users.GetProfile(ctx)
	if e.metrics != nil {
		e.metrics.ObserveProfileFetch(time.Since(start))
	}
	if err != nil {
		e.invalidateOn(ctx, err)
		return err
	}

	e.mu.Lock()
	e.user = user
	e.mu.Unlock()

	e.metricInc(MetricProfileFetchSuccess)
	e.auditEmit(ctx, AuditEvent{EventType: EventProfileFetch, Username: user.Username, UserID: user.ID, Success: true})
	return nil
}

// invalidateOn is the single decision point for profile-fetch failures.
// Today every failure logs the session out; distinguishing Unauthorized
// from transient failures would change only this function.
func (e *Engine) invalidateOn(ctx context.Context, cause error) {
	_ = e.tokens.Clear(ctx)

	e.mu.Lock()
	e.user = nil
	e.mu.Unlock()

	e.metricInc(MetricProfileFetchFailure)
	e.auditEmit(ctx, AuditEvent{EventType: EventSessionInvalidated, Error: cause.Error()})
}

// UpdateProfile edits the caller's profile. Unlike FetchProfile, the
// response is merged into the cache (it is the backend's updated record
// for the same account), and failures do not touch session state.
func (e *Engine) UpdateProfile(ctx context.Context, in api.ProfileUpdate) error {
	if e == nil {
		return ErrEngineNotReady
	}

	user, err := e.users.UpdateProfile(ctx, in)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.user = user
	e.mu.Unlock()
	return nil
}

// UpdatePassword changes the caller's password. Session state is
// untouched; the backend decides whether existing tokens survive.
func (e *Engine) UpdatePassword(ctx context.Context, in api.PasswordUpdate) error {
	if e == nil {
		return ErrEngineNotReady
	}
	return e.users.UpdatePassword(ctx, in)
}

// UploadAvatar uploads a new avatar image and mirrors the returned URL
// into the cached profile.
func (e *Engine) UploadAvatar(ctx context.Context, filename string, file io.Reader) (string, error) {
	if e == nil {
		return "", ErrEngineNotReady
	}

	avatarURL, err := e.users.UploadAvatar(ctx, filename, file)
	if err != nil {
		return "", err
	}

	// Copy on write: callers may still hold the pointer CurrentUser
	// returned.
	e.mu.Lock()
	if e.user != nil {
		updated := *e.user
		updated.Avatar = avatarURL
		e.user = &updated
	}
	e.mu.Unlock()
	return avatarURL, nil
}

// Recharge tops up the balance and refreshes the cached profile so Balance
// reflects the new amount.
func (e *Engine) Recharge(ctx context.Context, amount float64) error {
	if e == nil {
		return ErrEngineNotReady
	}
	if err := e.users.Recharge(ctx, api.RechargeInput{Amount: amount}); err != nil {
		return err
	}
	return e.FetchProfile(ctx)
}
