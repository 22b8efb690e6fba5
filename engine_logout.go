package metro

import "context"

// Logout ends the session. The remote logout is best-effort: its failure
// is audited, never returned. The token and cached profile are cleared
// unconditionally, so Logout is idempotent — calling it while already
// logged out is a no-op with no error.
func (e *Engine) Logout(ctx context.Context) error {
	if e == nil {
		return ErrEngineNotReady
	}

	if e.token(ctx) != "" {
		if err := e.auth.Logout(ctx); err != nil {
			e.auditEmit(ctx, AuditEvent{EventType: EventRemoteLogoutFailed, Error: err.Error()})
		}
	}

	_ = e.tokens.Clear(ctx)

	e.mu.Lock()
	e.user = nil
	e.mu.Unlock()

	e.metricInc(MetricLogout)
	e.auditEmit(ctx, AuditEvent{EventType: EventLogout, Success: true})
	return nil
}
