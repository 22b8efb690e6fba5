package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/Scoheart-Order/metro/roles"
	"github.com/Scoheart-Order/metro/routes"
)

// fakeSession scripts the gate's session collaborator.
type fakeSession struct {
	token        bool
	profile      bool
	profileRoles []roles.Label
	fetchErr     error

	fetchCalls  int
	logoutCalls int

	// onFetch runs inside FetchProfile, before its result is applied.
	onFetch func()
}

func (s *fakeSession) IsAuthenticated(context.Context) bool { return s.token }

func (s *fakeSession) HasProfile() bool { return s.profile }

func (s *fakeSession) FetchProfile(context.Context) error {
	s.fetchCalls++
	if s.onFetch != nil {
		s.onFetch()
	}
	if s.fetchErr != nil {
		// Mirror the engine: a failed fetch rolls the session back.
		s.token = false
		s.profile = false
		return s.fetchErr
	}
	s.profile = true
	return nil
}

func (s *fakeSession) Logout(context.Context) error {
	s.logoutCalls++
	s.token = false
	s.profile = false
	return nil
}

func (s *fakeSession) HasAnyRole(wanted ...roles.Label) bool {
	if !s.profile {
		return false
	}
	return roles.HasAny(s.profileRoles, wanted)
}

func newEvaluator(s *fakeSession) *Evaluator {
	return NewEvaluator(s, routes.DefaultTable(), Config{}, nil)
}

func TestPublicRouteAllowedRegardlessOfSession(t *testing.T) {
	for _, s := range []*fakeSession{
		{},
		{token: true},
		{token: true, profile: true, profileRoles: []roles.Label{roles.User}},
	} {
		d := newEvaluator(s).Evaluate(context.Background(), "/login")
		if !d.Allowed() || d.Reason != ReasonPublic {
			t.Fatalf("expected public allow, got %+v", d)
		}
		if s.fetchCalls != 0 {
			t.Fatal("public route must not trigger a profile fetch")
		}
	}
}

func TestNoTokenRedirectsToLoginWithReturnTarget(t *testing.T) {
	s := &fakeSession{}
	d := newEvaluator(s).Evaluate(context.Background(), "/profile")

	if d.Action != ActionRedirect || d.Reason != ReasonNeedsLogin {
		t.Fatalf("expected needs-login redirect, got %+v", d)
	}
	if d.Target != routes.PathLogin {
		t.Fatalf("expected login target, got %q", d.Target)
	}
	if d.ReturnTo != "/profile" {
		t.Fatalf("expected return target preserved, got %q", d.ReturnTo)
	}
	if s.fetchCalls != 0 {
		t.Fatal("no token must mean no profile fetch")
	}
}

func TestTokenWithoutProfileFetchesThenAllows(t *testing.T) {
	s := &fakeSession{token: true, profileRoles: []roles.Label{roles.User}}
	d := newEvaluator(s).Evaluate(context.Background(), "/train-info")

	if !d.Allowed() || d.Reason != ReasonAuthorized {
		t.Fatalf("expected allow after fetch, got %+v", d)
	}
	if s.fetchCalls != 1 {
		t.Fatalf("expected exactly one profile fetch, got %d", s.fetchCalls)
	}
}

func TestCachedProfileSkipsFetch(t *testing.T) {
	s := &fakeSession{token: true, profile: true, profileRoles: []roles.Label{roles.User}}
	d := newEvaluator(s).Evaluate(context.Background(), "/feedback")

	if !d.Allowed() {
		t.Fatalf("expected allow, got %+v", d)
	}
	if s.fetchCalls != 0 {
		t.Fatal("cached profile must not be refetched")
	}
}

func TestProfileFetchFailureLogsOutAndRedirectsToLogin(t *testing.T) {
	s := &fakeSession{token: true, fetchErr: errors.New("network down")}
	d := newEvaluator(s).Evaluate(context.Background(), "/admin/line-management")

	if d.Action != ActionRedirect || d.Reason != ReasonProfileFailed {
		t.Fatalf("expected profile-failed redirect, got %+v", d)
	}
	if d.Target != routes.PathLogin || d.ReturnTo != "/admin/line-management" {
		t.Fatalf("expected login redirect with return target, got %+v", d)
	}
	if s.logoutCalls != 1 {
		t.Fatalf("expected logout side effects, got %d calls", s.logoutCalls)
	}
	if s.token || s.profile {
		t.Fatal("session must end logged out")
	}
}

func TestUnderPrivilegedRedirectsToDefaultNotLogin(t *testing.T) {
	// Token present, no cached profile; fetch yields a plain rider.
	s := &fakeSession{token: true, profileRoles: []roles.Label{roles.User}}
	d := newEvaluator(s).Evaluate(context.Background(), "/admin")

	if d.Action != ActionRedirect || d.Reason != ReasonDenied {
		t.Fatalf("expected denial, got %+v", d)
	}
	if d.Target != routes.PathHome {
		t.Fatalf("denied user must land on the default path, got %q", d.Target)
	}
	if d.ReturnTo != "" {
		t.Fatal("denial must not carry a return target")
	}
}

func TestRoleCheckAnyOfGrid(t *testing.T) {
	admin := []roles.Label{roles.Admin, roles.SuperAdmin}
	cases := []struct {
		name  string
		held  []roles.Label
		allow bool
	}{
		{"empty user set", nil, false},
		{"exact match", admin, true},
		{"one of required", []roles.Label{roles.SuperAdmin}, true},
		{"disjoint", []roles.Label{roles.User}, false},
	}
	for _, tc := range cases {
		s := &fakeSession{token: true, profile: true, profileRoles: tc.held}
		d := newEvaluator(s).Evaluate(context.Background(), "/admin/stop-management")
		if d.Allowed() != tc.allow {
			t.Fatalf("%s: expected allow=%v, got %+v", tc.name, tc.allow, d)
		}
	}
}

func TestEmptyRequiredRolesAdmitsAnyAuthenticatedUser(t *testing.T) {
	s := &fakeSession{token: true, profile: true} // no roles at all
	d := newEvaluator(s).Evaluate(context.Background(), "/profile")
	if !d.Allowed() {
		t.Fatalf("route without role requirements must admit any authenticated user, got %+v", d)
	}
}

func TestSuperAdminSubtreeRejectsAdmin(t *testing.T) {
	s := &fakeSession{token: true, profile: true, profileRoles: []roles.Label{roles.Admin}}
	d := newEvaluator(s).Evaluate(context.Background(), "/superadmin/user-management")
	if d.Allowed() {
		t.Fatal("admin must not enter the super-admin subtree")
	}
}

func TestUnmatchedPathRequiresAuth(t *testing.T) {
	s := &fakeSession{}
	d := newEvaluator(s).Evaluate(context.Background(), "/no-such-view")
	if d.Action != ActionRedirect || d.Reason != ReasonNeedsLogin {
		t.Fatalf("unmatched path must sit behind login, got %+v", d)
	}

	authed := &fakeSession{token: true, profile: true}
	d = newEvaluator(authed).Evaluate(context.Background(), "/no-such-view")
	if !d.Allowed() {
		t.Fatalf("unmatched path must not demand roles, got %+v", d)
	}
}

func TestStaleDecisionIsSuperseded(t *testing.T) {
	s := &fakeSession{token: true, profileRoles: []roles.Label{roles.User}}
	e := newEvaluator(s)

	var second Decision
	s.onFetch = func() {
		// A newer navigation arrives while the first awaits the fetch.
		fetch := s.onFetch
		s.onFetch = nil
		second = e.Evaluate(context.Background(), "/route-info")
		s.onFetch = fetch
	}

	first := e.Evaluate(context.Background(), "/train-info")
	if first.Action != ActionSuperseded {
		t.Fatalf("expected first decision superseded, got %+v", first)
	}
	if !second.Allowed() {
		t.Fatalf("newer navigation must resolve normally, got %+v", second)
	}
}

func TestDecisionsAreRecomputedEachNavigation(t *testing.T) {
	s := &fakeSession{token: true, profile: true, profileRoles: []roles.Label{roles.Admin}}
	e := newEvaluator(s)

	if d := e.Evaluate(context.Background(), "/admin"); !d.Allowed() {
		t.Fatalf("admin must enter /admin, got %+v", d)
	}

	// Roles change mid-session; the next navigation must see it.
	s.profileRoles = []roles.Label{roles.User}
	if d := e.Evaluate(context.Background(), "/admin"); d.Allowed() {
		t.Fatal("revoked role must deny on the next navigation")
	}
}

type recordingObserver struct {
	paths   []string
	reasons []string
	allowed []bool
}

func (o *recordingObserver) RecordNavigation(_ context.Context, path, reason string, allowed bool) {
	o.paths = append(o.paths, path)
	o.reasons = append(o.reasons, reason)
	o.allowed = append(o.allowed, allowed)
}

func TestObserverSeesEveryDecision(t *testing.T) {
	obs := &recordingObserver{}
	s := &fakeSession{}
	e := NewEvaluator(s, routes.DefaultTable(), Config{}, obs)

	e.Evaluate(context.Background(), "/login")
	e.Evaluate(context.Background(), "/profile")

	if len(obs.paths) != 2 {
		t.Fatalf("expected 2 recorded decisions, got %d", len(obs.paths))
	}
	if obs.reasons[0] != "public" || !obs.allowed[0] {
		t.Fatalf("unexpected first record: %v %v", obs.reasons[0], obs.allowed[0])
	}
	if obs.reasons[1] != "needs_login" || obs.allowed[1] {
		t.Fatalf("unexpected second record: %v %v", obs.reasons[1], obs.allowed[1])
	}
}
