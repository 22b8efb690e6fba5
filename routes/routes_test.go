package routes

import (
	"testing"

	"github.com/Scoheart-Order/metro/roles"
)

func TestMatchPublicTop(t *testing.T) {
	table := DefaultTable()

	chain, ok := table.Match("/login")
	if !ok {
		t.Fatal("expected /login to match")
	}
	if chain.RequiresAuth() {
		t.Fatal("/login must not require auth")
	}
	if got := chain.RequiredRoles(); len(got) != 0 {
		t.Fatalf("expected no required roles, got %v", got)
	}
}

func TestMatchNestedChild(t *testing.T) {
	table := DefaultTable()

	chain, ok := table.Match("/admin/train-management")
	if !ok {
		t.Fatal("expected /admin/train-management to match")
	}
	if len(chain) != 2 {
		t.Fatalf("expected chain of 2, got %d", len(chain))
	}
	if !chain.RequiresAuth() {
		t.Fatal("/admin subtree must require auth")
	}
	want := []roles.Label{roles.Admin, roles.SuperAdmin}
	got := chain.RequiredRoles()
	if len(got) != len(want) {
		t.Fatalf("expected roles %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected roles %v in order, got %v", want, got)
		}
	}
}

func TestMatchIndexChild(t *testing.T) {
	table := DefaultTable()

	chain, ok := table.Match("/admin")
	if !ok {
		t.Fatal("expected /admin to match")
	}
	if chain.Title() != "Admin Home" {
		t.Fatalf("expected index title, got %q", chain.Title())
	}
}

func TestMatchRootDoesNotShadowLongerTops(t *testing.T) {
	table := DefaultTable()

	chain, ok := table.Match("/superadmin/user-management")
	if !ok {
		t.Fatal("expected /superadmin/user-management to match")
	}
	got := chain.RequiredRoles()
	if len(got) != 1 || got[0] != roles.SuperAdmin {
		t.Fatalf("expected super-admin requirement, got %v", got)
	}
}

func TestMatchUnknownSegment(t *testing.T) {
	table := DefaultTable()

	if _, ok := table.Match("/admin/no-such-view"); ok {
		t.Fatal("unknown segment must not match")
	}
	if _, ok := table.Match("/admins"); ok {
		t.Fatal("prefix lookalike must not match")
	}
}

func TestMatchNormalizesTrailingSlash(t *testing.T) {
	table := DefaultTable()

	a, ok := table.Match("/feedback/")
	if !ok {
		t.Fatal("expected /feedback/ to match")
	}
	b, _ := table.Match("/feedback")
	if a.Title() != b.Title() {
		t.Fatal("trailing slash must not change the match")
	}
}

func TestRequiredRolesUnionDedupes(t *testing.T) {
	chain := Chain{
		&Node{RequiredRoles: []roles.Label{roles.Admin, roles.SuperAdmin}},
		&Node{RequiredRoles: []roles.Label{roles.SuperAdmin, roles.User}},
	}
	got := chain.RequiredRoles()
	want := []roles.Label{roles.Admin, roles.SuperAdmin, roles.User}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected insertion order %v, got %v", want, got)
		}
	}
}

func TestRequiresAuthIsChainOR(t *testing.T) {
	chain := Chain{&Node{}, &Node{RequiresAuth: true}}
	if !chain.RequiresAuth() {
		t.Fatal("any node requiring auth must mark the chain")
	}
	if (Chain{&Node{}, &Node{}}).RequiresAuth() {
		t.Fatal("no node requiring auth must leave the chain public")
	}
}
