package roles

// Label identifies one authorization tier. The set is closed: the backend
// only ever grants the three tiers below, and every predicate in this
// package is exhaustive over them.
type Label uint8

const (
	// User is the default tier every registered account holds.
	User Label = iota
	// Admin grants access to the metro administration views.
	Admin
	// SuperAdmin grants user management on top of everything Admin can do.
	SuperAdmin
)

// Wire representations as the backend serializes them.
const (
	WireUser       = "ROLE_USER"
	WireAdmin      = "ROLE_ADMIN"
	WireSuperAdmin = "ROLE_SUPER_ADMIN"
)

// String returns the wire representation of the label.
func (l Label) String() string {
	switch l {
	case User:
		return WireUser
	case Admin:
		return WireAdmin
	case SuperAdmin:
		return WireSuperAdmin
	}
	return "ROLE_UNKNOWN"
}

// Parse maps a wire string to its [Label]. The second return is false for
// strings outside the closed set; callers must not treat that as an error.
func Parse(s string) (Label, bool) {
	switch s {
	case WireUser:
		return User, true
	case WireAdmin:
		return Admin, true
	case WireSuperAdmin:
		return SuperAdmin, true
	}
	return 0, false
}

// FromNames converts a slice of wire strings into labels, preserving order
// and silently dropping strings outside the closed set.
func FromNames(names []string) []Label {
	if len(names) == 0 {
		return nil
	}
	out := make([]Label, 0, len(names))
	for _, n := range names {
		if l, ok := Parse(n); ok {
			out = append(out, l)
		}
	}
	return out
}

// Has reports whether set contains l. A nil or empty set means "no roles",
// never an error.
func Has(set []Label, l Label) bool {
	for _, have := range set {
		if have == l {
			return true
		}
	}
	return false
}

// HasAny reports whether set contains at least one of the wanted labels.
// An empty wanted list is never satisfied.
func HasAny(set []Label, wanted []Label) bool {
	for _, w := range wanted {
		if Has(set, w) {
			return true
		}
	}
	return false
}

// IsAdmin reports whether set carries admin-tier privileges, which both
// [Admin] and [SuperAdmin] do.
func IsAdmin(set []Label) bool {
	return Has(set, Admin) || Has(set, SuperAdmin)
}

// IsSuperAdmin reports whether set carries the super-admin tier.
func IsSuperAdmin(set []Label) bool {
	return Has(set, SuperAdmin)
}
