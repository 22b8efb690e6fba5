package routes

import (
	"strings"

	"github.com/Scoheart-Order/metro/roles"
)

// Node is one segment of the navigation map. Top-level nodes carry their
// full path ("/", "/admin"); children carry a bare segment ("train-info")
// or the empty string for the index view of their parent.
type Node struct {
	Path          string
	Title         string
	RequiresAuth  bool
	RequiredRoles []roles.Label
	Children      []*Node
}

// Chain is the matched sequence of nodes from a top-level node down to the
// navigation target.
type Chain []*Node

// RequiresAuth reports whether any node in the chain demands
// authentication.
func (c Chain) RequiresAuth() bool {
	for _, n := range c {
		if n.RequiresAuth {
			return true
		}
	}
	return false
}

// RequiredRoles returns the union of the chain's role requirements with
// duplicates dropped and insertion order preserved. Semantically a set; the
// order only matters for user-facing messages.
func (c Chain) RequiredRoles() []roles.Label {
	var out []roles.Label
	for _, n := range c {
		for _, r := range n.RequiredRoles {
			if !roles.Has(out, r) {
				out = append(out, r)
			}
		}
	}
	return out
}

// Title returns the deepest non-empty title on the chain.
func (c Chain) Title() string {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Title != "" {
			return c[i].Title
		}
	}
	return ""
}

// Table is an immutable set of top-level nodes.
type Table struct {
	tops []*Node
}

// NewTable builds a table from top-level nodes. The nodes are referenced,
// not copied; callers must not mutate them afterwards.
func NewTable(tops ...*Node) *Table {
	return &Table{tops: tops}
}

// Match resolves path to its chain of nodes. The boolean is false when no
// top-level node owns the path or a segment has no corresponding child.
func (t *Table) Match(path string) (Chain, bool) {
	path = normalize(path)

	var best *Node
	for _, top := range t.tops {
		if path != top.Path && !strings.HasPrefix(path, prefixOf(top)) {
			continue
		}
		// Prefer the longest owning prefix so "/" does not shadow "/admin".
		if best == nil || len(top.Path) > len(best.Path) {
			best = top
		}
	}
	if best == nil {
		return nil, false
	}

	chain := Chain{best}
	rest := strings.TrimPrefix(strings.TrimPrefix(path, best.Path), "/")
	node := best
	for rest != "" {
		seg, tail, _ := strings.Cut(rest, "/")
		child := childNamed(node, seg)
		if child == nil {
			return nil, false
		}
		chain = append(chain, child)
		node = child
		rest = tail
	}
	if index := childNamed(node, ""); index != nil && node == best {
		chain = append(chain, index)
	}
	return chain, true
}

func childNamed(n *Node, seg string) *Node {
	for _, c := range n.Children {
		if c.Path == seg {
			return c
		}
	}
	return nil
}

func prefixOf(top *Node) string {
	if top.Path == "/" {
		return "/"
	}
	return top.Path + "/"
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
