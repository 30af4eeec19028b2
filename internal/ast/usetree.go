package ast

import (
	"ferro/internal/source"
)

// UseTree is one node of a `use` import tree:
//
//	use a::b;                 path only
//	use a::b as c;            path + alias
//	use a::*;                 path + glob
//	use a::{b, c::d};         path + list
//
// Parent is the tree whose group list contains this tree, NoUseTreeID at the
// top level. The qualifier fallback hops through it.
type UseTree struct {
	Span    source.Span
	Path    PathID // NoPathID for a bare `{...}` or `*`
	List    []UseTreeID
	HasList bool
	Glob    bool
	Alias   source.StringID
	Parent  UseTreeID
}

type UseTrees struct {
	Arena *Arena[UseTree]
}

func NewUseTrees(capHint uint) *UseTrees {
	return &UseTrees{
		Arena: NewArena[UseTree](capHint),
	}
}

func (u *UseTrees) New(tree UseTree) UseTreeID {
	return UseTreeID(u.Arena.Allocate(tree))
}

func (u *UseTrees) Get(id UseTreeID) *UseTree {
	return u.Arena.Get(uint32(id))
}

// SetParent links child into the group of parent.
func (u *UseTrees) SetParent(child, parent UseTreeID) {
	if node := u.Get(child); node != nil {
		node.Parent = parent
	}
}
