package ast

import (
	"ferro/internal/source"
)

// SegKind classifies a path segment.
type SegKind uint8

const (
	// SegName is a plain identifier segment, possibly with generics or fn-sugar.
	SegName SegKind = iota
	// SegType is a type-qualified segment: <T> or <T as Trait>.
	SegType
	SegCrate
	SegSelf
	SegSuper
)

// PathSegment is the payload of one `::`-delimited path unit.
// Only the fields for its Kind are meaningful.
type PathSegment struct {
	Kind SegKind

	// LeadingColons marks a `::` before the segment (absolute path marker).
	LeadingColons bool

	// SegName
	Name     source.StringID
	Generics GenericArgListID // explicit <...>, NoGenericArgListID when absent
	Params   ParamListID      // fn-sugar (...) parameter list
	Ret      TypeID           // fn-sugar -> return type

	// SegType
	SelfType TypeID
	Trait    PathID // NoPathID for a plain <T>:: qualifier
}

// PathNode is one link of a path. Qualifier chains leftward, so the node for
// `a::b::c` is the `c` link and its Qualifier is the node for `a::b`.
type PathNode struct {
	Span      source.Span
	Qualifier PathID
	Seg       PathSegment

	// Owner is the use tree that directly owns this path, when the path
	// appears inside a use item. It backs the qualifier fallback for
	// grouped imports.
	Owner UseTreeID
}

type Paths struct {
	Arena *Arena[PathNode]
}

func NewPaths(capHint uint) *Paths {
	return &Paths{
		Arena: NewArena[PathNode](capHint),
	}
}

func (p *Paths) New(span source.Span, qualifier PathID, seg PathSegment) PathID {
	return PathID(p.Arena.Allocate(PathNode{
		Span:      span,
		Qualifier: qualifier,
		Seg:       seg,
	}))
}

func (p *Paths) Get(id PathID) *PathNode {
	return p.Arena.Get(uint32(id))
}

// SetOwnerChain records tree as the owner of the path and its whole
// qualifier chain. Inner paths of type-qualified segments are left alone;
// they never participate in use trees.
func (p *Paths) SetOwnerChain(id PathID, tree UseTreeID) {
	for id.IsValid() {
		node := p.Get(id)
		if node == nil {
			return
		}
		node.Owner = tree
		id = node.Qualifier
	}
}
