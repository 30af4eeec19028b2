package hir

import (
	"ferro/internal/hygiene"
	"ferro/internal/source"
)

// Name is an interned identifier in the semantic model.
type Name source.StringID

// Display returns the spelled-out identifier.
func (n Name) Display(in *source.Interner) string {
	return in.MustLookup(source.StringID(n))
}

// PathKindTag enumerates the possible roots of a path.
type PathKindTag uint8

const (
	// KindPlain is a relative path: `a::b`.
	KindPlain PathKindTag = iota
	// KindAbs is an absolute path: `::a::b`.
	KindAbs
	// KindCrate is rooted at the current crate: `crate::a`.
	KindCrate
	// KindSelf is rooted at the current module: `self::a`.
	KindSelf
	// KindSuper is rooted at the parent module: `super::a`.
	KindSuper
	// KindDollarCrate is rooted at the crate a macro was defined in.
	// Only hygiene resolution produces it.
	KindDollarCrate
	// KindTypeRelative is rooted at a type: `<T>::item`.
	KindTypeRelative
)

// PathKind is the root of a path: the tag plus its payload, if any.
type PathKind struct {
	Tag   PathKindTag
	Crate hygiene.CrateID // KindDollarCrate
	Type  *TypeRef        // KindTypeRelative
}

// GenericArgKind leaves room for lifetime and const arguments later.
type GenericArgKind uint8

const (
	// GenericArgType is a positional type argument.
	GenericArgType GenericArgKind = iota
)

// GenericArg is one positional generic argument.
type GenericArg struct {
	Kind GenericArgKind
	Type TypeRef
}

// AssocTypeBinding is one `Name = Type` associated type binding.
type AssocTypeBinding struct {
	Name Name
	Type TypeRef
}

// GenericArgs is the semantic argument list of one path segment.
// An absent list is a nil *GenericArgs: callers distinguish "no generics
// written" from "empty generics written". Values are shared by pointer
// across paths, so they must not be mutated after construction.
type GenericArgs struct {
	Args []GenericArg

	// HasSelfType marks that Args[0] is a synthesized self type inserted
	// by trait-object desugaring of `<T as Trait>::Item`.
	HasSelfType bool

	Bindings []AssocTypeBinding
}

// ModPath is a path root plus its segment names in source order.
type ModPath struct {
	Kind     PathKind
	Segments []Name
}

// Path is a module path paired with one optional generic argument list per
// segment. len(GenericArgs) == len(Mod.Segments) always holds.
type Path struct {
	Mod         ModPath
	GenericArgs []*GenericArgs
}
