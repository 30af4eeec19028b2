package ast

import (
	"ferro/internal/source"
)

type TypeExprKind uint8

const (
	// TypeExprPath is a path type: `a::B<T>` or `<T as Trait>::Item`.
	TypeExprPath TypeExprKind = iota
	// TypeExprTuple is `()` or `(A, B)`.
	TypeExprTuple
	// TypeExprReference is `&T` or `&mut T`.
	TypeExprReference
	// TypeExprSlice is `[T]`.
	TypeExprSlice
	// TypeExprNever is `!`.
	TypeExprNever
	// TypeExprPlaceholder is `_`.
	TypeExprPlaceholder
)

// TypeExpr is one type syntax node. Only the fields for its Kind are set.
type TypeExpr struct {
	Kind TypeExprKind
	Span source.Span

	Path  PathID   // TypeExprPath
	Elems []TypeID // TypeExprTuple
	Elem  TypeID   // TypeExprReference, TypeExprSlice
	Mut   bool     // TypeExprReference
}

type TypeExprs struct {
	Arena *Arena[TypeExpr]
}

func NewTypeExprs(capHint uint) *TypeExprs {
	return &TypeExprs{
		Arena: NewArena[TypeExpr](capHint),
	}
}

func (t *TypeExprs) Get(id TypeID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}

func (t *TypeExprs) NewPath(span source.Span, path PathID) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{Kind: TypeExprPath, Span: span, Path: path}))
}

func (t *TypeExprs) NewTuple(span source.Span, elems []TypeID) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{Kind: TypeExprTuple, Span: span, Elems: elems}))
}

func (t *TypeExprs) NewReference(span source.Span, elem TypeID, mut bool) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{Kind: TypeExprReference, Span: span, Elem: elem, Mut: mut}))
}

func (t *TypeExprs) NewSlice(span source.Span, elem TypeID) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{Kind: TypeExprSlice, Span: span, Elem: elem}))
}

func (t *TypeExprs) NewNever(span source.Span) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{Kind: TypeExprNever, Span: span}))
}

func (t *TypeExprs) NewPlaceholder(span source.Span) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{Kind: TypeExprPlaceholder, Span: span}))
}
