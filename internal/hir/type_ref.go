package hir

import (
	"ferro/internal/ast"
	"ferro/internal/hygiene"
)

// TypeRefKind classifies a semantic type reference.
type TypeRefKind uint8

const (
	// TypeRefError stands in for missing or unlowerable type syntax.
	TypeRefError TypeRefKind = iota
	TypeRefPath
	TypeRefTuple
	TypeRefReference
	TypeRefSlice
	TypeRefNever
	TypeRefPlaceholder
)

// TypeRef is the semantic form of a type written in source.
// Only the fields for its Kind are set.
type TypeRef struct {
	Kind TypeRefKind

	Path  *Path     // TypeRefPath
	Elems []TypeRef // TypeRefTuple
	Elem  *TypeRef  // TypeRefReference, TypeRefSlice
	Mut   bool      // TypeRefReference
}

// ErrorTypeRef is the placeholder for malformed or absent type syntax.
func ErrorTypeRef() TypeRef {
	return TypeRef{Kind: TypeRefError}
}

// TypeRefFromSyntax lowers type syntax to a TypeRef. It is total: a missing
// or unlowerable node yields TypeRefError, never a failure.
func TypeRefFromSyntax(b *ast.Builder, id ast.TypeID, hyg *hygiene.Hygiene) TypeRef {
	node := b.Types.Get(id)
	if node == nil {
		return ErrorTypeRef()
	}

	switch node.Kind {
	case ast.TypeExprPath:
		path := LowerPath(b, node.Path, hyg)
		if path == nil {
			return ErrorTypeRef()
		}
		return TypeRef{Kind: TypeRefPath, Path: path}

	case ast.TypeExprTuple:
		elems := make([]TypeRef, 0, len(node.Elems))
		for _, elem := range node.Elems {
			elems = append(elems, TypeRefFromSyntax(b, elem, hyg))
		}
		return TypeRef{Kind: TypeRefTuple, Elems: elems}

	case ast.TypeExprReference:
		elem := TypeRefFromSyntax(b, node.Elem, hyg)
		return TypeRef{Kind: TypeRefReference, Elem: &elem, Mut: node.Mut}

	case ast.TypeExprSlice:
		elem := TypeRefFromSyntax(b, node.Elem, hyg)
		return TypeRef{Kind: TypeRefSlice, Elem: &elem}

	case ast.TypeExprNever:
		return TypeRef{Kind: TypeRefNever}

	case ast.TypeExprPlaceholder:
		return TypeRef{Kind: TypeRefPlaceholder}
	}

	return ErrorTypeRef()
}
