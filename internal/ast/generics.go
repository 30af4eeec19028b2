package ast

import (
	"ferro/internal/source"
)

// AssocBinding is one `Name = Type` element of a generic argument list.
// Name may be NoStringID when the parser recovered from a malformed binding.
type AssocBinding struct {
	Name source.StringID
	Type TypeID // NoTypeID when the type syntax is missing
}

// GenericArgList is an explicit bracketed argument list: `<T, U, Output = V>`.
type GenericArgList struct {
	Span     source.Span
	TypeArgs []TypeID // NoTypeID entries mark missing type syntax
	Bindings []AssocBinding
}

// ParamList is the parenthesized parameter list of fn-sugar: `(X, Y)`.
type ParamList struct {
	Span   source.Span
	Params []TypeID // NoTypeID entries mark missing ascriptions
}

type GenericArgLists struct {
	Arena *Arena[GenericArgList]
}

func NewGenericArgLists(capHint uint) *GenericArgLists {
	return &GenericArgLists{
		Arena: NewArena[GenericArgList](capHint),
	}
}

func (g *GenericArgLists) New(span source.Span, typeArgs []TypeID, bindings []AssocBinding) GenericArgListID {
	return GenericArgListID(g.Arena.Allocate(GenericArgList{
		Span:     span,
		TypeArgs: typeArgs,
		Bindings: bindings,
	}))
}

func (g *GenericArgLists) Get(id GenericArgListID) *GenericArgList {
	return g.Arena.Get(uint32(id))
}

type ParamLists struct {
	Arena *Arena[ParamList]
}

func NewParamLists(capHint uint) *ParamLists {
	return &ParamLists{
		Arena: NewArena[ParamList](capHint),
	}
}

func (p *ParamLists) New(span source.Span, params []TypeID) ParamListID {
	return ParamListID(p.Arena.Allocate(ParamList{
		Span:   span,
		Params: params,
	}))
}

func (p *ParamLists) Get(id ParamListID) *ParamList {
	return p.Arena.Get(uint32(id))
}
