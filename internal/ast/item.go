package ast

import (
	"ferro/internal/source"
)

type ItemKind uint8

const (
	ItemUse ItemKind = iota
	ItemTypeAlias
)

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// UseItem is the payload of a `use ...;` item.
type UseItem struct {
	Tree UseTreeID
}

// TypeAliasItem is the payload of a `type Name = Type;` item.
type TypeAliasItem struct {
	Name source.StringID
	Type TypeID
}

type Items struct {
	Arena       *Arena[Item]
	Uses        *Arena[UseItem]
	TypeAliases *Arena[TypeAliasItem]
}

func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Items{
		Arena:       NewArena[Item](capHint),
		Uses:        NewArena[UseItem](capHint),
		TypeAliases: NewArena[TypeAliasItem](capHint),
	}
}

func (i *Items) New(kind ItemKind, span source.Span, payload PayloadID) ItemID {
	return ItemID(i.Arena.Allocate(Item{Kind: kind, Span: span, Payload: payload}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

// NewUse creates a use item wrapping tree.
func (i *Items) NewUse(span source.Span, tree UseTreeID) ItemID {
	payload := PayloadID(i.Uses.Allocate(UseItem{Tree: tree}))
	return i.New(ItemUse, span, payload)
}

// Use returns the UseItem payload, or nil/false for a different item kind.
func (i *Items) Use(id ItemID) (*UseItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemUse {
		return nil, false
	}
	return i.Uses.Get(uint32(item.Payload)), true
}

// NewTypeAlias creates a type alias item.
func (i *Items) NewTypeAlias(span source.Span, name source.StringID, typ TypeID) ItemID {
	payload := PayloadID(i.TypeAliases.Allocate(TypeAliasItem{Name: name, Type: typ}))
	return i.New(ItemTypeAlias, span, payload)
}

// TypeAlias returns the TypeAliasItem payload, or nil/false for a different kind.
func (i *Items) TypeAlias(id ItemID) (*TypeAliasItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemTypeAlias {
		return nil, false
	}
	return i.TypeAliases.Get(uint32(item.Payload)), true
}
