package ast

import (
	"ferro/internal/source"
)

// Hints presizes the builder's arenas.
type Hints struct{ Files, Items, Paths, Types, Trees uint }

// Builder owns the arenas of one parse and the shared string interner.
type Builder struct {
	Files    *Files
	Items    *Items
	Paths    *Paths
	Types    *TypeExprs
	Trees    *UseTrees
	Generics *GenericArgLists
	Params   *ParamLists

	StringsInterner *source.Interner
}

func NewBuilder(hints Hints, interner *source.Interner) *Builder {
	if interner == nil {
		interner = source.NewInterner()
	}
	or := func(v uint, def uint) uint {
		if v == 0 {
			return def
		}
		return v
	}
	return &Builder{
		Files:           NewFiles(or(hints.Files, 1)),
		Items:           NewItems(or(hints.Items, 1<<6)),
		Paths:           NewPaths(or(hints.Paths, 1<<8)),
		Types:           NewTypeExprs(or(hints.Types, 1<<8)),
		Trees:           NewUseTrees(or(hints.Trees, 1<<6)),
		Generics:        NewGenericArgLists(or(hints.Types, 1<<6)),
		Params:          NewParamLists(1 << 4),
		StringsInterner: interner,
	}
}

// PushItem appends an item to the file's item list.
func (b *Builder) PushItem(file FileID, item ItemID) {
	if f := b.Files.Get(file); f != nil {
		f.Items = append(f.Items, item)
	}
}
