package hir

import (
	"slices"

	"ferro/internal/ast"
	"ferro/internal/hygiene"
	"ferro/internal/source"
)

// ImportVisitor receives one flattened import per call: the full module
// path, whether it is a glob import, and an optional alias (NoStringID
// when absent).
type ImportVisitor func(path ModPath, glob bool, alias source.StringID)

// LowerUseTree flattens a use tree into its individual imports:
//
//	use a::{b as x, c::d, e::*};
//
// calls the visitor with a::b (alias x), a::c::d, and a::e (glob). Group
// prefixes are carried top-down, so the bottom-up qualifier fallback of
// LowerPath is not consulted here. Subtrees that fail to lower are skipped.
func LowerUseTree(b *ast.Builder, id ast.UseTreeID, hyg *hygiene.Hygiene, cb ImportVisitor) {
	lowerUseTree(b, nil, id, hyg, cb)
}

func lowerUseTree(b *ast.Builder, prefix *ModPath, id ast.UseTreeID, hyg *hygiene.Hygiene, cb ImportVisitor) {
	tree := b.Trees.Get(id)
	if tree == nil {
		return
	}

	if tree.HasList {
		groupPrefix := prefix
		if tree.Path.IsValid() {
			path := lowerPath(b, tree.Path, hyg, false)
			if path == nil {
				return
			}
			groupPrefix = concatModPath(prefix, &path.Mod)
			if groupPrefix == nil {
				return
			}
		}
		for _, child := range tree.List {
			lowerUseTree(b, groupPrefix, child, hyg, cb)
		}
		return
	}

	var mp *ModPath
	switch {
	case tree.Path.IsValid():
		path := lowerPath(b, tree.Path, hyg, false)
		if path == nil {
			return
		}
		// `use a::{self}` imports `a` itself.
		if path.Mod.Kind.Tag == KindSelf && len(path.Mod.Segments) == 0 && prefix != nil {
			mp = cloneModPath(prefix)
		} else {
			mp = concatModPath(prefix, &path.Mod)
		}
	case tree.Glob && prefix != nil:
		// `use a::{*}` globs the prefix itself.
		mp = cloneModPath(prefix)
	}
	if mp == nil {
		return
	}

	cb(*mp, tree.Glob, tree.Alias)
}

// concatModPath appends path under prefix. Only plain paths can be grafted
// onto a prefix; rooted paths inside a group do not compose.
func concatModPath(prefix, path *ModPath) *ModPath {
	if prefix == nil {
		return cloneModPath(path)
	}
	if path.Kind.Tag != KindPlain {
		return nil
	}
	segments := make([]Name, 0, len(prefix.Segments)+len(path.Segments))
	segments = append(segments, prefix.Segments...)
	segments = append(segments, path.Segments...)
	return &ModPath{Kind: prefix.Kind, Segments: segments}
}

func cloneModPath(mp *ModPath) *ModPath {
	return &ModPath{Kind: mp.Kind, Segments: slices.Clone(mp.Segments)}
}
