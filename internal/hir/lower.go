// Path lowering: transforms path syntax into Path values, accounting for
// macro hygiene and desugaring type-qualified and fn-trait path forms.
package hir

import (
	"slices"

	"ferro/internal/ast"
	"ferro/internal/hygiene"
	"ferro/internal/source"
)

// LowerPath converts path syntax into a semantic Path. It handles
// $crate-based paths from macro expansions and works for paths inside use
// trees. Returns nil when a mandatory syntactic piece is missing.
func LowerPath(b *ast.Builder, id ast.PathID, hyg *hygiene.Hygiene) *Path {
	return lowerPath(b, id, hyg, true)
}

// lowerPath walks the path right to left, accumulating segments and their
// generic argument lists in reverse. useTreeFallback enables the heuristic
// qualifier search through enclosing import groups; the use-tree lowering
// passes prefixes top-down instead and turns it off.
func lowerPath(b *ast.Builder, id ast.PathID, hyg *hygiene.Hygiene, useTreeFallback bool) *Path {
	kind := PathKind{Tag: KindPlain}
	var segments []Name
	var genericArgs []*GenericArgs

walk:
	for {
		node := b.Paths.Get(id)
		if node == nil {
			return nil
		}
		seg := node.Seg

		if seg.LeadingColons {
			kind = PathKind{Tag: KindAbs}
		}

		switch seg.Kind {
		case ast.SegName:
			res := hyg.ResolveName(seg.Name)
			if res.Kind == hygiene.ResolvedMacroCrate {
				kind = PathKind{Tag: KindDollarCrate, Crate: res.Crate}
				break walk
			}

			args := lowerGenericArgs(b, seg.Generics, hyg)
			if args == nil {
				args = lowerGenericArgsFromFnPath(b, seg.Params, seg.Ret, hyg)
			}
			segments = append(segments, Name(res.Name))
			genericArgs = append(genericArgs, args)

		case ast.SegType:
			// A type-qualified segment can only be the first segment of a
			// path; a conforming parser never produces a qualifier here.
			if node.Qualifier.IsValid() {
				panic("hir: type-qualified path segment has a qualifier")
			}
			if !seg.SelfType.IsValid() {
				return nil
			}
			selfType := TypeRefFromSyntax(b, seg.SelfType, hyg)

			if !seg.Trait.IsValid() {
				// <T>::foo
				kind = PathKind{Tag: KindTypeRelative, Type: &selfType}
				break walk
			}

			// <T as Trait<A>>::Foo desugars to Trait<Self = T, A>::Foo.
			trait := lowerPath(b, seg.Trait, hyg, useTreeFallback)
			if trait == nil {
				return nil
			}
			kind = trait.Mod.Kind

			if len(trait.Mod.Segments) == 0 {
				// A bare keyword root names no trait segment to hang the
				// self type on.
				return nil
			}

			// The accumulators run right to left, so the trait segment
			// itself lands first among the spliced entries.
			traitSlot := len(genericArgs)

			prefixSegments := slices.Clone(trait.Mod.Segments)
			slices.Reverse(prefixSegments)
			segments = append(segments, prefixSegments...)

			prefixArgs := slices.Clone(trait.GenericArgs)
			slices.Reverse(prefixArgs)
			genericArgs = append(genericArgs, prefixArgs...)

			// Insert the self type (T above) at argument position 0 of the
			// trait's own list. The list is shared, so copy before writing.
			traitArgs := genericArgs[traitSlot]
			var updated GenericArgs
			if traitArgs != nil {
				updated = GenericArgs{
					Args:        slices.Clone(traitArgs.Args),
					HasSelfType: traitArgs.HasSelfType,
					Bindings:    slices.Clone(traitArgs.Bindings),
				}
			}
			updated.HasSelfType = true
			updated.Args = append([]GenericArg{{Kind: GenericArgType, Type: selfType}}, updated.Args...)
			genericArgs[traitSlot] = &updated
			break walk

		case ast.SegCrate:
			kind = PathKind{Tag: KindCrate}
			break walk

		case ast.SegSelf:
			kind = PathKind{Tag: KindSelf}
			break walk

		case ast.SegSuper:
			kind = PathKind{Tag: KindSuper}
			break walk
		}

		next := qualifierOf(b, id, useTreeFallback)
		if !next.IsValid() {
			break
		}
		id = next
	}

	slices.Reverse(segments)
	slices.Reverse(genericArgs)
	return &Path{
		Mod:         ModPath{Kind: kind, Segments: segments},
		GenericArgs: genericArgs,
	}
}

// qualifierOf resolves the logical qualifier of the path node. When the node
// has no direct qualifier and sits inside a use-tree group, the group's
// owning tree supplies one: in `use a::{b, c::d}` the qualifier of `c` is
// `a`. This bottom-up hop is a best-effort approximation; a precise answer
// would need top-down context from the whole use-tree walk.
func qualifierOf(b *ast.Builder, id ast.PathID, useTreeFallback bool) ast.PathID {
	node := b.Paths.Get(id)
	if node == nil {
		return ast.NoPathID
	}
	if node.Qualifier.IsValid() {
		return node.Qualifier
	}
	if !useTreeFallback || !node.Owner.IsValid() {
		return ast.NoPathID
	}

	owner := b.Trees.Get(node.Owner)
	if owner == nil || !owner.Parent.IsValid() {
		return ast.NoPathID
	}
	parent := b.Trees.Get(owner.Parent)
	if parent == nil {
		return ast.NoPathID
	}
	return parent.Path
}

// lowerGenericArgs converts an explicit bracketed argument list. It returns
// nil when the list contributes neither arguments nor bindings.
func lowerGenericArgs(b *ast.Builder, id ast.GenericArgListID, hyg *hygiene.Hygiene) *GenericArgs {
	node := b.Generics.Get(id)
	if node == nil {
		return nil
	}

	var args []GenericArg
	for _, typeArg := range node.TypeArgs {
		args = append(args, GenericArg{Kind: GenericArgType, Type: TypeRefFromSyntax(b, typeArg, hyg)})
	}
	// Lifetime arguments are not represented yet.

	var bindings []AssocTypeBinding
	for _, binding := range node.Bindings {
		if binding.Name == source.NoStringID {
			continue
		}
		bindings = append(bindings, AssocTypeBinding{
			Name: Name(binding.Name),
			Type: TypeRefFromSyntax(b, binding.Type, hyg),
		})
	}

	if len(args) == 0 && len(bindings) == 0 {
		return nil
	}
	return &GenericArgs{Args: args, Bindings: bindings}
}

// lowerGenericArgsFromFnPath collects GenericArgs from the parts of a
// fn-like path: `Fn(X, Y) -> Z` desugars to `Fn<(X, Y), Output = Z>`.
func lowerGenericArgsFromFnPath(b *ast.Builder, params ast.ParamListID, ret ast.TypeID, hyg *hygiene.Hygiene) *GenericArgs {
	var args []GenericArg
	var bindings []AssocTypeBinding

	if paramList := b.Params.Get(params); paramList != nil {
		paramTypes := make([]TypeRef, 0, len(paramList.Params))
		for _, param := range paramList.Params {
			paramTypes = append(paramTypes, TypeRefFromSyntax(b, param, hyg))
		}
		args = append(args, GenericArg{
			Kind: GenericArgType,
			Type: TypeRef{Kind: TypeRefTuple, Elems: paramTypes},
		})
	}

	if ret.IsValid() {
		bindings = append(bindings, AssocTypeBinding{
			Name: Name(b.StringsInterner.Intern("Output")),
			Type: TypeRefFromSyntax(b, ret, hyg),
		})
	}

	if len(args) == 0 && len(bindings) == 0 {
		return nil
	}
	return &GenericArgs{Args: args, Bindings: bindings}
}
