package hir

import (
	"strings"

	"ferro/internal/source"
)

// Display renders the path in a stable, human-readable surface form,
// e.g. `crate::collections::Map<K, V>`.
func (p *Path) Display(in *source.Interner) string {
	var sb strings.Builder
	p.write(&sb, in)
	return sb.String()
}

func (p *Path) write(sb *strings.Builder, in *source.Interner) {
	sep := p.Mod.Kind.writePrefix(sb, in)
	for i, seg := range p.Mod.Segments {
		if i > 0 || sep {
			sb.WriteString("::")
		}
		sb.WriteString(seg.Display(in))
		if args := p.GenericArgs[i]; args != nil {
			args.write(sb, in)
		}
	}
}

// writePrefix prints the root and reports whether a `::` separator is
// needed before the first segment.
func (k PathKind) writePrefix(sb *strings.Builder, in *source.Interner) bool {
	switch k.Tag {
	case KindPlain:
		return false
	case KindAbs:
		sb.WriteString("::")
		return false
	case KindCrate:
		sb.WriteString("crate")
		return true
	case KindSelf:
		sb.WriteString("self")
		return true
	case KindSuper:
		sb.WriteString("super")
		return true
	case KindDollarCrate:
		sb.WriteString("$crate")
		return true
	case KindTypeRelative:
		sb.WriteString("<")
		sb.WriteString(k.Type.Display(in))
		sb.WriteString(">")
		return true
	}
	return false
}

func (g *GenericArgs) write(sb *strings.Builder, in *source.Interner) {
	sb.WriteString("<")
	first := true
	comma := func() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
	}
	for i, arg := range g.Args {
		comma()
		if i == 0 && g.HasSelfType {
			sb.WriteString("Self = ")
		}
		sb.WriteString(arg.Type.Display(in))
	}
	for _, binding := range g.Bindings {
		comma()
		sb.WriteString(binding.Name.Display(in))
		sb.WriteString(" = ")
		sb.WriteString(binding.Type.Display(in))
	}
	sb.WriteString(">")
}

// Display renders the type reference in surface syntax.
func (t *TypeRef) Display(in *source.Interner) string {
	var sb strings.Builder
	t.write(&sb, in)
	return sb.String()
}

func (t *TypeRef) write(sb *strings.Builder, in *source.Interner) {
	switch t.Kind {
	case TypeRefPath:
		t.Path.write(sb, in)
	case TypeRefTuple:
		sb.WriteString("(")
		for i := range t.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			t.Elems[i].write(sb, in)
		}
		sb.WriteString(")")
	case TypeRefReference:
		sb.WriteString("&")
		if t.Mut {
			sb.WriteString("mut ")
		}
		t.Elem.write(sb, in)
	case TypeRefSlice:
		sb.WriteString("[")
		t.Elem.write(sb, in)
		sb.WriteString("]")
	case TypeRefNever:
		sb.WriteString("!")
	case TypeRefPlaceholder:
		sb.WriteString("_")
	default:
		sb.WriteString("{error}")
	}
}
