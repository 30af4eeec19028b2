// Package hygiene tells macro-introduced identifiers apart from source ones.
//
// From the lowering core's point of view this is a read-only oracle: an
// identifier occurrence either stays a plain name or turns out to be a
// macro-crate-root reference ($crate written inside a macro definition),
// in which case the originating crate is reported instead.
package hygiene

import (
	"ferro/internal/source"
)

// CrateID identifies the crate a macro definition came from.
type CrateID uint32

// ResolutionKind tags the two outcomes of resolving an identifier.
type ResolutionKind uint8

const (
	// ResolvedName means the identifier is an ordinary name.
	ResolvedName ResolutionKind = iota
	// ResolvedMacroCrate means the identifier stands for the defining
	// crate's root.
	ResolvedMacroCrate
)

// Resolution is the outcome of resolving one identifier occurrence.
type Resolution struct {
	Kind  ResolutionKind
	Name  source.StringID // ResolvedName
	Crate CrateID         // ResolvedMacroCrate
}

// Hygiene resolves identifier occurrences. The zero value and New() treat
// every identifier as a plain source name.
type Hygiene struct {
	macroCrates map[source.StringID]CrateID
}

// New returns the hygiene of plain source code: no macro context.
func New() *Hygiene {
	return &Hygiene{}
}

// NewForMacro returns the hygiene of a macro expansion. Identifiers in defs
// (typically the interned "$crate") resolve to their defining crate's root.
func NewForMacro(defs map[source.StringID]CrateID) *Hygiene {
	return &Hygiene{macroCrates: defs}
}

// ResolveName resolves one identifier occurrence.
func (h *Hygiene) ResolveName(name source.StringID) Resolution {
	if h != nil && h.macroCrates != nil {
		if crate, ok := h.macroCrates[name]; ok {
			return Resolution{Kind: ResolvedMacroCrate, Crate: crate}
		}
	}
	return Resolution{Kind: ResolvedName, Name: name}
}
