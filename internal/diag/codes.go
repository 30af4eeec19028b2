package diag

import (
	"fmt"
)

// Code identifies a diagnostic family. 1xxx lexical, 2xxx syntactic,
// 3xxx I/O.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar   Code = 1001
	LexBadMacroIdent Code = 1002

	// Syntactic
	SynUnexpectedToken     Code = 2001
	SynExpectIdentifier    Code = 2002
	SynExpectSemicolon     Code = 2003
	SynExpectType          Code = 2004
	SynExpectPathSegment   Code = 2005
	SynUnclosedAngle       Code = 2006
	SynUnclosedParen       Code = 2007
	SynUnclosedBrace       Code = 2008
	SynUnclosedBracket     Code = 2009
	SynExpectIdentAfterAs  Code = 2010
	SynEmptyUseGroup       Code = 2011
	SynQualifiedNotFirst   Code = 2012
	SynExpectEquals        Code = 2013
	SynExpectUseTree       Code = 2014

	// I/O
	IOLoadFileError Code = 3001
)

func (c Code) String() string {
	return fmt.Sprintf("E%04d", uint16(c))
}
