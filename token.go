package gocalc

import (
	"fmt"
	"slices"
	"strings"
)

// Kind is the lexical category of a Token.
type Kind int

const (
	KindEOF Kind = iota
	KindInteger
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindLParen
	KindRParen
)

var kindNames = [...]string{
	KindEOF:     "Eof",
	KindInteger: "Integer",
	KindPlus:    "Plus",
	KindMinus:   "Minus",
	KindStar:    "Star",
	KindSlash:   "Slash",
	KindLParen:  "LParen",
	KindRParen:  "RParen",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds is a set of token kinds accepted at some point of the grammar.
type Kinds []Kind

func (ks Kinds) Contains(k Kind) bool {
	return slices.Contains(ks, k)
}

func (ks Kinds) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	for i, k := range ks {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(k.String())
	}
	buf.WriteByte(']')
	return buf.String()
}

// Token is a classified fragment of one source line. Lit is a substring of
// the source, empty for KindEOF. Pos is the character position of the first
// character of the token.
type Token struct {
	Kind Kind
	Lit  string
	Pos  int
}

func (t Token) String() string {
	if t.Kind == KindEOF {
		return "end of source"
	}
	return fmt.Sprintf("'%s' (token type %v)", t.Lit, t.Kind)
}
