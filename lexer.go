package gocalc

import (
	"unicode/utf8"
)

// Scanner splits one source line into tokens on demand.
type Scanner struct {
	src string
	pos int // characters consumed
	off int // byte offset of ch
	ch  rune
	n   int // byte width of ch
	eof bool
}

func NewScanner(src string) *Scanner {
	s := &Scanner{src: src}
	s.peek()
	return s
}

// Pos returns the number of characters consumed so far.
func (s *Scanner) Pos() int {
	return s.pos
}

func (s *Scanner) peek() {
	if s.off >= len(s.src) {
		s.ch, s.n = 0, 0
		s.eof = true
		return
	}
	s.ch, s.n = utf8.DecodeRuneInString(s.src[s.off:])
}

// readRune consumes ch and returns the source text it spanned.
func (s *Scanner) readRune() string {
	start := s.off
	if !s.eof {
		s.off += s.n
		s.pos++
	}
	s.peek()
	return s.src[start:s.off]
}

func (s *Scanner) skipWhite() {
	for !s.eof && isSpace(s.ch) {
		s.readRune()
	}
}

func (s *Scanner) readInteger() string {
	start := s.off
	for !s.eof && isDigit(s.ch) {
		s.readRune()
	}
	return s.src[start:s.off]
}

// Next returns the next token. Once the input is exhausted it keeps
// returning KindEOF.
func (s *Scanner) Next() (Token, error) {
	s.skipWhite()
	if s.eof {
		return Token{Kind: KindEOF, Pos: s.pos}, nil
	}

	pos := s.pos
	if isDigit(s.ch) {
		return Token{Kind: KindInteger, Lit: s.readInteger(), Pos: pos}, nil
	}

	var kind Kind
	switch s.ch {
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindStar
	case '/':
		kind = KindSlash
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	default:
		return Token{}, &UnexpectedCharacterError{Char: s.ch, Pos: pos}
	}
	return Token{Kind: kind, Lit: s.readRune(), Pos: pos}, nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
