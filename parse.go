package gocalc

import (
	"strconv"
)

// Parser builds a Node from one source line with a single token of
// lookahead.
//
//	expr   := term ( (PLUS|MINUS) term )*
//	term   := factor ( (STAR|SLASH) factor )*
//	factor := MINUS factor | INTEGER | LPAREN expr RPAREN
type Parser struct {
	s     *Scanner
	cur   Token
	opt   Options
	depth int
}

// NewParser returns a parser primed with the first token of src. A nil opt
// uses the defaults.
func NewParser(src string, opt *Options) (*Parser, error) {
	p := &Parser{
		s:   NewScanner(src),
		opt: opt.normalize(),
	}
	tok, err := p.s.Next()
	if err != nil {
		return nil, err
	}
	p.cur = tok
	return p, nil
}

// Parse parses the whole line. Input left after a complete expression is
// an error.
func (p *Parser) Parse() (Node, error) {
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(KindEOF); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) advance() (Token, error) {
	tok := p.cur
	next, err := p.s.Next()
	if err != nil {
		return Token{}, err
	}
	p.cur = next
	return tok, nil
}

func (p *Parser) match(kinds ...Kind) bool {
	return Kinds(kinds).Contains(p.cur.Kind)
}

func (p *Parser) eat(kind Kind) (Token, error) {
	return p.eatAlt(kind)
}

func (p *Parser) eatAlt(kinds ...Kind) (Token, error) {
	if p.match(kinds...) {
		return p.advance()
	}
	return Token{}, p.unexpected(kinds...)
}

func (p *Parser) unexpected(kinds ...Kind) error {
	return &UnexpectedTokenError{
		Token:    p.cur,
		Pos:      p.s.Pos(),
		Expected: append(Kinds(nil), kinds...),
	}
}

func (p *Parser) expr() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(KindPlus, KindMinus) {
		op, err := p.advance()
		if err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &BinaryOperator{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) term() (Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(KindStar, KindSlash) {
		op, err := p.advance()
		if err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &BinaryOperator{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) factor() (Node, error) {
	switch p.cur.Kind {
	case KindMinus:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		op, err := p.advance()
		if err != nil {
			return nil, err
		}
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &UnaryOperator{Op: op, Operand: operand}, nil

	case KindInteger:
		tok, err := p.advance()
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseInt(tok.Lit, 10, 64)
		if err != nil {
			return nil, &InvalidIntegerError{Token: tok, Err: err}
		}
		return &Number{Token: tok, Value: v}, nil

	case KindLParen:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		if _, err := p.advance(); err != nil {
			return nil, err
		}
		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(KindRParen); err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, p.unexpected(KindInteger, KindMinus, KindLParen)
}

func (p *Parser) enter() error {
	p.depth++
	if p.opt.MaxDepth > 0 && p.depth > p.opt.MaxDepth {
		return &NestingError{Token: p.cur, Limit: p.opt.MaxDepth}
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}
