package gocalc

import (
	"fmt"
)

// Fn applies a binary operator. Arithmetic is int64 two's complement and
// wraps on overflow; MinInt64 / -1 yields MinInt64.
type Fn func(op Token, lhs, rhs int64) (int64, error)

var ops map[Kind]Fn

func init() {
	ops = make(map[Kind]Fn)
	ops[KindPlus] = doPlus
	ops[KindMinus] = doMinus
	ops[KindStar] = doMul
	ops[KindSlash] = doDiv
}

// Eval reduces node to its value. Operands are evaluated left to right.
func Eval(node Node) (int64, error) {
	switch n := node.(type) {
	case *Number:
		return n.Value, nil
	case *UnaryOperator:
		if n.Op.Kind != KindMinus {
			panic(fmt.Sprintf("gocalc: invalid unary operator %v", n.Op.Kind))
		}
		v, err := Eval(n.Operand)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case *BinaryOperator:
		fn, ok := ops[n.Op.Kind]
		if !ok {
			panic(fmt.Sprintf("gocalc: invalid binary operator %v", n.Op.Kind))
		}
		lhs, err := Eval(n.Left)
		if err != nil {
			return 0, err
		}
		rhs, err := Eval(n.Right)
		if err != nil {
			return 0, err
		}
		return fn(n.Op, lhs, rhs)
	}
	panic(fmt.Sprintf("gocalc: invalid node %T", node))
}

// Evaluate parses and evaluates one line of source.
func Evaluate(src string, opt *Options) (int64, error) {
	p, err := NewParser(src, opt)
	if err != nil {
		return 0, err
	}
	node, err := p.Parse()
	if err != nil {
		return 0, err
	}
	return Eval(node)
}

func doPlus(_ Token, lhs, rhs int64) (int64, error) {
	return lhs + rhs, nil
}

func doMinus(_ Token, lhs, rhs int64) (int64, error) {
	return lhs - rhs, nil
}

func doMul(_ Token, lhs, rhs int64) (int64, error) {
	return lhs * rhs, nil
}

// doDiv truncates toward zero.
func doDiv(op Token, lhs, rhs int64) (int64, error) {
	if rhs == 0 {
		return 0, &DivisionByZeroError{Op: op}
	}
	return lhs / rhs, nil
}
