package gocalc

import (
	"bytes"
	"fmt"
)

// Node is an expression tree produced by Parser.Parse. The implementations
// are *Number, *UnaryOperator and *BinaryOperator.
type Node interface {
	fmt.Stringer
	node()
}

type Number struct {
	Token Token
	Value int64
}

type UnaryOperator struct {
	Op      Token
	Operand Node
}

type BinaryOperator struct {
	Left  Node
	Op    Token
	Right Node
}

func (*Number) node()         {}
func (*UnaryOperator) node()  {}
func (*BinaryOperator) node() {}

func (n *Number) String() string {
	return fmt.Sprint(n.Value)
}

func (n *UnaryOperator) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(%s %v)", n.Op.Lit, n.Operand)
	return buf.String()
}

func (n *BinaryOperator) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(%s %v %v)", n.Op.Lit, n.Left, n.Right)
	return buf.String()
}
