package expr

import (
	"strconv"
	"strings"
)

// Node is a parsed expression tree. Trees are immutable once parsed and
// never evaluate themselves until bound to a free variable via Compile.
type Node interface {
	eval(sc *scope) (complex128, error)
	String() string
}

// NumberNode is a numeric literal.
type NumberNode struct {
	Value float64
}

func (n *NumberNode) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// ConstantNode is one of the reserved constants i, pi, e.
type ConstantNode struct {
	Name string
}

func (n *ConstantNode) String() string { return n.Name }

// VariableNode references the free variable of the expression.
type VariableNode struct {
	Name string
}

func (n *VariableNode) String() string { return n.Name }

type UnaryOpType string

const (
	UnaryOpNeg UnaryOpType = "-"
)

// UnaryOpNode applies a unary operator to its operand.
type UnaryOpNode struct {
	Op      UnaryOpType
	Operand Node
}

func (n *UnaryOpNode) String() string {
	return "(" + string(n.Op) + n.Operand.String() + ")"
}

type BinaryOpType string

const (
	BinaryOpAdd BinaryOpType = "+"
	BinaryOpSub BinaryOpType = "-"
	BinaryOpMul BinaryOpType = "*"
	BinaryOpDiv BinaryOpType = "/"
	BinaryOpPow BinaryOpType = "^"
)

// BinaryOpNode combines two operands with an arithmetic operator.
type BinaryOpNode struct {
	Left  Node
	Op    BinaryOpType
	Right Node
}

func (n *BinaryOpNode) String() string {
	return "(" + n.Left.String() + " " + string(n.Op) + " " + n.Right.String() + ")"
}

// CallNode is a function call name(args...).
type CallNode struct {
	Name string
	Args []Node
}

func (n *CallNode) String() string {
	parts := make([]string, len(n.Args))
	for i, arg := range n.Args {
		parts[i] = arg.String()
	}
	return n.Name + "(" + strings.Join(parts, ", ") + ")"
}

// FreeVariables returns the set of variable names referenced by the tree,
// excluding the reserved constants.
func FreeVariables(n Node) map[string]bool {
	vars := make(map[string]bool)
	collectVariables(n, vars)
	return vars
}

func collectVariables(n Node, vars map[string]bool) {
	switch node := n.(type) {
	case *VariableNode:
		vars[node.Name] = true
	case *UnaryOpNode:
		collectVariables(node.Operand, vars)
	case *BinaryOpNode:
		collectVariables(node.Left, vars)
		collectVariables(node.Right, vars)
	case *CallNode:
		for _, arg := range node.Args {
			collectVariables(arg, vars)
		}
	}
}
