package expr

import (
	"math"
	"math/cmplx"

	"github.com/AdnanKapadia/ComplexPlot/internal/cplx"
)

// scope maps the free variable name to its binding for one evaluation.
// The reserved constants resolve directly in ConstantNode.eval and never
// live here, so a fresh scope is a single map entry.
type scope struct {
	vars      map[string]complex128
	functions *FunctionRegistry
}

func (n *NumberNode) eval(sc *scope) (complex128, error) {
	return complex(n.Value, 0), nil
}

func (n *ConstantNode) eval(sc *scope) (complex128, error) {
	switch n.Name {
	case "i":
		return complex(0, 1), nil
	case "pi":
		return complex(math.Pi, 0), nil
	case "e":
		return complex(math.E, 0), nil
	}
	return 0, evalErrorf("unknown constant: %s", n.Name)
}

func (n *VariableNode) eval(sc *scope) (complex128, error) {
	val, ok := sc.vars[n.Name]
	if !ok {
		return 0, evalErrorf("undefined variable: %s", n.Name)
	}
	return val, nil
}

func (n *UnaryOpNode) eval(sc *scope) (complex128, error) {
	val, err := n.Operand.eval(sc)
	if err != nil {
		return 0, err
	}
	return -val, nil
}

func (n *BinaryOpNode) eval(sc *scope) (complex128, error) {
	left, err := n.Left.eval(sc)
	if err != nil {
		return 0, err
	}
	right, err := n.Right.eval(sc)
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case BinaryOpAdd:
		return left + right, nil
	case BinaryOpSub:
		return left - right, nil
	case BinaryOpMul:
		return left * right, nil
	case BinaryOpDiv:
		if right == 0 {
			// singular sample, not an error: batch generators keep scanning
			return cplx.Invalid, nil
		}
		return left / right, nil
	case BinaryOpPow:
		return pow(left, right), nil
	default:
		return 0, evalErrorf("unknown operator: %s", n.Op)
	}
}

func (n *CallNode) eval(sc *scope) (complex128, error) {
	args := make([]complex128, len(n.Args))
	for i, arg := range n.Args {
		val, err := arg.eval(sc)
		if err != nil {
			return 0, err
		}
		args[i] = val
	}
	return sc.functions.Call(n.Name, args)
}

// pow computes the principal-branch power z^w = exp(w * log z), with the
// conventions 0^0 = 1 and 0^w = 0 for w != 0.
func pow(z, w complex128) complex128 {
	if z == 0 {
		if w == 0 {
			return 1
		}
		return 0
	}
	return cmplx.Exp(w * cmplx.Log(z))
}
