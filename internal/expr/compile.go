package expr

import (
	"github.com/AdnanKapadia/ComplexPlot/internal/cplx"
)

// Compiled pairs a parsed tree with the name of its single free variable.
// It holds no mutable state: one Compiled is reused across hundreds of
// thousands of Eval calls and is safe to share between goroutines.
type Compiled struct {
	root      Node
	freeVar   string
	functions *FunctionRegistry
}

// Compile prepares a tree for repeated evaluation against differing
// bindings of freeVar. Performs no evaluation.
func Compile(node Node, freeVar string) *Compiled {
	return &Compiled{
		root:      node,
		freeVar:   freeVar,
		functions: defaultRegistry,
	}
}

// MustCompileString parses and compiles in one step, panicking on parse
// failure. Intended for fixed expressions in tests and defaults.
func MustCompileString(input, freeVar string) *Compiled {
	node, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return Compile(node, freeVar)
}

// CompileString parses and compiles in one step.
func CompileString(input, freeVar string) (*Compiled, error) {
	node, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return Compile(node, freeVar), nil
}

// FreeVar returns the name of the compiled expression's free variable.
func (c *Compiled) FreeVar() string { return c.freeVar }

// String renders the underlying tree.
func (c *Compiled) String() string { return c.root.String() }

// Eval executes the expression with the free variable bound to z. Numeric
// edge cases (division by zero, log of zero, overflow) resolve to the
// invalid sentinel; only unknown functions and wrong arities return an
// error.
func (c *Compiled) Eval(z complex128) (complex128, error) {
	sc := &scope{
		vars:      map[string]complex128{c.freeVar: z},
		functions: c.functions,
	}
	return c.root.eval(sc)
}

// EvalOrInvalid is Eval with semantic failures folded into the invalid
// sentinel. The batch generators treat an unknown function exactly like a
// singular sample, so this is the form they consume.
func (c *Compiled) EvalOrInvalid(z complex128) complex128 {
	val, err := c.Eval(z)
	if err != nil {
		return cplx.Invalid
	}
	return val
}
