package expr

import (
	"math/cmplx"
	"sort"

	"github.com/AdnanKapadia/ComplexPlot/internal/cplx"
)

// FunctionRegistry manages the built-in complex functions available in
// expressions. All functions are principal-branch extensions: log and sqrt
// cut along the negative real axis.
type FunctionRegistry struct {
	functions map[string]Function
}

// Function is a built-in complex function.
type Function func(args []complex128) (complex128, error)

var defaultRegistry = NewFunctionRegistry()

// NewFunctionRegistry creates a registry with all built-in functions.
func NewFunctionRegistry() *FunctionRegistry {
	fr := &FunctionRegistry{
		functions: make(map[string]Function),
	}

	fr.registerElementary()
	fr.registerProjections()

	return fr
}

// Call invokes a function by name. Unknown names and wrong argument counts
// are EvalErrors, never panics.
func (fr *FunctionRegistry) Call(name string, args []complex128) (complex128, error) {
	fn, exists := fr.functions[name]
	if !exists {
		return 0, evalErrorf("unknown function: %s", name)
	}
	return fn(args)
}

// Names returns the registered function names, sorted.
func (fr *FunctionRegistry) Names() []string {
	names := make([]string, 0, len(fr.functions))
	for name := range fr.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (fr *FunctionRegistry) registerElementary() {
	unary := map[string]func(complex128) complex128{
		"sin":  cmplx.Sin,
		"cos":  cmplx.Cos,
		"tan":  cmplx.Tan,
		"sinh": cmplx.Sinh,
		"cosh": cmplx.Cosh,
		"tanh": cmplx.Tanh,
		"asin": cmplx.Asin,
		"acos": cmplx.Acos,
		"atan": cmplx.Atan,
		"exp":  cmplx.Exp,
		"sqrt": cmplx.Sqrt,
		"conj": cmplx.Conj,
	}
	for name, impl := range unary {
		fr.functions[name] = arity1(name, impl)
	}

	// log of zero is a pole, not an error
	logFn := arity1("log", func(z complex128) complex128 {
		if z == 0 {
			return cplx.Invalid
		}
		return cmplx.Log(z)
	})
	fr.functions["log"] = logFn
	fr.functions["ln"] = logFn

	fr.functions["pow"] = func(args []complex128) (complex128, error) {
		if len(args) != 2 {
			return 0, evalErrorf("pow() requires exactly 2 arguments, got %d", len(args))
		}
		return pow(args[0], args[1]), nil
	}
}

func (fr *FunctionRegistry) registerProjections() {
	fr.functions["abs"] = arity1("abs", func(z complex128) complex128 {
		return complex(cmplx.Abs(z), 0)
	})
	fr.functions["arg"] = arity1("arg", func(z complex128) complex128 {
		return complex(cmplx.Phase(z), 0)
	})
	fr.functions["re"] = arity1("re", func(z complex128) complex128 {
		return complex(real(z), 0)
	})
	fr.functions["im"] = arity1("im", func(z complex128) complex128 {
		return complex(imag(z), 0)
	})
}

func arity1(name string, impl func(complex128) complex128) Function {
	return func(args []complex128) (complex128, error) {
		if len(args) != 1 {
			return 0, evalErrorf("%s() requires exactly 1 argument, got %d", name, len(args))
		}
		return impl(args[0]), nil
	}
}
