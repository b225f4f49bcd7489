package curvepaint

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"golang.org/x/text/unicode/norm"
)

// Params holds the three free parameters available to an expression
// alongside the sample variable x. The core places no range constraint on
// them; a UI layer may clamp to whatever its sliders allow.
type Params struct {
	A, B, C float64
}

// Expression is an immutable compiled formula over the variable x and the
// parameters a, b and c. The only callables reachable from the expression
// text are the fixed numeric functions sin, cos, tan, abs, exp, sqrt and
// pow; compilation cannot bind any other host operation.
//
// An Expression is safe to evaluate many times; it retains no bindings
// between calls. Parameters are read fresh at each Eval, never captured.
type Expression struct {
	text string
	prog *vm.Program
}

// mathFuncs is the fixed function set reachable from expression text.
var mathFuncs = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"abs":  math.Abs,
	"exp":  math.Exp,
	"sqrt": math.Sqrt,
}

// compileOptions builds the expr compile options: the typed environment,
// the fixed function set, and a float64 result requirement.
func compileOptions() []expr.Option {
	opts := []expr.Option{
		expr.Env(map[string]any{
			"x": float64(0),
			"a": float64(0),
			"b": float64(0),
			"c": float64(0),
		}),
		expr.DisableAllBuiltins(),
		expr.AsFloat64(),
	}
	for name, fn := range mathFuncs {
		opts = append(opts, unaryFunc(name, fn))
	}
	opts = append(opts, expr.Function("pow",
		func(args ...any) (any, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("pow expects 2 arguments, got %d", len(args))
			}
			x, err := toFloat(args[0])
			if err != nil {
				return nil, err
			}
			y, err := toFloat(args[1])
			if err != nil {
				return nil, err
			}
			return math.Pow(x, y), nil
		},
		new(func(float64, float64) float64),
	))
	return opts
}

// unaryFunc registers a one-argument math function with the compiler.
func unaryFunc(name string, fn func(float64) float64) expr.Option {
	return expr.Function(name,
		func(args ...any) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
			}
			v, err := toFloat(args[0])
			if err != nil {
				return nil, err
			}
			return fn(v), nil
		},
		new(func(float64) float64),
	)
}

// toFloat converts a numeric expression value to float64.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

// Compile compiles an expression text into a reusable Expression.
// The text is untrusted and of arbitrary length; compilation never executes
// it. The text is NFC-normalized first so canonically equivalent inputs
// compile to the same Expression text (and dedupe identically in a
// surface's used-expression set). Malformed input yields a *CompileError.
func Compile(text string) (*Expression, error) {
	normalized := norm.NFC.String(text)

	prog, err := expr.Compile(normalized, compileOptions()...)
	if err != nil {
		return nil, &CompileError{Text: text, Err: err}
	}

	return &Expression{text: normalized, prog: prog}, nil
}

// Text returns the (normalized) expression text.
func (e *Expression) Text() string {
	return e.text
}

// Eval evaluates the expression at the given x with the given parameters.
// Runtime failures inside the expression VM are reported as *EvalError;
// domain errors that produce NaN or ±Inf (sqrt of a negative, division by
// zero) are returned as-is so the plotter can treat them as curve gaps.
func (e *Expression) Eval(x float64, p Params) (float64, error) {
	out, err := vm.Run(e.prog, map[string]any{
		"x": x,
		"a": p.A,
		"b": p.B,
		"c": p.C,
	})
	if err != nil {
		return 0, &EvalError{X: x, Err: err}
	}

	f, ok := out.(float64)
	if !ok {
		return 0, &EvalError{X: x, Err: fmt.Errorf("expected float64 result, got %T", out)}
	}
	return f, nil
}
