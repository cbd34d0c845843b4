package table

import (
	"encoding/json"
	"sync"

	"github.com/google/cel-go/cel"

	"paydash/internal/core/apperror"
)

// exprEnv declares the variables visible to column expressions:
// value (the formatter argument) and values (the same as a list).
var exprEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("value", cel.DynType),
		cel.Variable("values", cel.ListType(cel.DynType)),
	)
})

// Expr compiles a CEL expression into a Formatter, e.g.
//
//	values[0] + " <" + values[1] + ">"
//	value == "SUCCESS" ? "Paid" : "Unpaid"
//
// Compilation errors are returned. Evaluation errors at projection time
// degrade to "".
func Expr(expression string) (Formatter, error) {
	env, err := exprEnv()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	ast, iss := env.Compile(expression)
	if iss != nil && iss.Err() != nil {
		return nil, apperror.NewValidation("invalid column expression").
			WithDetail("expr", expression).
			WithCause(iss.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, apperror.NewValidation("invalid column expression").
			WithDetail("expr", expression).
			WithCause(err)
	}

	return func(value any) any {
		list, ok := value.([]any)
		if !ok {
			list = []any{value}
		}
		out, _, err := prg.Eval(map[string]any{
			"value":  celNative(value),
			"values": celNative(list),
		})
		if err != nil {
			return ""
		}
		return out.Value()
	}, nil
}

// celNative converts values CEL's default adapter does not understand.
func celNative(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case int:
		return int64(x)
	case []any:
		out := make([]any, len(x))
		for i, it := range x {
			out[i] = celNative(it)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, it := range x {
			out[k] = celNative(it)
		}
		return out
	case Record:
		return celNative(map[string]any(x))
	}
	return v
}
