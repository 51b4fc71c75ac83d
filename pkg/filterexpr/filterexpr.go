// Package filterexpr compiles user-supplied CEL filter expressions into
// predicates over in-memory records. Fields are whitelisted through a schema
// so an expression can only touch what the caller declared; anything else is
// a compile error surfaced to the user.
package filterexpr

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// ValueKind describes the type of a declared filter field.
type ValueKind string

const (
	KindString     ValueKind = "string"
	KindInt        ValueKind = "int"
	KindBool       ValueKind = "bool"
	KindTimestamp  ValueKind = "timestamp"
	KindStringList ValueKind = "string_list"
)

// Schema whitelists the variables a filter expression may reference.
type Schema map[string]ValueKind

// Predicate evaluates a compiled expression against one record's variables.
// Every declared field must be present in vars.
type Predicate func(vars map[string]any) (bool, error)

// Compile parses and type-checks the expression against the schema. The
// expression must evaluate to a boolean.
func Compile(expr string, schema Schema) (Predicate, error) {
	if expr == "" {
		return nil, errors.New("empty filter expression")
	}

	opts := make([]cel.EnvOption, 0, len(schema))
	for name, kind := range schema {
		t, err := celType(kind)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		opts = append(opts, cel.Variable(name, t))
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("build filter environment: %w", err)
	}

	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("filter must evaluate to a boolean, got %s", ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("compile filter: %w", err)
	}

	return func(vars map[string]any) (bool, error) {
		out, _, err := prg.Eval(vars)
		if err != nil {
			return false, fmt.Errorf("evaluate filter: %w", err)
		}
		b, ok := out.Value().(bool)
		if !ok {
			return false, fmt.Errorf("filter produced %T, want bool", out.Value())
		}
		return b, nil
	}, nil
}

func celType(kind ValueKind) (*cel.Type, error) {
	switch kind {
	case KindString:
		return cel.StringType, nil
	case KindInt:
		return cel.IntType, nil
	case KindBool:
		return cel.BoolType, nil
	case KindTimestamp:
		return cel.TimestampType, nil
	case KindStringList:
		return cel.ListType(cel.StringType), nil
	default:
		return nil, fmt.Errorf("unsupported value kind %q", kind)
	}
}
