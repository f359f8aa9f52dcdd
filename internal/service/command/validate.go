package command

import (
	"math"
	"strconv"

	"github.com/sandevgo/taxsh/internal/core"
)

// ValidateArity checks args, the tokens after the command name, against the declared parameters.
func ValidateArity(spec core.CommandSpec, args []string) error {
	if len(args) == len(spec.Params) {
		return nil
	}

	err := &core.ArityError{
		Command: spec.Name,
		Usage:   spec.Usage(),
	}
	if len(args) < len(spec.Params) {
		err.Missing = spec.ParamNames()[len(args):]
	} else {
		err.Extra = args[len(spec.Params):]
	}
	return err
}

// Coerce converts raw into the type declared by p.
func Coerce(command string, p core.Param, raw string) (core.Value, error) {
	switch p.Type {
	case core.ParamFloat:
		return coerceFloat(command, p, raw)
	default:
		return coerceString(raw), nil
	}
}

// CoerceAll converts every argument. Arity must already be valid.
func CoerceAll(spec core.CommandSpec, args []string) ([]core.Value, error) {
	values := make([]core.Value, len(spec.Params))
	for i, p := range spec.Params {
		v, err := Coerce(spec.Name, p, args[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func coerceFloat(command string, p core.Param, raw string) (core.Value, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return core.Value{}, &core.ParseError{
			Command:  command,
			Param:    p.Name,
			Value:    raw,
			Expected: p.Type,
		}
	}
	return core.FloatValue(raw, f), nil
}

func coerceString(raw string) core.Value {
	return core.StringValue(raw)
}
