package command

import (
	"errors"
	"testing"

	"github.com/sandevgo/taxsh/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateArity(t *testing.T) {
	twoParams := core.CommandSpec{
		Name: "move",
		Params: []core.Param{
			{Name: "from", Type: core.ParamString},
			{Name: "to", Type: core.ParamString},
		},
	}

	tests := []struct {
		name        string
		spec        core.CommandSpec
		args        []string
		wantMissing []string
		wantExtra   []string
	}{
		{name: "no params no args", spec: core.CommandSpec{Name: "tax"}},
		{name: "exact match", spec: twoParams, args: []string{"a", "b"}},
		{name: "all missing", spec: twoParams, args: nil, wantMissing: []string{"from", "to"}},
		{name: "one missing", spec: twoParams, args: []string{"a"}, wantMissing: []string{"to"}},
		{name: "extra args", spec: twoParams, args: []string{"a", "b", "c"}, wantExtra: []string{"c"}},
		{name: "args to nullary command", spec: core.CommandSpec{Name: "tax"}, args: []string{"x"}, wantExtra: []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArity(tt.spec, tt.args)
			if tt.wantMissing == nil && tt.wantExtra == nil {
				assert.NoError(t, err)
				return
			}

			var arity *core.ArityError
			require.True(t, errors.As(err, &arity))
			assert.Equal(t, tt.spec.Name, arity.Command)
			assert.Equal(t, tt.wantMissing, arity.Missing)
			assert.Equal(t, tt.wantExtra, arity.Extra)
		})
	}
}

func TestCoerce(t *testing.T) {
	percentage := core.Param{Name: "percentage", Type: core.ParamFloat}

	tests := []struct {
		name    string
		param   core.Param
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "integer", param: percentage, raw: "22", want: 22},
		{name: "decimal", param: percentage, raw: "18.5", want: 18.5},
		{name: "negative", param: percentage, raw: "-3", want: -3},
		{name: "exponent", param: percentage, raw: "1e2", want: 100},
		{name: "not a number", param: percentage, raw: "abc", wantErr: true},
		{name: "trailing garbage", param: percentage, raw: "12%", wantErr: true},
		{name: "nan", param: percentage, raw: "nan", wantErr: true},
		{name: "infinity", param: percentage, raw: "inf", wantErr: true},
		{name: "overflow", param: percentage, raw: "1e400", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Coerce("taxset", tt.param, tt.raw)
			if tt.wantErr {
				var perr *core.ParseError
				require.True(t, errors.As(err, &perr))
				assert.Equal(t, "percentage", perr.Param)
				assert.Equal(t, tt.raw, perr.Value)
				assert.Equal(t, core.ParamFloat, perr.Expected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, core.ParamFloat, v.Type())
			assert.Equal(t, tt.want, v.Float())
			assert.Equal(t, tt.raw, v.Raw())
		})
	}
}

func TestCoerce_String(t *testing.T) {
	v, err := Coerce("cmd", core.Param{Name: "label", Type: core.ParamString}, "hello")
	require.NoError(t, err)
	assert.Equal(t, core.ParamString, v.Type())
	assert.Equal(t, "hello", v.String())
}

func TestCoerceAll_FirstFailureWins(t *testing.T) {
	spec := core.CommandSpec{
		Name: "range",
		Params: []core.Param{
			{Name: "low", Type: core.ParamFloat},
			{Name: "high", Type: core.ParamFloat},
		},
	}

	_, err := CoerceAll(spec, []string{"x", "y"})
	var perr *core.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "low", perr.Param)

	values, err := CoerceAll(spec, []string{"1", "2.5"})
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, 2.5, values[1].Float())
}
