package command

import (
	"context"
	"testing"

	"github.com/sandevgo/taxsh/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCommand struct {
	spec core.CommandSpec
	out  string
	err  error
	args []core.Value
	runs int
}

func (c *stubCommand) Spec() core.CommandSpec { return c.spec }

func (c *stubCommand) Execute(ctx context.Context, args []core.Value) (string, error) {
	c.runs++
	c.args = args
	return c.out, c.err
}

func stub(name string, category core.Category, params ...core.Param) *stubCommand {
	return &stubCommand{spec: core.CommandSpec{Name: name, Category: category, Params: params}}
}

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name     string
		commands []core.Command
		wantErr  string
	}{
		{
			name:     "unique names",
			commands: []core.Command{stub("a", core.CategoryGeneral), stub("b", core.CategoryTaxes)},
		},
		{
			name:     "duplicate name",
			commands: []core.Command{stub("a", core.CategoryGeneral), stub("a", core.CategoryTaxes)},
			wantErr:  `duplicate command name "a"`,
		},
		{
			name:     "empty name",
			commands: []core.Command{stub("", core.CategoryGeneral)},
			wantErr:  "empty name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.commands...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Len(t, r.All(), len(tt.commands))
		})
	}
}

func TestRegistry_LookupAndOrder(t *testing.T) {
	r, err := NewRegistry(
		stub("zeta", core.CategoryTaxes),
		stub("alpha", core.CategoryGeneral),
		stub("mid", core.CategoryTaxes),
	)
	require.NoError(t, err)

	cmd, ok := r.Lookup("alpha")
	require.True(t, ok)
	assert.Equal(t, "alpha", cmd.Spec().Name)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)

	var names []string
	for _, spec := range r.All() {
		names = append(names, spec.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestRegistry_ByCategoryKeepsEveryMember(t *testing.T) {
	r, err := NewRegistry(
		stub("a", core.CategoryGeneral),
		stub("b", core.CategoryTaxes),
		stub("c", core.CategoryGeneral),
		stub("d", core.CategoryTaxes),
	)
	require.NoError(t, err)

	groups := r.ByCategory()
	require.Len(t, groups, 2)

	general := groups[core.CategoryGeneral]
	taxes := groups[core.CategoryTaxes]
	require.Len(t, general, 2)
	require.Len(t, taxes, 2)
	assert.Equal(t, "a", general[0].Name)
	assert.Equal(t, "c", general[1].Name)
	assert.Equal(t, "b", taxes[0].Name)
	assert.Equal(t, "d", taxes[1].Name)
}

func TestNewDefaultRegistry(t *testing.T) {
	r, err := NewDefaultRegistry(&memState{rate: 10})
	require.NoError(t, err)

	specs := r.All()
	require.Len(t, specs, 4)

	want := []struct {
		name     string
		params   []string
		category core.Category
	}{
		{"help", []string{}, core.CategoryGeneral},
		{"exit", []string{}, core.CategoryGeneral},
		{"tax", []string{}, core.CategoryTaxes},
		{"taxset", []string{"percentage"}, core.CategoryTaxes},
	}
	for i, w := range want {
		assert.Equal(t, w.name, specs[i].Name)
		assert.Equal(t, w.params, specs[i].ParamNames())
		assert.Equal(t, w.category, specs[i].Category)
		assert.NotEmpty(t, specs[i].Description)
	}
}
