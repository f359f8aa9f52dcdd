package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/taxsh/internal/core"
)

type TaxCommand struct {
	state core.TaxState
}

func NewTaxCommand(state core.TaxState) *TaxCommand {
	return &TaxCommand{state: state}
}

func (c *TaxCommand) Spec() core.CommandSpec {
	return core.CommandSpec{
		Name:        "tax",
		Description: "Get the current tax %.",
		Category:    core.CategoryTaxes,
	}
}

func (c *TaxCommand) Execute(ctx context.Context, args []core.Value) (string, error) {
	return core.FormatFloat(c.state.TaxRate()), nil
}

type TaxSetCommand struct {
	state     core.TaxState
	formatter *ResponseFormatter
}

func NewTaxSetCommand(state core.TaxState) *TaxSetCommand {
	return &TaxSetCommand{
		state:     state,
		formatter: NewResponseFormatter(),
	}
}

func (c *TaxSetCommand) Spec() core.CommandSpec {
	return core.CommandSpec{
		Name:        "taxset",
		Params:      []core.Param{{Name: "percentage", Type: core.ParamFloat}},
		Description: "Set the tax %.",
		Category:    core.CategoryTaxes,
	}
}

func (c *TaxSetCommand) Execute(ctx context.Context, args []core.Value) (string, error) {
	if len(args) != 1 || args[0].Type() != core.ParamFloat {
		return "", fmt.Errorf("taxset: expected one float argument, got %d", len(args))
	}

	rate := args[0].Float()
	c.state.SetTaxRate(rate)

	return c.formatter.Success(fmt.Sprintf("Tax rate set to %s%%.", core.FormatFloat(rate))), nil
}
