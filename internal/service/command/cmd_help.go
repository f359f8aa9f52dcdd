package command

import (
	"context"

	"github.com/sandevgo/taxsh/internal/core"
)

type catalog interface {
	ByCategory() map[core.Category][]core.CommandSpec
}

type HelpCommand struct {
	catalog   catalog
	formatter *ResponseFormatter
}

func NewHelpCommand() *HelpCommand {
	return &HelpCommand{
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Spec() core.CommandSpec {
	return core.CommandSpec{
		Name:        "help",
		Description: "Display help menu.",
		Category:    core.CategoryGeneral,
	}
}

func (c *HelpCommand) Execute(ctx context.Context, args []core.Value) (string, error) {
	return RenderHelp(c.catalog, c.formatter), nil
}

// RenderHelp prints one section per non-empty category, in category order.
func RenderHelp(cat catalog, f *ResponseFormatter) string {
	groups := cat.ByCategory()

	sections := make([]string, 0, len(groups))
	for _, category := range core.Categories() {
		specs := groups[category]
		if len(specs) == 0 {
			continue
		}
		sections = append(sections, f.Section(category.String(), f.CommandTable(specs)))
	}
	return f.Combine(sections...)
}
