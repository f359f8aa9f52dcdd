package command

import (
	"context"

	"github.com/sandevgo/taxsh/internal/core"
)

type ExitCommand struct{}

func NewExitCommand() *ExitCommand {
	return &ExitCommand{}
}

func (c *ExitCommand) Spec() core.CommandSpec {
	return core.CommandSpec{
		Name:        "exit",
		Description: "Exit the program.",
		Category:    core.CategoryGeneral,
	}
}

func (c *ExitCommand) Execute(ctx context.Context, args []core.Value) (string, error) {
	return "", core.ErrExit
}
