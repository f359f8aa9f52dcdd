package command

import (
	"github.com/sandevgo/taxsh/internal/core"
)

// NewDefaultRegistry builds the shell's fixed command set bound to state.
func NewDefaultRegistry(state core.TaxState) (*Registry, error) {
	help := NewHelpCommand()

	r, err := NewRegistry(
		help,
		NewExitCommand(),
		NewTaxCommand(state),
		NewTaxSetCommand(state),
	)
	if err != nil {
		return nil, err
	}

	help.catalog = r
	return r, nil
}
