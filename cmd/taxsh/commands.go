package main

import (
	"fmt"

	"github.com/sandevgo/taxsh/internal/service/command"
	"github.com/sandevgo/taxsh/internal/service/state"
	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands available inside the shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := command.NewDefaultRegistry(state.NewRandomSession(0))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), command.RenderHelp(registry, command.NewResponseFormatter()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
