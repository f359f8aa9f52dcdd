package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/sandevgo/taxsh/internal/config"
	"github.com/sandevgo/taxsh/internal/core"
	"github.com/sandevgo/taxsh/internal/service/ui"
	"github.com/sandevgo/taxsh/pkg/log"
	"github.com/sandevgo/taxsh/pkg/srv"
	"github.com/spf13/cobra"
)

var (
	debug bool
	seed  uint64
)

var rootCmd = &cobra.Command{
	Use:           core.AppName,
	Short:         "taxsh — an interactive tax rate shell",
	Long:          `taxsh reads one command per line and keeps the current tax rate for the session. Type 'help' inside the shell for the command list.`,
	Version:       core.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: false,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}

		shell, session, cleanups, err := NewShell(cfg)
		if err != nil {
			return err
		}

		ctx = log.WithFields(ctx, map[string]string{"session": session.ID})
		log.FromCtx(ctx).Debug().Str("runtime", cfg.GetRuntimePath()).Msg("starting taxsh")

		// an interrupt signal ends the session like end of input
		if err := srv.Run(ctx, shell, cleanups...); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the initial tax bracket (overrides TAXSH_SEED)")

	CustomizeHelp(rootCmd)
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}
{{end}}
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}
{{StyleTitle "AVAILABLE COMMANDS"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}{{end}}
{{end}}{{if .HasAvailableLocalFlags}}
{{StyleTitle "FLAGS"}}
{{StyleFlag (.LocalFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}`
	rootCmd.SetHelpTemplate(template)
}
