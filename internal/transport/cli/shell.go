package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sandevgo/taxsh/internal/core"
	"github.com/sandevgo/taxsh/internal/service/command"
	"github.com/sandevgo/taxsh/pkg/log"
)

// Shell is the read-dispatch-print loop. It stops on the exit command or
// when input runs out; no other error ends it.
type Shell struct {
	reader    *Reader
	router    core.CmdRouter
	out       io.Writer
	formatter *command.ResponseFormatter
}

func NewShell(src LineSource, router core.CmdRouter, out io.Writer) *Shell {
	return &Shell{
		reader:    NewReader(src),
		router:    router,
		out:       out,
		formatter: command.NewResponseFormatter(),
	}
}

func (s *Shell) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("shell started, type 'help' for commands or 'exit' to quit")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		pc, err := s.reader.ReadCommand()
		if err != nil {
			if errors.Is(err, core.ErrNoCommand) {
				continue
			}
			var ioErr *core.IOError
			if errors.As(err, &ioErr) && !errors.Is(ioErr, io.EOF) {
				logger.Error().Err(ioErr.Err).Msg("input stream failed, ending session")
			}
			logger.Info().Msg("end of input, shell stopped")
			return nil
		}

		out, err := s.router.Dispatch(ctx, pc)
		if errors.Is(err, core.ErrExit) {
			logger.Info().Msg("exit requested, shell stopped")
			return nil
		}
		if err != nil {
			logger.Debug().Err(err).Str("command", pc.Name).Msg("command failed")
			fmt.Fprintln(s.out, s.formatter.Error(err))
			continue
		}

		if out != "" {
			fmt.Fprintln(s.out, out)
		}
	}
}

// Shutdown is a no-op, the line source is closed by its owner.
func (s *Shell) Shutdown(ctx context.Context) error {
	return nil
}
