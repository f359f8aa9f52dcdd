package command

import (
	"context"

	"github.com/sandevgo/taxsh/internal/core"
	"github.com/sandevgo/taxsh/pkg/log"
)

type Router struct {
	registry *Registry
}

func New(registry *Registry) *Router {
	return &Router{registry: registry}
}

// Dispatch resolves, validates and runs one parsed command. The command's
// effect runs only when both arity and type checks pass.
func (r *Router) Dispatch(ctx context.Context, pc core.ParsedCommand) (string, error) {
	logger := log.FromCtx(ctx)

	cmd, ok := r.registry.Lookup(pc.Name)
	if !ok {
		logger.Debug().Str("command", pc.Name).Msg("unknown command")
		return "", &core.UnknownCommandError{Name: pc.Name}
	}

	spec := cmd.Spec()
	if err := ValidateArity(spec, pc.Args); err != nil {
		logger.Debug().Err(err).Str("command", spec.Name).Msg("arity check failed")
		return "", err
	}

	args, err := CoerceAll(spec, pc.Args)
	if err != nil {
		logger.Debug().Err(err).Str("command", spec.Name).Msg("argument conversion failed")
		return "", err
	}

	logger.Debug().Str("command", spec.Name).Strs("args", pc.Args).Msg("executing command")
	return cmd.Execute(ctx, args)
}

func (r *Router) ListCommands() []core.CommandSpec {
	return r.registry.All()
}
