package srv

import (
	"context"

	"github.com/sandevgo/taxsh/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run blocks on the foreground service, then shuts down every service,
// foreground first and the rest in reverse order. Shutdown errors are logged.
func Run(ctx context.Context, foreground Service, others ...Service) error {
	logger := log.FromCtx(ctx)

	err := foreground.Start(ctx)
	if err != nil {
		logger.Error().Err(err).Msgf("%T stopped with error", foreground)
	}

	all := append([]Service{foreground}, reverse(others)...)
	for _, service := range all {
		if sErr := service.Shutdown(context.WithoutCancel(ctx)); sErr != nil {
			logger.Error().Err(sErr).Msgf("%T failed to shutdown", service)
		}
	}
	return err
}

func reverse(services []Service) []Service {
	out := make([]Service, len(services))
	for i, s := range services {
		out[len(services)-1-i] = s
	}
	return out
}
