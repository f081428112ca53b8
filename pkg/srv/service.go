package srv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/companion/pkg/log"
)

const shutdownTimeout = 10 * time.Second

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts every service and blocks until ctx is cancelled or one of them
// fails to start. Services are then shut down in reverse order.
func Run(ctx context.Context, services ...Service) error {
	logger := log.FromCtx(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, len(services))
	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil {
				errCh <- fmt.Errorf("%T start: %w", service, err)
				cancel()
			}
		}(service)
	}

	<-ctx.Done()

	var startErr error
	select {
	case startErr = <-errCh:
	default:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer shutdownCancel()

	var errs []error
	if startErr != nil {
		errs = append(errs, startErr)
	}
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", services[i])
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
