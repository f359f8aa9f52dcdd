package srv

import "context"

// CleanupFunc is a Service that has nothing to start and releases a
// resource on shutdown.
type CleanupFunc func() error

func (f CleanupFunc) Start(ctx context.Context) error {
	return nil
}

func (f CleanupFunc) Shutdown(ctx context.Context) error {
	if f == nil {
		return nil
	}
	return f()
}

func NewCleanup(fn func() error) Service {
	return CleanupFunc(fn)
}
