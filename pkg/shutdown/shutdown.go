package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Grace bounds how long servers may drain after a stop signal.
const Grace = 10 * time.Second

// WithSignals cancels the returned context on SIGINT or SIGTERM.
func WithSignals(parent context.Context, log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
			return
		case sig := <-ch:
			if log != nil {
				log.Info("signal received", slog.String("signal", sig.String()))
			}
			cancel()
		}
	}()

	return ctx, cancel
}
