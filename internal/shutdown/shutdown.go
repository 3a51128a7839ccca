package shutdown

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Context returns a context canceled on SIGINT or SIGTERM.
// The received signal is reported on w. Call stop to release the handler.
func Context(parent context.Context, w io.Writer) (ctx context.Context, stop context.CancelFunc) {
	return notify(parent, w, syscall.SIGINT, syscall.SIGTERM)
}

func notify(parent context.Context, w io.Writer, signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, signals...)

	go func() {
		select {
		case sig := <-sigChan:
			fmt.Fprintf(w, "\nReceived signal: %v, remaining cases will not run\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
