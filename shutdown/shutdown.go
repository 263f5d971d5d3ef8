// Package shutdown runs registered cleanup hooks when the process is asked
// to stop, either by SIGINT/SIGTERM or programmatically.
package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	mut     sync.Mutex     //nolint:gochecknoglobals
	hooks   []func()       //nolint:gochecknoglobals
	channel chan os.Signal //nolint:gochecknoglobals
)

// BeforeShutdown registers h to run during shutdown. Hooks run in
// registration order, before the handler's context is canceled.
func BeforeShutdown(h func()) {
	mut.Lock()
	defer mut.Unlock()

	hooks = append(hooks, h)
}

// Shutdown triggers the shutdown sequence as if a signal had arrived. It
// does nothing if SetupHandler was never called.
func Shutdown() {
	mut.Lock()
	ch := channel
	mut.Unlock()

	if ch != nil {
		select {
		case ch <- os.Interrupt:
		default:
		}
	}
}

// SetupHandler listens for SIGINT and SIGTERM. The returned context is
// canceled once the hooks have run.
func SetupHandler() context.Context {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	mut.Lock()
	channel = ch
	mut.Unlock()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		sig := <-ch

		signal.Stop(ch)
		slog.Warn("Received " + sig.String() + ", shutting down...")

		mut.Lock()
		channel = nil
		mut.Unlock()

		Cleanup()
		cancel()
	}()

	return ctx
}

// Cleanup runs and forgets every registered hook. Programs that exit
// normally call it to flush telemetry.
func Cleanup() {
	mut.Lock()
	pending := hooks
	hooks = nil
	mut.Unlock()

	for _, h := range pending {
		h()
	}
}
