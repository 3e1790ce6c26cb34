package cli

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// ExitInterrupted is the exit status after an interrupt (128 + SIGINT).
const ExitInterrupted = 130

// NotifyContext returns a context that is cancelled by the first of sigs.
// Searches only look at the context between phases, so a second signal calls
// exit(ExitInterrupted) without waiting for the command to return. stop
// releases the signals and cancels the context.
func NotifyContext(parent context.Context, exit func(code int), sigs ...os.Signal) (ctx context.Context, stop func()) {
	ctx, cancel := context.WithCancel(parent)
	c := make(chan os.Signal, 2)
	signal.Notify(c, sigs...)
	done := make(chan struct{})

	go func() {
		select {
		case <-c:
			cancel()
		case <-done:
			return
		}
		select {
		case <-c:
			exit(ExitInterrupted)
		case <-done:
		}
	}()

	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			signal.Stop(c)
			close(done)
			cancel()
		})
	}
}
