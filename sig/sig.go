// Package sig cancels work when the process receives a terminating
// signal.
package sig

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

type ReceivedHandler interface {
	Handle(os.Signal)
}

type ReceivedHandlerFunc func(os.Signal)

// Handle calls the underlying function with the received signal.
func (s ReceivedHandlerFunc) Handle(sig os.Signal) {
	s(sig)
}

type Handler struct {
	onSignalReceived ReceivedHandler
	sigCh            chan os.Signal
}

// New creates a signal handler that forwards the first of sigs
// (default: SIGTERM, SIGINT, SIGHUP) to h. A nil h only cancels.
func New(h ReceivedHandler, sigs ...os.Signal) *Handler {
	if len(sigs) == 0 {
		sigs = append(sigs, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP)
	}
	if h == nil {
		h = ReceivedHandlerFunc(func(os.Signal) {})
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	return &Handler{
		onSignalReceived: h,
		sigCh:            ch,
	}
}

// Loop waits for a signal or for ctx to be done. On a signal the handler
// is called first. Either way cancel is called and the signals are
// released before Loop returns.
func (h *Handler) Loop(ctx context.Context, cancel func()) error {
	defer cancel()
	defer signal.Stop(h.sigCh)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case sig := <-h.sigCh:
		h.onSignalReceived.Handle(sig)
		return nil
	}
}

// WithCancel returns a copy of ctx that is canceled when one of sigs
// arrives, or when the returned cancel func is called.
func WithCancel(ctx context.Context, h ReceivedHandler, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	go New(h, sigs...).Loop(ctx, cancel)
	return ctx, cancel
}
