package reactive

import (
	"context"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
)

// WindowSink shows each rendered model as the content of a window, replacing
// the previous tree.
type WindowSink struct {
	ctx    context.Context
	window *adw.ApplicationWindow
}

// NewWindowSink returns a sink rendering into window. send receives every
// message the rendered widgets emit.
func NewWindowSink(ctx context.Context, window *adw.ApplicationWindow, retainer *Retainer, send func(msg any)) *WindowSink {
	return &WindowSink{
		ctx:    withEnv(ctx, &env{send: send, retainer: retainer}),
		window: window,
	}
}

func (s *WindowSink) Render(model Model) {
	s.window.SetContent(model.Create(s.ctx))
}
