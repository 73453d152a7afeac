package reactive

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// env is what a render passes down to every model it creates.
type env struct {
	send     func(msg any)
	retainer *Retainer
}

type envKey struct{}

func withEnv(ctx context.Context, e *env) context.Context {
	return context.WithValue(ctx, envKey{}, e)
}

func envFrom(ctx context.Context) *env {
	e, ok := ctx.Value(envKey{}).(*env)
	if !ok {
		panic("reactive: model created outside of a render")
	}
	return e
}

// send delivers msg from a signal handler. Handlers that produce no message
// pass nil.
func send(ctx context.Context, msg any) {
	if msg == nil {
		return
	}
	envFrom(ctx).send(msg)
}

// Tagged rewrites every message sent from inside Child through Lift. The
// combinator uses it to tag a child's messages with the side they came from.
type Tagged struct {
	Child Model
	Lift  func(msg any) any
}

func (m *Tagged) Create(ctx context.Context) gtk.Widgetter {
	parent := envFrom(ctx)
	child := &env{
		retainer: parent.retainer,
		send: func(msg any) {
			parent.send(m.Lift(msg))
		},
	}
	return m.Child.Create(withEnv(ctx, child))
}
