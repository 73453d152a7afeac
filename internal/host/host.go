// Package host holds the single mutable cell of an application: the current
// model. Dispatch is the only way to change it.
package host

import (
	"github.com/getseabird/todoelm/internal/command"
	"github.com/getseabird/todoelm/internal/component"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// Loop drives dispatch, update, and render for one component.
//
// A Loop is owned by the UI thread and is not safe for concurrent use; use
// Post to hand it messages from other goroutines.
type Loop[Msg, Model, View any] struct {
	component component.Component[Msg, Model, View]
	sink      Sink[View]
	log       logr.Logger
	schedule  func(func())
	trace     bool

	model   Model
	started bool
	busy    bool
	queue   []Msg
	seq     uint64
}

type Option func(*options)

type options struct {
	log      logr.Logger
	schedule func(func())
	trace    bool
}

func WithLogger(log logr.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithScheduler sets the function Post uses to get back onto the UI thread,
// e.g. glib.IdleAdd.
func WithScheduler(schedule func(func())) Option {
	return func(o *options) { o.schedule = schedule }
}

// WithTrace logs a diff of the model after every transition at V(4).
func WithTrace(enabled bool) Option {
	return func(o *options) { o.trace = enabled }
}

func New[Msg, Model, View any](c component.Component[Msg, Model, View], sink Sink[View], opts ...Option) *Loop[Msg, Model, View] {
	o := options{
		log:      logr.Discard(),
		schedule: func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Loop[Msg, Model, View]{
		component: c,
		sink:      sink,
		log:       o.log.WithValues("session", uuid.NewString()),
		schedule:  o.schedule,
		trace:     o.trace,
		model:     c.Init(),
	}
}

// Start renders the initial model. Dispatch calls Start if it was not called.
func (l *Loop[Msg, Model, View]) Start() {
	if l.started {
		return
	}
	l.started = true
	l.log.V(1).Info("start")
	l.sink.Render(l.component.View(l.model))
}

func (l *Loop[Msg, Model, View]) Model() Model {
	return l.model
}

// Dispatch applies msg to the current model and renders the result. Messages
// dispatched while a transition is in progress, including those delivered by
// commands, are queued and applied in order once it completes.
func (l *Loop[Msg, Model, View]) Dispatch(msg Msg) {
	l.Start()
	l.queue = append(l.queue, msg)
	if l.busy {
		return
	}

	l.busy = true
	defer func() {
		// A panicking transition drops whatever it left queued.
		l.busy = false
		l.queue = l.queue[:0]
	}()

	for len(l.queue) > 0 {
		next := l.queue[0]
		l.queue = l.queue[1:]
		l.step(next)
	}
}

// Post schedules msg for dispatch on the UI thread.
func (l *Loop[Msg, Model, View]) Post(msg Msg) {
	l.schedule(func() {
		l.Dispatch(msg)
	})
}

func (l *Loop[Msg, Model, View]) step(msg Msg) {
	l.seq++
	log := l.log.WithValues("seq", l.seq)

	prev := l.model
	l.model = l.component.Update(msg, prev)
	if l.trace {
		traceTransition(log, msg, prev, l.model)
	}

	l.sink.Render(l.component.View(l.model))

	cmd := component.CommandsOf(l.component, msg, l.model)
	if cmd == nil {
		return
	}
	var delivered int
	command.Run(cmd, func(m Msg) {
		delivered++
		l.queue = append(l.queue, m)
	})
	log.V(2).Info("command delivered", "messages", delivered)
}
