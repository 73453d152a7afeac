// Package component defines the update/view contract shared by every piece of
// UI in this repository.
//
// A component is a description, not a stateful object: Init builds a fresh
// model, Update folds a message into a new model without touching the old
// one, and View renders a model. The host loop owns the only mutable copy of
// the current model.
package component

import "github.com/getseabird/todoelm/internal/command"

type Component[Msg, Model, View any] interface {
	Init() Model
	Update(msg Msg, model Model) Model
	View(model Model) View
}

// Commander is implemented by components that schedule follow-up messages.
// Commands receives the model Update returned for msg.
type Commander[Msg, Model any] interface {
	Commands(msg Msg, model Model) command.Cmd[Msg]
}

// Func adapts three functions to a Component.
type Func[Msg, Model, View any] struct {
	InitFunc   func() Model
	UpdateFunc func(msg Msg, model Model) Model
	ViewFunc   func(model Model) View
}

func New[Msg, Model, View any](init func() Model, update func(Msg, Model) Model, view func(Model) View) *Func[Msg, Model, View] {
	return &Func[Msg, Model, View]{
		InitFunc:   init,
		UpdateFunc: update,
		ViewFunc:   view,
	}
}

func (f *Func[Msg, Model, View]) Init() Model {
	return f.InitFunc()
}

func (f *Func[Msg, Model, View]) Update(msg Msg, model Model) Model {
	return f.UpdateFunc(msg, model)
}

func (f *Func[Msg, Model, View]) View(model Model) View {
	return f.ViewFunc(model)
}

type withCommands[Msg, Model, View any] struct {
	Component[Msg, Model, View]
	commands func(Msg, Model) command.Cmd[Msg]
}

func (c *withCommands[Msg, Model, View]) Commands(msg Msg, model Model) command.Cmd[Msg] {
	return c.commands(msg, model)
}

// WithCommands attaches a Commands function to c.
func WithCommands[Msg, Model, View any](c Component[Msg, Model, View], commands func(Msg, Model) command.Cmd[Msg]) Component[Msg, Model, View] {
	return &withCommands[Msg, Model, View]{Component: c, commands: commands}
}

// CommandsOf returns the commands c schedules for msg, or nil when c does not
// schedule any.
func CommandsOf[Msg, Model, View any](c Component[Msg, Model, View], msg Msg, model Model) command.Cmd[Msg] {
	if cmd, ok := c.(Commander[Msg, Model]); ok {
		return cmd.Commands(msg, model)
	}
	return nil
}

// MapView returns a component that renders through f. Messages and models
// are untouched.
func MapView[Msg, Model, V, W any](c Component[Msg, Model, V], f func(V) W) Component[Msg, Model, W] {
	mapped := New(c.Init, c.Update, func(model Model) W {
		return f(c.View(model))
	})
	if _, ok := c.(Commander[Msg, Model]); ok {
		return WithCommands[Msg, Model, W](mapped, func(msg Msg, model Model) command.Cmd[Msg] {
			return CommandsOf(c, msg, model)
		})
	}
	return mapped
}
