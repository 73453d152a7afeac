// Package combinator composes two components into one. The composed message
// is a variant of the two message types and the composed model is a pair of
// the two models; each message updates exactly one half.
package combinator

import (
	"github.com/getseabird/todoelm/internal/command"
	"github.com/getseabird/todoelm/internal/component"
	"github.com/getseabird/todoelm/internal/variant"
)

type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Layout positions second immediately after first along axis. It must not
// otherwise change either view.
type Layout[V any] interface {
	Stack(axis Axis, first, second V) V
}

// Tagger is implemented by layouts whose views emit messages. Tag rewrites
// every message view emits through lift.
type Tagger[V any] interface {
	Tag(view V, lift func(any) any) V
}

type Pair[M1, M2 any] struct {
	First  M1 `json:"first" yaml:"first"`
	Second M2 `json:"second" yaml:"second"`
}

// Composite is the component built by TopDown and LeftRight.
type Composite[Msg1, Model1, Msg2, Model2, V any] struct {
	first  component.Component[Msg1, Model1, V]
	second component.Component[Msg2, Model2, V]
	layout Layout[V]
	axis   Axis
}

// TopDown renders top above bottom.
func TopDown[Msg1, Model1, Msg2, Model2, V any](layout Layout[V], top component.Component[Msg1, Model1, V], bottom component.Component[Msg2, Model2, V]) *Composite[Msg1, Model1, Msg2, Model2, V] {
	return Stack(layout, Vertical, top, bottom)
}

// LeftRight renders left before right on the horizontal axis.
func LeftRight[Msg1, Model1, Msg2, Model2, V any](layout Layout[V], left component.Component[Msg1, Model1, V], right component.Component[Msg2, Model2, V]) *Composite[Msg1, Model1, Msg2, Model2, V] {
	return Stack(layout, Horizontal, left, right)
}

func Stack[Msg1, Model1, Msg2, Model2, V any](layout Layout[V], axis Axis, first component.Component[Msg1, Model1, V], second component.Component[Msg2, Model2, V]) *Composite[Msg1, Model1, Msg2, Model2, V] {
	return &Composite[Msg1, Model1, Msg2, Model2, V]{
		first:  first,
		second: second,
		layout: layout,
		axis:   axis,
	}
}

func (c *Composite[Msg1, Model1, Msg2, Model2, V]) Init() Pair[Model1, Model2] {
	return Pair[Model1, Model2]{First: c.first.Init(), Second: c.second.Init()}
}

func (c *Composite[Msg1, Model1, Msg2, Model2, V]) Update(msg variant.Variant[Msg1, Msg2], model Pair[Model1, Model2]) Pair[Model1, Model2] {
	return variant.Match(msg,
		func(m Msg1) Pair[Model1, Model2] {
			return Pair[Model1, Model2]{First: c.first.Update(m, model.First), Second: model.Second}
		},
		func(m Msg2) Pair[Model1, Model2] {
			return Pair[Model1, Model2]{First: model.First, Second: c.second.Update(m, model.Second)}
		},
	)
}

func (c *Composite[Msg1, Model1, Msg2, Model2, V]) View(model Pair[Model1, Model2]) V {
	first := c.first.View(model.First)
	second := c.second.View(model.Second)
	if tagger, ok := c.layout.(Tagger[V]); ok {
		first = tagger.Tag(first, func(m any) any {
			return variant.First[Msg1, Msg2](m.(Msg1))
		})
		second = tagger.Tag(second, func(m any) any {
			return variant.Second[Msg1](m.(Msg2))
		})
	}
	return c.layout.Stack(c.axis, first, second)
}

// Commands lifts the commands of whichever half handled msg.
func (c *Composite[Msg1, Model1, Msg2, Model2, V]) Commands(msg variant.Variant[Msg1, Msg2], model Pair[Model1, Model2]) command.Cmd[variant.Variant[Msg1, Msg2]] {
	return variant.Match(msg,
		func(m Msg1) command.Cmd[variant.Variant[Msg1, Msg2]] {
			return command.Map(component.CommandsOf(c.first, m, model.First), variant.First[Msg1, Msg2])
		},
		func(m Msg2) command.Cmd[variant.Variant[Msg1, Msg2]] {
			return command.Map(component.CommandsOf(c.second, m, model.Second), variant.Second[Msg1, Msg2])
		},
	)
}
