package reactive

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/todoelm/internal/combinator"
)

// Layout stacks widget models in a box and lets the combinator tag their
// messages.
type Layout struct {
	Spacing int
}

var (
	_ combinator.Layout[Model] = Layout{}
	_ combinator.Tagger[Model] = Layout{}
)

func (l Layout) Stack(axis combinator.Axis, first, second Model) Model {
	orientation := gtk.OrientationVertical
	if axis == combinator.Horizontal {
		orientation = gtk.OrientationHorizontal
	}
	return &Box{
		Orientation: orientation,
		Spacing:     l.Spacing,
		Children:    []Model{first, second},
	}
}

func (Layout) Tag(view Model, lift func(any) any) Model {
	return &Tagged{Child: view, Lift: lift}
}
