package reactive

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

type Box struct {
	Widget
	Orientation gtk.Orientation
	Spacing     int `gtk:"spacing"`
	Homogeneous bool `gtk:"homogeneous"`
	Children    []Model
}

func (m *Box) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewBox(m.Orientation, m.Spacing)
	m.apply(m, w)
	for _, child := range createAll(ctx, m.Children) {
		w.Append(child)
	}
	return w
}
