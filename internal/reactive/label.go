package reactive

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"
)

type Label struct {
	Widget
	Label         string              `gtk:"label"`
	Ellipsize     pango.EllipsizeMode
	Xalign        float64             `gtk:"xalign"`
	Strikethrough bool
}

func (m *Label) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewLabel(m.Label)
	m.apply(m, w)
	if m.Ellipsize != pango.EllipsizeNone {
		w.SetEllipsize(m.Ellipsize)
	}
	if m.Strikethrough {
		attrs := pango.NewAttrList()
		attrs.Insert(pango.NewAttrStrikethrough(true))
		w.SetAttributes(attrs)
	}
	return w
}
