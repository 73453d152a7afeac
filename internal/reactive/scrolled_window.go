package reactive

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

type ScrolledWindow struct {
	Widget
	Child Model
}

func (m *ScrolledWindow) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewScrolledWindow()
	m.apply(m, w)
	if m.Child != nil {
		w.SetChild(m.Child.Create(ctx))
	}
	return w
}
