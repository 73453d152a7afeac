package reactive

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

type Entry struct {
	Widget
	PlaceholderText string `gtk:"placeholder-text"`
	// Activate maps the entered text to the message sent when Enter is
	// pressed. Returning nil sends nothing.
	Activate func(text string) any
	// Focus grabs the keyboard focus once the entry is shown.
	Focus bool
}

func (m *Entry) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewEntry()
	m.apply(m, w)
	if m.Activate != nil {
		activate := m.Activate
		w.ConnectActivate(func() {
			send(ctx, activate(w.Text()))
		})
	}
	if m.Focus {
		w.ConnectMap(func() {
			w.GrabFocus()
		})
	}
	return w
}
