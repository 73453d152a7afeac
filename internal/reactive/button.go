package reactive

import (
	"context"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

const fadeDuration = 250 // ms

type Button struct {
	Widget
	Label    string `gtk:"label"`
	IconName string `gtk:"icon-name"`
	// Clicked is sent when the button is clicked.
	Clicked any
	// FadeParent fades the button's parent out first and sends Clicked once
	// it is invisible.
	FadeParent bool
}

func (m *Button) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewButton()
	m.apply(m, w)
	if m.Clicked != nil {
		msg := m.Clicked
		fade := m.FadeParent
		w.ConnectClicked(func() {
			parent := w.Parent()
			if !fade || parent == nil {
				send(ctx, msg)
				return
			}
			w.SetSensitive(false)
			fadeOut(parent, func() {
				send(ctx, msg)
			})
		})
	}
	return w
}

func fadeOut(w gtk.Widgetter, done func()) {
	target := adw.NewPropertyAnimationTarget(gtk.BaseWidget(w).Object, "opacity")
	animation := adw.NewTimedAnimation(w, 1, 0, fadeDuration, target)
	animation.ConnectDone(done)
	animation.Play()
}

type CheckButton struct {
	Widget
	Label  string `gtk:"label"`
	Active bool   `gtk:"active,always"`
	// Toggled is sent when the user toggles the button.
	Toggled any
}

func (m *CheckButton) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewCheckButton()
	m.apply(m, w)
	// Connected after apply so setting Active does not send.
	if m.Toggled != nil {
		msg := m.Toggled
		w.ConnectToggled(func() {
			send(ctx, msg)
		})
	}
	return w
}
