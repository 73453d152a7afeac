package reactive

import (
	"context"

	"github.com/diamondburned/gotk4-sourceview/pkg/gtksource/v5"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// SourceView shows read-only highlighted text.
type SourceView struct {
	Widget
	Text            string
	Language        string
	ShowLineNumbers bool         `gtk:"show-line-numbers"`
	WrapMode        gtk.WrapMode
}

func (m *SourceView) Create(ctx context.Context) gtk.Widgetter {
	buf := gtksource.NewBuffer(nil)
	if m.Language != "" {
		buf.SetLanguage(gtksource.LanguageManagerGetDefault().Language(m.Language))
	}
	buf.SetText(m.Text)

	w := gtksource.NewViewWithBuffer(buf)
	w.SetEditable(false)
	w.SetMonospace(true)
	w.SetWrapMode(m.WrapMode)
	m.apply(m, w)
	return w
}
