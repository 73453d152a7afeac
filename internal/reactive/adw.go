package reactive

import (
	"context"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

type AdwBin struct {
	Widget
	Child Model
}

func (m *AdwBin) Create(ctx context.Context) gtk.Widgetter {
	w := adw.NewBin()
	m.apply(m, w)
	if m.Child != nil {
		w.SetChild(m.Child.Create(ctx))
	}
	return w
}

type AdwHeaderBar struct {
	Widget
	TitleWidget Model
	End         []Model
}

func (m *AdwHeaderBar) Create(ctx context.Context) gtk.Widgetter {
	w := adw.NewHeaderBar()
	m.apply(m, w)
	if m.TitleWidget != nil {
		w.SetTitleWidget(m.TitleWidget.Create(ctx))
	}
	for _, child := range createAll(ctx, m.End) {
		w.PackEnd(child)
	}
	return w
}

type AdwToolbarView struct {
	Widget
	TopBars []Model
	Content Model
}

func (m *AdwToolbarView) Create(ctx context.Context) gtk.Widgetter {
	w := adw.NewToolbarView()
	m.apply(m, w)
	for _, bar := range createAll(ctx, m.TopBars) {
		w.AddTopBar(bar)
	}
	if m.Content != nil {
		w.SetContent(m.Content.Create(ctx))
	}
	return w
}

// AdwWindowTitle is a header bar title with an optional subtitle.
type AdwWindowTitle struct {
	Widget
	Title    string
	Subtitle string
}

func (m *AdwWindowTitle) Create(ctx context.Context) gtk.Widgetter {
	w := adw.NewWindowTitle(m.Title, m.Subtitle)
	m.apply(m, w)
	return w
}
