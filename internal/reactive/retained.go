package reactive

import (
	"context"
	"fmt"
	"slices"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"golang.org/x/exp/maps"
)

// Exemption names one piece of view-local state that is kept out of the model
// and survives re-renders inside a persistent widget. Reason says why it is
// not modelled. Nothing Update reads may be kept this way.
type Exemption struct {
	Name   string
	Reason string
}

// Retainer owns the persistent widgets of one window. Only names declared
// when it is created can be retained.
type Retainer struct {
	exemptions map[string]Exemption
	scrolls    map[string]*retainedScroll
}

type retainedScroll struct {
	window *gtk.ScrolledWindow
	holder *adw.Bin
}

func NewRetainer(exemptions ...Exemption) *Retainer {
	r := &Retainer{
		exemptions: map[string]Exemption{},
		scrolls:    map[string]*retainedScroll{},
	}
	for _, e := range exemptions {
		r.exemptions[e.Name] = e
	}
	return r
}

func (r *Retainer) Exemptions() []Exemption {
	names := maps.Keys(r.exemptions)
	slices.Sort(names)
	out := make([]Exemption, 0, len(names))
	for _, name := range names {
		out = append(out, r.exemptions[name])
	}
	return out
}

func (r *Retainer) scroll(name string) *retainedScroll {
	if r == nil {
		panic("reactive: retained widget rendered without a retainer")
	}
	if _, ok := r.exemptions[name]; !ok {
		panic(fmt.Sprintf("reactive: %q is not a declared view-local exemption", name))
	}
	s, ok := r.scrolls[name]
	if !ok {
		s = &retainedScroll{window: gtk.NewScrolledWindow()}
		r.scrolls[name] = s
	}
	return s
}

// RetainedScroll renders Child inside a scrolled window that is created once
// per Name and moved into every new tree, so its scroll offset survives
// re-renders.
type RetainedScroll struct {
	Widget
	Name  string
	Child Model
}

func (m *RetainedScroll) Create(ctx context.Context) gtk.Widgetter {
	s := envFrom(ctx).retainer.scroll(m.Name)

	// Detach from the tree that is about to be replaced.
	if s.holder != nil {
		s.holder.SetChild(nil)
	}

	if m.Child != nil {
		s.window.SetChild(m.Child.Create(ctx))
	} else {
		s.window.SetChild(nil)
	}

	s.holder = adw.NewBin()
	s.holder.SetChild(s.window)
	m.apply(m, s.holder)
	return s.holder
}
