// Package reactive builds GTK widget trees from plain model values. Views
// return a Model; the sink creates a fresh widget tree from it on every
// render.
//
// Signal handlers do not call back into application code. They carry the
// message to send, which reaches the host loop through the render context.
package reactive

import (
	"context"
	"fmt"
	"reflect"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/fatih/structtag"
)

type Model interface {
	Create(ctx context.Context) gtk.Widgetter
}

// Widget holds the properties every widget model shares. Fields tagged
// `gtk:"name"` are set as object properties when they are non-zero; the
// "always" option sets them even when zero.
type Widget struct {
	// margin top end bottom start
	Margin      [4]int
	VExpand     bool   `gtk:"vexpand"`
	HExpand     bool   `gtk:"hexpand"`
	HAlign      gtk.Align
	VAlign      gtk.Align
	Name        string  `gtk:"name"`
	Opacity     float64 `gtk:"opacity"`
	TooltipText string  `gtk:"tooltip-text"`
	Sensitive   *bool
	CSSClasses  []string
}

// apply sets the tagged properties of model, including those of embedded
// structs, then the shared widget state.
func (m *Widget) apply(model any, w gtk.Widgetter) {
	setProperties(reflect.Indirect(reflect.ValueOf(model)), w)

	base := gtk.BaseWidget(w)
	if m.Margin != [4]int{} {
		base.SetMarginTop(m.Margin[0])
		base.SetMarginEnd(m.Margin[1])
		base.SetMarginBottom(m.Margin[2])
		base.SetMarginStart(m.Margin[3])
	}
	if m.HAlign != gtk.AlignFill {
		base.SetHAlign(m.HAlign)
	}
	if m.VAlign != gtk.AlignFill {
		base.SetVAlign(m.VAlign)
	}
	if m.Sensitive != nil {
		base.SetSensitive(*m.Sensitive)
	}
	for _, class := range m.CSSClasses {
		base.AddCSSClass(class)
	}
}

func setProperties(val reflect.Value, w gtk.Widgetter) {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			setProperties(val.Field(i), w)
			continue
		}

		tags, err := structtag.Parse(string(field.Tag))
		if err != nil {
			panic(fmt.Sprintf("reactive: %s.%s: %v", typ.Name(), field.Name, err))
		}
		tag, err := tags.Get("gtk")
		if err != nil || tag.Name == "" {
			continue
		}
		if val.Field(i).IsZero() && !tag.HasOption("always") {
			continue
		}
		w.SetObjectProperty(tag.Name, val.Field(i).Interface())
	}
}

func createAll(ctx context.Context, models []Model) []gtk.Widgetter {
	widgets := make([]gtk.Widgetter, 0, len(models))
	for _, model := range models {
		if model == nil {
			continue
		}
		widgets = append(widgets, model.Create(ctx))
	}
	return widgets
}
