package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/todoelm/internal/combinator"
	"github.com/getseabird/todoelm/internal/component"
	"github.com/getseabird/todoelm/internal/counter"
	"github.com/getseabird/todoelm/internal/host"
	r "github.com/getseabird/todoelm/internal/reactive"
	"github.com/getseabird/todoelm/internal/state"
	"github.com/getseabird/todoelm/internal/todo"
	"github.com/getseabird/todoelm/internal/variant"
)

type (
	DemoMsg   = variant.Variant[counter.Msg, todo.Msg]
	DemoModel = combinator.Pair[counter.Count, todo.Todos]
)

// Demo is the counter stacked on top of the todo list, inside the window
// chrome. With config.Debug the current model is shown next to it.
func Demo(config *state.Config) component.Component[DemoMsg, DemoModel, r.Model] {
	filter := config.InitialFilter()
	todos := component.WithCommands[todo.Msg, todo.Todos, r.Model](
		component.New(
			func() todo.Todos {
				t := todo.Init()
				t.Filter = filter
				return t
			},
			todo.Update,
			TodoView,
		),
		todo.Commands,
	)
	inner := combinator.TopDown(r.Layout{Spacing: 6}, counter.New(CounterView), todos)

	return component.WithCommands[DemoMsg, DemoModel, r.Model](
		component.New(inner.Init, inner.Update, func(model DemoModel) r.Model {
			return chrome(model, inner.View(model), config.Debug)
		}),
		inner.Commands,
	)
}

func chrome(model DemoModel, content r.Model, debug bool) r.Model {
	if debug {
		content = &r.Box{
			Orientation: gtk.OrientationHorizontal,
			Spacing:     6,
			Children: []r.Model{
				&r.AdwBin{Widget: r.Widget{HExpand: true}, Child: content},
				modelView(model),
			},
		}
	}
	return &r.AdwToolbarView{
		TopBars: []r.Model{
			&r.AdwHeaderBar{
				TitleWidget: &r.AdwWindowTitle{
					Title:    ApplicationName,
					Subtitle: fmt.Sprintf("%d of %d left", model.Second.Remaining(), len(model.Second.Items)),
				},
			},
		},
		Content: content,
	}
}

func modelView(model DemoModel) r.Model {
	dump, err := host.Dump(model)
	if err != nil {
		dump = err.Error()
	}
	return &r.ScrolledWindow{
		Widget: r.Widget{HExpand: true, VExpand: true},
		Child: &r.SourceView{
			Widget:   r.Widget{CSSClasses: []string{"model-dump"}},
			Text:     dump,
			Language: "yaml",
			WrapMode: gtk.WrapWord,
		},
	}
}
