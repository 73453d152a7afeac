package ui

import (
	"fmt"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/todoelm/internal/counter"
	r "github.com/getseabird/todoelm/internal/reactive"
	"github.com/getseabird/todoelm/internal/todo"
	"github.com/samber/lo"
)

// todoScroll keeps the item list's scroll offset out of the todo model. It is
// widget-intrinsic and Update never reads it.
var todoScroll = r.Exemption{
	Name:   "todo-scroll",
	Reason: "scroll offset of the item list; widget-intrinsic and never read by Update",
}

// viewLocal is every piece of view state excluded from the models.
var viewLocal = []r.Exemption{todoScroll}

func TodoView(todos todo.Todos) r.Model {
	return &r.Box{
		Widget:      r.Widget{Margin: [4]int{6, 6, 6, 6}, VExpand: true},
		Orientation: gtk.OrientationVertical,
		Spacing:     6,
		Children: []r.Model{
			&r.Box{
				Orientation: gtk.OrientationHorizontal,
				Spacing:     6,
				Children: []r.Model{
					&r.Label{Label: "Add a todo"},
					&r.Entry{
						Widget:          r.Widget{HExpand: true},
						PlaceholderText: "What needs to be done?",
						Focus:           true,
						Activate: func(text string) any {
							if strings.TrimSpace(text) == "" {
								return nil
							}
							return todo.Add{Item: todo.Item{Text: text}}
						},
					},
				},
			},
			&r.RetainedScroll{
				Widget: r.Widget{VExpand: true},
				Name:   todoScroll.Name,
				Child: &r.Box{
					Orientation: gtk.OrientationVertical,
					Children:    lo.Map(todos.Visible(), func(item todo.Item, _ int) r.Model { return todoItemView(item) }),
				},
			},
			&r.Box{
				Orientation: gtk.OrientationHorizontal,
				Spacing:     6,
				Children: []r.Model{
					&r.CheckButton{
						Label:   "Hide completed",
						Active:  todos.Filter,
						Toggled: todo.ToggleFilter{Filter: !todos.Filter},
					},
					&r.Label{
						Widget: r.Widget{HExpand: true, CSSClasses: []string{"dim-label"}},
						Label:  fmt.Sprintf("%d left", todos.Remaining()),
						Xalign: 1,
					},
					&r.Button{
						Label:   "Clear completed",
						Clicked: todo.ClearCompleted{},
					},
				},
			},
		},
	}
}

func todoItemView(item todo.Item) r.Model {
	classes := []string{"todo-row"}
	if item.Completed {
		classes = append(classes, "completed")
	}
	return &r.Box{
		Widget:      r.Widget{CSSClasses: classes},
		Orientation: gtk.OrientationHorizontal,
		Spacing:     6,
		Children: []r.Model{
			&r.CheckButton{
				Active:  item.Completed,
				Toggled: todo.ToggleCompleted{Item: item},
			},
			&r.Label{
				Widget:        r.Widget{HExpand: true},
				Label:         item.Text,
				Xalign:        0.01,
				Strikethrough: item.Completed,
			},
			&r.Button{
				Widget:     r.Widget{CSSClasses: []string{"flat", "circular"}, TooltipText: "Remove"},
				IconName:   "window-close-symbolic",
				Clicked:    todo.Remove{Item: item},
				FadeParent: true,
			},
		},
	}
}

func CounterView(count counter.Count) r.Model {
	return &r.Box{
		Widget:      r.Widget{CSSClasses: []string{"counter"}},
		Orientation: gtk.OrientationHorizontal,
		Spacing:     6,
		Children: []r.Model{
			&r.Label{
				Widget: r.Widget{HExpand: true},
				Label:  count.String(),
				Xalign: 0.01,
			},
			&r.Button{Label: "Click me", Clicked: counter.Increment{}},
			&r.Button{
				Widget:  r.Widget{Sensitive: lo.ToPtr(count > 0)},
				Label:   "Reset",
				Clicked: counter.Reset{},
			},
		},
	}
}
