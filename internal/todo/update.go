package todo

import (
	"github.com/getseabird/todoelm/internal/command"
	"github.com/getseabird/todoelm/internal/component"
	"github.com/samber/lo"
)

func Update(msg Msg, todos Todos) Todos {
	return Match(msg,
		func(m Add) Todos {
			return Todos{Items: add(todos.Items, m.Item), Filter: todos.Filter}
		},
		func(m Remove) Todos {
			return Todos{Items: remove(todos.Items, m.Item), Filter: todos.Filter}
		},
		func(m ToggleCompleted) Todos {
			toggled := Item{Text: m.Item.Text, Completed: !m.Item.Completed}
			return Todos{Items: replace(todos.Items, m.Item, toggled), Filter: todos.Filter}
		},
		func(m ToggleFilter) Todos {
			return Todos{Items: todos.Items, Filter: m.Filter}
		},
		func(ClearCompleted) Todos {
			return todos
		},
	)
}

// Commands returns the follow-up messages for msg given the updated model.
func Commands(msg Msg, todos Todos) command.Cmd[Msg] {
	if _, ok := msg.(ClearCompleted); !ok {
		return nil
	}
	completed := lo.Filter(todos.Items, func(item Item, _ int) bool {
		return item.Completed
	})
	return command.Of(lo.Map(completed, func(item Item, _ int) Msg {
		return Remove{Item: item}
	})...)
}

// New returns the todo component rendered with view.
func New[V any](view func(Todos) V) component.Component[Msg, Todos, V] {
	return component.WithCommands[Msg, Todos, V](component.New(Init, Update, view), Commands)
}
