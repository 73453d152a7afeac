package todo

import (
	"testing"

	"github.com/getseabird/todoelm/internal/command"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var (
	milk = Item{Text: "milk"}
	eggs = Item{Text: "eggs"}
)

func apply(todos Todos, msgs ...Msg) Todos {
	for _, msg := range msgs {
		todos = Update(msg, todos)
	}
	return todos
}

func TestUpdate_Add(t *testing.T) {
	req := require.New(t)
	todos := Init()
	req.Empty(todos.Items)
	req.False(todos.Filter)

	todos = Update(Add{Item: milk}, todos)
	req.Equal([]Item{{Text: "milk"}}, todos.Items)
	req.False(todos.Filter)

	todos = Update(Add{Item: eggs}, todos)
	req.Equal([]Item{{Text: "milk"}, {Text: "eggs"}}, todos.Items)
}

func TestUpdate_ToggleCompleted(t *testing.T) {
	req := require.New(t)
	todos := apply(Init(), Add{Item: milk}, Add{Item: eggs})

	todos = Update(ToggleCompleted{Item: milk}, todos)

	req.Equal([]Item{{Text: "milk", Completed: true}, {Text: "eggs"}}, todos.Items)
}

func TestUpdate_Remove(t *testing.T) {
	req := require.New(t)
	todos := apply(Init(), Add{Item: milk}, Add{Item: eggs}, ToggleCompleted{Item: milk})

	todos = Update(Remove{Item: eggs}, todos)

	req.Equal([]Item{{Text: "milk", Completed: true}}, todos.Items)
}

func TestUpdate_ToggleFilter(t *testing.T) {
	req := require.New(t)
	todos := apply(Init(), Add{Item: milk}, Add{Item: eggs})
	before := append([]Item(nil), todos.Items...)

	todos = Update(ToggleFilter{Filter: true}, todos)

	req.True(todos.Filter)
	req.Equal(before, todos.Items)
}

func TestUpdate_FirstEqualElementOnly(t *testing.T) {
	req := require.New(t)
	todos := apply(Init(), Add{Item: milk}, Add{Item: eggs}, Add{Item: milk})

	toggled := Update(ToggleCompleted{Item: milk}, todos)
	req.Equal([]Item{{Text: "milk", Completed: true}, eggs, milk}, toggled.Items)

	removed := Update(Remove{Item: milk}, todos)
	req.Equal([]Item{eggs, milk}, removed.Items)
}

func TestUpdate_UnknownItemIsNoop(t *testing.T) {
	todos := apply(Init(), Add{Item: milk})
	require.Equal(t, todos, Update(Remove{Item: eggs}, todos))
	require.Equal(t, todos, Update(ToggleCompleted{Item: eggs}, todos))
}

func TestUpdate_IsPure(t *testing.T) {
	req := require.New(t)
	todos := apply(Init(), Add{Item: milk}, Add{Item: eggs})
	snapshot := Todos{Items: append([]Item(nil), todos.Items...), Filter: todos.Filter}

	msgs := []Msg{
		Add{Item: Item{Text: "bread"}},
		Remove{Item: milk},
		ToggleCompleted{Item: eggs},
		ToggleFilter{Filter: true},
		ClearCompleted{},
	}
	for _, msg := range msgs {
		first := Update(msg, todos)
		second := Update(msg, todos)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%T not deterministic (-first +second):\n%s", msg, diff)
		}
		if diff := cmp.Diff(snapshot, todos); diff != "" {
			t.Errorf("%T mutated its input (-want +got):\n%s", msg, diff)
		}
	}
	req.Len(todos.Items, 2)
}

func TestCommands_ClearCompleted(t *testing.T) {
	req := require.New(t)
	bread := Item{Text: "bread", Completed: true}
	todos := apply(Init(), Add{Item: milk}, Add{Item: eggs}, Add{Item: bread}, ToggleCompleted{Item: milk})

	req.Equal(todos, Update(ClearCompleted{}, todos))

	msgs := command.Collect(Commands(ClearCompleted{}, todos))
	req.Equal([]Msg{
		Remove{Item: Item{Text: "milk", Completed: true}},
		Remove{Item: bread},
	}, msgs)

	req.Equal([]Item{eggs}, apply(todos, msgs...).Items)
}

func TestCommands_OnlyClearCompletedSchedules(t *testing.T) {
	todos := apply(Init(), Add{Item: Item{Text: "done", Completed: true}})
	require.Nil(t, Commands(Add{Item: milk}, todos))
	require.Empty(t, command.Collect(Commands(ClearCompleted{}, Init())))
}

func TestMatch_CallsOneHandler(t *testing.T) {
	name := func(msg Msg) string {
		return Match(msg,
			func(Add) string { return "add" },
			func(Remove) string { return "remove" },
			func(ToggleCompleted) string { return "toggle" },
			func(ToggleFilter) string { return "filter" },
			func(ClearCompleted) string { return "clear" },
		)
	}
	require.Equal(t, "add", name(Add{}))
	require.Equal(t, "remove", name(Remove{}))
	require.Equal(t, "toggle", name(ToggleCompleted{}))
	require.Equal(t, "filter", name(ToggleFilter{}))
	require.Equal(t, "clear", name(ClearCompleted{}))
}

func TestVisible(t *testing.T) {
	todos := apply(Init(), Add{Item: milk}, Add{Item: eggs}, ToggleCompleted{Item: milk})
	require.Len(t, todos.Visible(), 2)
	require.Equal(t, []Item{eggs}, Update(ToggleFilter{Filter: true}, todos).Visible())
	require.Equal(t, 1, todos.Remaining())
}

func TestSceneView(t *testing.T) {
	todos := apply(Init(), Add{Item: milk}, Add{Item: eggs}, ToggleCompleted{Item: milk})
	require.Equal(t,
		"Add a todo:\n[x] milk\n[ ] eggs\n[ ] Hide completed (1 left)\n",
		SceneView(todos).String())

	require.Equal(t,
		"Add a todo:\n[ ] eggs\n[x] Hide completed (1 left)\n",
		SceneView(Update(ToggleFilter{Filter: true}, todos)).String())
}

func TestNew(t *testing.T) {
	req := require.New(t)
	c := New(SceneView)
	m := c.Update(Add{Item: milk}, c.Init())
	req.Equal([]Item{milk}, m.Items)
	req.Contains(c.View(m).String(), "[ ] milk")
}
