package component

import (
	"fmt"
	"testing"

	"github.com/getseabird/todoelm/internal/command"
	"github.com/stretchr/testify/require"
)

type add struct{ n int }

func adder() *Func[add, []int, string] {
	return New(
		func() []int { return []int{} },
		func(msg add, model []int) []int {
			next := make([]int, len(model), len(model)+1)
			copy(next, model)
			return append(next, msg.n)
		},
		func(model []int) string { return fmt.Sprint(model) },
	)
}

func TestFunc_Delegates(t *testing.T) {
	req := require.New(t)
	c := adder()

	m := c.Init()
	m = c.Update(add{1}, m)
	m = c.Update(add{2}, m)

	req.Equal([]int{1, 2}, m)
	req.Equal("[1 2]", c.View(m))
}

func TestFunc_InitReturnsFreshModels(t *testing.T) {
	c := adder()
	a := c.Update(add{1}, c.Init())
	b := c.Init()
	require.Empty(t, b)
	require.Len(t, a, 1)
}

func TestFunc_UpdateIsPure(t *testing.T) {
	req := require.New(t)
	c := adder()
	m := c.Update(add{1}, c.Init())
	snapshot := append([]int(nil), m...)

	first := c.Update(add{2}, m)
	second := c.Update(add{2}, m)

	req.Equal(first, second)
	req.Equal(snapshot, m)
}

func TestCommandsOf(t *testing.T) {
	req := require.New(t)
	plain := adder()
	req.Nil(CommandsOf[add, []int, string](plain, add{1}, nil))

	echo := WithCommands[add, []int, string](plain, func(msg add, model []int) command.Cmd[add] {
		return command.Of(add{msg.n + len(model)})
	})
	req.Equal([]add{{n: 3}}, command.Collect(CommandsOf(echo, add{1}, []int{1, 2})))
	req.Equal([]int{1}, echo.Update(add{1}, echo.Init()))
}

func TestMapView(t *testing.T) {
	req := require.New(t)
	c := MapView[add, []int, string, int](adder(), func(s string) int { return len(s) })
	req.Equal(len("[4]"), c.View(c.Update(add{4}, c.Init())))

	_, ok := c.(Commander[add, []int])
	req.False(ok)

	withCmd := WithCommands[add, []int, string](adder(), func(msg add, _ []int) command.Cmd[add] {
		return command.Of(msg)
	})
	mapped := MapView[add, []int, string, int](withCmd, func(s string) int { return len(s) })
	req.Equal([]add{{n: 9}}, command.Collect(CommandsOf(mapped, add{9}, nil)))
}
