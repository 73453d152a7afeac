// Package counter is the small click counter composed above the todo list in
// the demo application.
package counter

import (
	"fmt"

	"github.com/getseabird/todoelm/internal/component"
	"github.com/getseabird/todoelm/internal/scene"
)

type Count int

type Msg interface {
	counterMsg()
}

type Increment struct{}

type Reset struct{}

func (Increment) counterMsg() {}
func (Reset) counterMsg()     {}

func Match[R any](msg Msg, onIncrement func(Increment) R, onReset func(Reset) R) R {
	switch m := msg.(type) {
	case Increment:
		return onIncrement(m)
	case Reset:
		return onReset(m)
	default:
		panic(fmt.Sprintf("counter: unknown message %T", msg))
	}
}

func Init() Count {
	return 0
}

func Update(msg Msg, count Count) Count {
	return Match(msg,
		func(Increment) Count { return count + 1 },
		func(Reset) Count { return 0 },
	)
}

func (c Count) String() string {
	if c == 1 {
		return "Clicked 1 time"
	}
	return fmt.Sprintf("Clicked %d times", int(c))
}

func SceneView(count Count) scene.Node {
	return scene.Text(count.String())
}

func New[V any](view func(Count) V) component.Component[Msg, Count, V] {
	return component.New(Init, Update, view)
}
