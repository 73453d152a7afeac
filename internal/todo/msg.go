package todo

import "fmt"

// Msg is one of Add, Remove, ToggleCompleted, ToggleFilter or
// ClearCompleted. Use Match to take it apart.
type Msg interface {
	todoMsg()
}

type Add struct {
	Item Item
}

type Remove struct {
	Item Item
}

type ToggleCompleted struct {
	Item Item
}

type ToggleFilter struct {
	Filter bool
}

// ClearCompleted schedules a Remove for every completed item.
type ClearCompleted struct{}

func (Add) todoMsg()             {}
func (Remove) todoMsg()          {}
func (ToggleCompleted) todoMsg() {}
func (ToggleFilter) todoMsg()    {}
func (ClearCompleted) todoMsg()  {}

// Match calls the function for msg's variant. Adding a variant to Msg
// changes this signature, so every caller has to handle it.
func Match[R any](
	msg Msg,
	onAdd func(Add) R,
	onRemove func(Remove) R,
	onToggleCompleted func(ToggleCompleted) R,
	onToggleFilter func(ToggleFilter) R,
	onClearCompleted func(ClearCompleted) R,
) R {
	switch m := msg.(type) {
	case Add:
		return onAdd(m)
	case Remove:
		return onRemove(m)
	case ToggleCompleted:
		return onToggleCompleted(m)
	case ToggleFilter:
		return onToggleFilter(m)
	case ClearCompleted:
		return onClearCompleted(m)
	default:
		panic(fmt.Sprintf("todo: unknown message %T", msg))
	}
}
