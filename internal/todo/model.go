// Package todo is the todo list component: an ordered list of items that can
// be added, removed and toggled, and a filter hiding completed ones.
package todo

import (
	"github.com/samber/lo"
)

// Item is compared by value; two items with the same text and state are the
// same item.
type Item struct {
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Todos is the whole state of the todo list. Filter hides completed items
// from views and never affects Items.
type Todos struct {
	Items  []Item `json:"items" yaml:"items"`
	Filter bool   `json:"filter" yaml:"filter"`
}

func Init() Todos {
	return Todos{Items: []Item{}}
}

// Visible returns the items views should show.
func (t Todos) Visible() []Item {
	return lo.Reject(t.Items, func(item Item, _ int) bool {
		return t.Filter && item.Completed
	})
}

func (t Todos) Remaining() int {
	return lo.CountBy(t.Items, func(item Item) bool {
		return !item.Completed
	})
}

// The list helpers below never write to their input.

func add(items []Item, item Item) []Item {
	next := make([]Item, 0, len(items)+1)
	next = append(next, items...)
	return append(next, item)
}

func remove(items []Item, item Item) []Item {
	i := lo.IndexOf(items, item)
	if i < 0 {
		return items
	}
	return lo.Flatten([][]Item{items[:i], items[i+1:]})
}

func replace(items []Item, old, next Item) []Item {
	return lo.Replace(items, old, next, 1)
}
