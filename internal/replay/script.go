// Package replay drives the todo component headlessly from a YAML script of
// user intents and prints the resulting frame.
package replay

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/getseabird/todoelm/internal/todo"
	"gopkg.in/yaml.v2"
)

// Step is one scripted interaction. Exactly one field must be set.
type Step struct {
	Add    *string `yaml:"add,omitempty"`
	Toggle *string `yaml:"toggle,omitempty"`
	Remove *string `yaml:"remove,omitempty"`
	Filter *bool   `yaml:"filter,omitempty"`
	Clear  bool    `yaml:"clear,omitempty"`
}

func Load(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	steps, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return steps, nil
}

func Parse(data []byte) ([]Step, error) {
	var steps []Step
	if err := yaml.UnmarshalStrict(data, &steps); err != nil {
		return nil, err
	}
	for i, step := range steps {
		if n := step.fields(); n != 1 {
			return nil, fmt.Errorf("step %d: want exactly one action, got %d", i+1, n)
		}
	}
	return steps, nil
}

func (s Step) fields() int {
	n := 0
	for _, set := range []bool{s.Add != nil, s.Toggle != nil, s.Remove != nil, s.Filter != nil, s.Clear} {
		if set {
			n++
		}
	}
	return n
}

// Msg resolves the step against the current model. Steps that name an item
// pick the first item with exactly that text.
func (s Step) Msg(todos todo.Todos) (todo.Msg, error) {
	switch {
	case s.Add != nil:
		return todo.Add{Item: todo.Item{Text: *s.Add}}, nil
	case s.Toggle != nil:
		item, err := find(todos, *s.Toggle)
		if err != nil {
			return nil, err
		}
		return todo.ToggleCompleted{Item: item}, nil
	case s.Remove != nil:
		item, err := find(todos, *s.Remove)
		if err != nil {
			return nil, err
		}
		return todo.Remove{Item: item}, nil
	case s.Filter != nil:
		return todo.ToggleFilter{Filter: *s.Filter}, nil
	case s.Clear:
		return todo.ClearCompleted{}, nil
	}
	return nil, errors.New("empty step")
}

// ErrNoItem is returned for steps naming an item that is not in the list.
var ErrNoItem = errors.New("no such item")

const suggestThreshold = 0.5

func find(todos todo.Todos, text string) (todo.Item, error) {
	var (
		best  string
		score float64
	)
	for _, item := range todos.Items {
		if item.Text == text {
			return item, nil
		}
		if s := strutil.Similarity(text, item.Text, metrics.NewLevenshtein()); s > score {
			best, score = item.Text, s
		}
	}
	if score >= suggestThreshold {
		return todo.Item{}, fmt.Errorf("%w %q (did you mean %q?)", ErrNoItem, text, best)
	}
	return todo.Item{}, fmt.Errorf("%w %q", ErrNoItem, text)
}
