package reactive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRetainer_ExemptionsSortedByName(t *testing.T) {
	scroll := Exemption{Name: "todo-scroll", Reason: "scroll offset"}
	caret := Exemption{Name: "entry-caret", Reason: "cursor position"}

	r := NewRetainer(scroll, caret)

	require.Equal(t, []Exemption{caret, scroll}, r.Exemptions())
	require.Empty(t, NewRetainer().Exemptions())
}

func TestRetainer_UndeclaredNamePanics(t *testing.T) {
	r := NewRetainer(Exemption{Name: "todo-scroll"})

	require.PanicsWithValue(t, `reactive: "detail-scroll" is not a declared view-local exemption`, func() {
		r.scroll("detail-scroll")
	})
}

func TestRetainer_NilPanics(t *testing.T) {
	var r *Retainer

	require.Panics(t, func() {
		r.scroll("todo-scroll")
	})
}

func TestEnvFrom_OutsideRenderPanics(t *testing.T) {
	require.Panics(t, func() {
		send(t.Context(), "msg")
	})
}
