package scene

import (
	"bytes"
	"testing"

	"github.com/getseabird/todoelm/internal/combinator"
	"github.com/stretchr/testify/require"
)

func TestText_Size(t *testing.T) {
	w, h := Text("milk").Size()
	require.Equal(t, 4, w)
	require.Equal(t, 1, h)

	w, h = Text("").Size()
	require.Equal(t, 0, w)
	require.Equal(t, 1, h)
}

func TestGroup_SizeIgnoresOwnOffset(t *testing.T) {
	g := Group(Text("ab"), Text("cde").Offset(1, 2)).Offset(10, 10)
	w, h := g.Size()
	require.Equal(t, 4, w)
	require.Equal(t, 3, h)
}

func TestLayout_StackVertical(t *testing.T) {
	req := require.New(t)
	top := Column(Text("one"), Text("two"))
	bottom := Text("three")

	out := Layout{}.Stack(combinator.Vertical, top, bottom)

	req.Equal("one\ntwo\nthree\n", out.String())
	_, h := out.Size()
	req.Equal(3, h)
}

func TestLayout_StackHorizontal(t *testing.T) {
	out := Layout{}.Stack(combinator.Horizontal, Text("[x] "), Text("milk"))
	require.Equal(t, "[x] milk\n", out.String())
}

func TestLayout_DoesNotAlterChildren(t *testing.T) {
	top := Text("a")
	bottom := Text("b")
	_ = Layout{}.Stack(combinator.Vertical, top, bottom)
	require.Equal(t, "b\n", bottom.String())
}

func TestColumn_Associative(t *testing.T) {
	a, b, c := Text("a"), Column(Text("b1"), Text("b2")), Text("c")
	l := Layout{}
	left := l.Stack(combinator.Vertical, l.Stack(combinator.Vertical, a, b), c)
	right := l.Stack(combinator.Vertical, a, l.Stack(combinator.Vertical, b, c))
	require.Equal(t, left.String(), right.String())
	require.Equal(t, "a\nb1\nb2\nc\n", left.String())
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Column(Text("x"), Group(), Text("y"))))
	require.Equal(t, "x\ny\n", buf.String())
}

func TestString_EmptyRowsAndClipping(t *testing.T) {
	n := Group(Text("top"), Text("low").Offset(0, 2), Text("gone").Offset(0, -1))
	require.Equal(t, "top\n\nlow\n", n.String())
}
