// Package scene is a display-independent render tree measured in character
// cells. It backs the headless replay output and the layout tests.
package scene

import (
	"io"
	"strings"

	"github.com/getseabird/todoelm/internal/combinator"
)

// Node is an immutable tree of text runs. Each node is positioned relative to
// its parent.
type Node struct {
	text     string
	leaf     bool
	x, y     int
	children []Node
}

// Text is a single line of text, one cell high.
func Text(s string) Node {
	return Node{text: s, leaf: true}
}

func Group(children ...Node) Node {
	return Node{children: append([]Node(nil), children...)}
}

// Offset returns n moved by dx, dy.
func (n Node) Offset(dx, dy int) Node {
	n.x += dx
	n.y += dy
	return n
}

// Size returns the extent of n measured from its own origin.
func (n Node) Size() (width, height int) {
	n.walk(-n.x, -n.y, func(text string, x, y int) {
		width = max(width, x+len([]rune(text)))
		height = max(height, y+1)
	})
	return width, height
}

func (n Node) walk(x, y int, fn func(text string, x, y int)) {
	x, y = x+n.x, y+n.y
	if n.leaf {
		fn(n.text, x, y)
		return
	}
	for _, child := range n.children {
		child.walk(x, y, fn)
	}
}

// Layout stacks nodes by measuring the first and offsetting the second.
type Layout struct{}

var _ combinator.Layout[Node] = Layout{}

func (Layout) Stack(axis combinator.Axis, first, second Node) Node {
	w, h := first.Size()
	if axis == combinator.Horizontal {
		return Group(first, second.Offset(w, 0))
	}
	return Group(first, second.Offset(0, h))
}

func Column(nodes ...Node) Node {
	return fold(combinator.Vertical, nodes)
}

func Row(nodes ...Node) Node {
	return fold(combinator.Horizontal, nodes)
}

func fold(axis combinator.Axis, nodes []Node) Node {
	if len(nodes) == 0 {
		return Group()
	}
	out := nodes[0]
	for _, n := range nodes[1:] {
		out = Layout{}.Stack(axis, out, n)
	}
	return out
}

// Render rasterizes n into lines of text. Later nodes overwrite earlier ones
// where they overlap; negative coordinates are clipped.
func Render(w io.Writer, n Node) error {
	_, err := io.WriteString(w, n.String())
	return err
}

func (n Node) String() string {
	var grid [][]rune
	n.walk(0, 0, func(text string, x, y int) {
		if y < 0 {
			return
		}
		for len(grid) <= y {
			grid = append(grid, nil)
		}
		for i, r := range []rune(text) {
			col := x + i
			if col < 0 {
				continue
			}
			for len(grid[y]) <= col {
				grid[y] = append(grid[y], ' ')
			}
			grid[y][col] = r
		}
	})

	var sb strings.Builder
	for _, line := range grid {
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
