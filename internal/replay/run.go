package replay

import (
	"fmt"
	"io"
	"strconv"

	"github.com/getseabird/todoelm/internal/host"
	"github.com/getseabird/todoelm/internal/scene"
	"github.com/getseabird/todoelm/internal/todo"
	"github.com/go-logr/logr"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

type Options struct {
	// Table prints the final items as a table after the frame.
	Table bool
	// Color highlights completed items in the table.
	Color bool
	// Frames prints every frame instead of only the last one.
	Frames bool
	Log    logr.Logger
	Trace  bool
}

// Run replays steps against a fresh todo model and writes the final frame.
func Run(w io.Writer, steps []Step, opts Options) (todo.Todos, error) {
	var (
		frame  scene.Node
		frames int
		werr   error
	)
	sink := host.SinkFunc[scene.Node](func(view scene.Node) {
		frame = view
		frames++
		if opts.Frames && werr == nil {
			_, werr = fmt.Fprintf(w, "--- frame %d\n%s", frames, view)
		}
	})

	log := opts.Log
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	loop := host.New[todo.Msg, todo.Todos, scene.Node](todo.New(todo.SceneView), sink,
		host.WithLogger(log.WithName("replay")),
		host.WithTrace(opts.Trace),
	)
	loop.Start()

	for i, step := range steps {
		msg, err := step.Msg(loop.Model())
		if err != nil {
			return loop.Model(), fmt.Errorf("step %d: %w", i+1, err)
		}
		loop.Dispatch(msg)
	}
	if werr != nil {
		return loop.Model(), werr
	}

	if !opts.Frames {
		if err := scene.Render(w, frame); err != nil {
			return loop.Model(), err
		}
	}
	if opts.Table {
		Table(w, loop.Model(), opts.Color)
	}
	return loop.Model(), nil
}

func RunFile(w io.Writer, path string, opts Options) error {
	steps, err := Load(path)
	if err != nil {
		return err
	}
	_, err = Run(w, steps, opts)
	return err
}

// Table writes the items of todos, in order, as a table.
func Table(w io.Writer, todos todo.Todos, colored bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Item", "Done"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	done := color.New(color.FgGreen)
	for i, item := range todos.Items {
		text := item.Text
		if colored && item.Completed {
			text = done.Render(text)
		}
		table.Append([]string{strconv.Itoa(i + 1), text, strconv.FormatBool(item.Completed)})
	}
	table.Render()
}
