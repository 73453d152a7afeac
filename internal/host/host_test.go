package host

import (
	"fmt"
	"strings"
	"testing"

	"github.com/getseabird/todoelm/internal/command"
	"github.com/getseabird/todoelm/internal/component"
	"github.com/getseabird/todoelm/internal/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type tally struct {
	Count int      `yaml:"count"`
	Log   []string `yaml:"log"`
}

type bump struct {
	by    int
	echo  int
	label string
}

func counter() component.Component[bump, tally, string] {
	c := component.New(
		func() tally { return tally{} },
		func(msg bump, m tally) tally {
			log := append(append([]string(nil), m.Log...), msg.label)
			return tally{Count: m.Count + msg.by, Log: log}
		},
		func(m tally) string { return fmt.Sprintf("%d %s", m.Count, strings.Join(m.Log, ",")) },
	)
	return component.WithCommands[bump, tally, string](c, func(msg bump, _ tally) command.Cmd[bump] {
		var cmds []command.Cmd[bump]
		for i := 0; i < msg.echo; i++ {
			cmds = append(cmds, command.Of(bump{by: 1, label: fmt.Sprintf("%s.%d", msg.label, i)}))
		}
		return command.Batch(cmds...)
	})
}

func TestLoop_StartRendersInitialModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink[string](ctrl)
	sink.EXPECT().Render("0 ").Times(1)

	loop := New[bump, tally, string](counter(), sink)
	loop.Start()
	loop.Start()
	require.Equal(t, tally{}, loop.Model())
}

func TestLoop_DispatchRendersEveryTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink[string](ctrl)
	gomock.InOrder(
		sink.EXPECT().Render("0 "),
		sink.EXPECT().Render("2 a"),
		sink.EXPECT().Render("5 a,b"),
	)

	loop := New[bump, tally, string](counter(), sink)
	loop.Dispatch(bump{by: 2, label: "a"})
	loop.Dispatch(bump{by: 3, label: "b"})

	require.Equal(t, 5, loop.Model().Count)
}

func TestLoop_CommandsAreDeliveredAfterTransitionInOrder(t *testing.T) {
	req := require.New(t)
	var frames []string
	loop := New[bump, tally, string](counter(), SinkFunc[string](func(v string) { frames = append(frames, v) }))

	loop.Dispatch(bump{by: 10, echo: 2, label: "x"})

	req.Equal([]string{"x", "x.0", "x.1"}, loop.Model().Log)
	req.Equal([]string{"0 ", "10 x", "11 x,x.0", "12 x,x.0,x.1"}, frames)
}

func TestLoop_ReentrantDispatchIsQueued(t *testing.T) {
	req := require.New(t)
	var loop *Loop[bump, tally, string]
	var frames []string
	loop = New[bump, tally, string](counter(), SinkFunc[string](func(v string) {
		frames = append(frames, v)
		if v == "1 first" {
			loop.Dispatch(bump{by: 1, label: "second"})
			req.Equal([]string{"first"}, loop.Model().Log)
		}
	}))

	loop.Dispatch(bump{by: 1, label: "first"})

	req.Equal([]string{"first", "second"}, loop.Model().Log)
	req.Equal([]string{"0 ", "1 first", "2 first,second"}, frames)
}

func TestLoop_PanicDropsQueuedMessages(t *testing.T) {
	req := require.New(t)
	var loop *Loop[bump, tally, string]
	loop = New[bump, tally, string](counter(), SinkFunc[string](func(v string) {
		if v == "1 a" {
			loop.Dispatch(bump{by: 1, label: "queued"})
			panic("render failed")
		}
	}))

	req.PanicsWithValue("render failed", func() {
		loop.Dispatch(bump{by: 1, label: "a"})
	})
	loop.Dispatch(bump{by: 1, label: "later"})

	req.Equal([]string{"a", "later"}, loop.Model().Log)
}

func TestLoop_UpdateDoesNotMutatePreviousModel(t *testing.T) {
	req := require.New(t)
	loop := New[bump, tally, string](counter(), SinkFunc[string](func(string) {}))
	loop.Dispatch(bump{by: 1, label: "a"})
	before := loop.Model()
	snapshot := append([]string(nil), before.Log...)

	loop.Dispatch(bump{by: 1, label: "b"})

	req.Equal(snapshot, before.Log)
	req.Equal(1, before.Count)
}

func TestLoop_PostUsesScheduler(t *testing.T) {
	req := require.New(t)
	var pending []func()
	loop := New[bump, tally, string](counter(), SinkFunc[string](func(string) {}), WithScheduler(func(fn func()) {
		pending = append(pending, fn)
	}))

	loop.Post(bump{by: 4, label: "later"})
	req.Zero(loop.Model().Count)
	req.Len(pending, 1)

	pending[0]()
	req.Equal(4, loop.Model().Count)
}

func TestModelDiff(t *testing.T) {
	req := require.New(t)

	diff, err := ModelDiff(tally{Count: 1}, tally{Count: 1})
	req.NoError(err)
	req.Empty(diff)

	diff, err = ModelDiff(tally{Count: 1}, tally{Count: 2, Log: []string{"a"}})
	req.NoError(err)
	req.Contains(diff, "-count: 1")
	req.Contains(diff, "+count: 2")
	req.Contains(diff, "+- a")
}
