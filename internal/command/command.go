// Package command describes message deliveries that happen after an update
// has returned. A Cmd does nothing until it is run.
package command

// Cmd delivers zero or more values to the callback it is run with. A nil Cmd
// delivers nothing.
type Cmd[E any] func(deliver func(E))

func None[E any]() Cmd[E] {
	return nil
}

// Of delivers msgs in order.
func Of[E any](msgs ...E) Cmd[E] {
	if len(msgs) == 0 {
		return nil
	}
	return func(deliver func(E)) {
		for _, msg := range msgs {
			deliver(msg)
		}
	}
}

// Perform calls fn when the command runs and delivers its result. Whatever fn
// does, including failing, is up to the caller.
func Perform[E any](fn func() E) Cmd[E] {
	return func(deliver func(E)) {
		deliver(fn())
	}
}

func Map[E, R any](cmd Cmd[E], f func(E) R) Cmd[R] {
	if cmd == nil {
		return nil
	}
	return func(deliver func(R)) {
		cmd(func(e E) {
			deliver(f(e))
		})
	}
}

// Batch runs cmds in order against the same callback.
func Batch[E any](cmds ...Cmd[E]) Cmd[E] {
	var live []Cmd[E]
	for _, cmd := range cmds {
		if cmd != nil {
			live = append(live, cmd)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return func(deliver func(E)) {
		for _, cmd := range live {
			cmd(deliver)
		}
	}
}

func And[E any](a, b Cmd[E]) Cmd[E] {
	return Batch(a, b)
}

// Run executes cmd synchronously, calling deliver once per value in order.
func Run[E any](cmd Cmd[E], deliver func(E)) {
	if cmd == nil {
		return
	}
	cmd(deliver)
}

func Collect[E any](cmd Cmd[E]) []E {
	var out []E
	Run(cmd, func(e E) {
		out = append(out, e)
	})
	return out
}
