//go:generate go run go.uber.org/mock/mockgen -source=sink.go -destination=../mocks/mock_sink.go -package=mocks
package host

// Sink receives a freshly rendered view after every transition and replaces
// whatever it displayed before.
type Sink[V any] interface {
	Render(view V)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc[V any] func(view V)

func (f SinkFunc[V]) Render(view V) {
	f(view)
}
