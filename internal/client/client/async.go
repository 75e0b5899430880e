package client

import "context"

// Result carries the outcome of one asynchronously executed call.
type Result[T any] struct {
	Value T
	Err   error
}

// Go runs fn on its own goroutine. The returned channel receives exactly one
// Result and is then closed. There is no cancellation beyond ctx, which is
// handed to fn unchanged.
//
//	names := client.Go(ctx, c.ListSightingNames)
//	...
//	r := <-names
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := fn(ctx)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}
