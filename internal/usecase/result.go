package usecase

// Result carries either a value or the error that prevented producing it
type Result[T any] struct {
	Value T
	Err   error
}

// deliver sends a single result on a fresh buffered channel and closes it
func deliver[T any](value T, err error) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	ch <- Result[T]{Value: value, Err: err}
	close(ch)

	return ch
}

// Resolved returns a closed channel holding value
func Resolved[T any](value T) <-chan Result[T] {
	return deliver(value, nil)
}

// Failed returns a closed channel holding err
func Failed[T any](err error) <-chan Result[T] {
	var zero T

	return deliver(zero, err)
}
