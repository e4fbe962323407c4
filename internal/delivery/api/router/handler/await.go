package handler

import (
	"context"

	"lunchradar/internal/usecase"

	"github.com/pkg/errors"
)

// await blocks until ch delivers or the request is gone
func await[T any](ctx context.Context, ch <-chan usecase.Result[T]) (T, error) {
	select {
	case result := <-ch:
		return result.Value, result.Err
	case <-ctx.Done():
		var zero T

		return zero, errors.Wrap(ctx.Err(), "request ended before the result was ready")
	}
}
