package search

import (
	"context"
	"errors"
)

// ErrExhausted is returned by Next once a stream has no more elements.
var ErrExhausted = errors.New("search: stream exhausted")

// Stream is a pull-based, single-consumer sequence. After Next returns an
// error (including ErrExhausted) every later call returns the same error.
type Stream[T any] struct {
	pull func(ctx context.Context) (T, error)
	err  error
}

// NewStream wraps pull. pull signals the end with ErrExhausted.
func NewStream[T any](pull func(ctx context.Context) (T, error)) *Stream[T] {
	return &Stream[T]{pull: pull}
}

// Next returns the next element.
func (s *Stream[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if s.err != nil {
		return zero, s.err
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	v, err := s.pull(ctx)
	if err != nil {
		s.err = err

		return zero, err
	}

	return v, nil
}

// Take returns up to n elements; a short result means the stream is exhausted.
func (s *Stream[T]) Take(ctx context.Context, n int) ([]T, error) {
	out := make([]T, 0, n)
	for len(out) < n {
		v, err := s.Next(ctx)
		if errors.Is(err, ErrExhausted) {
			break
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}

	return out, nil
}

// Filter returns a stream of the elements of s for which keep is true.
func Filter[T any](s *Stream[T], keep func(T) (bool, error)) *Stream[T] {
	return NewStream(func(ctx context.Context) (T, error) {
		for {
			v, err := s.Next(ctx)
			if err != nil {
				return v, err
			}
			ok, err := keep(v)
			if err != nil {
				return v, err
			}
			if ok {
				return v, nil
			}
			if err = ctx.Err(); err != nil {
				return v, err
			}
		}
	})
}

// Map returns a stream applying f to each element of s.
func Map[T, U any](s *Stream[T], f func(T) (U, error)) *Stream[U] {
	return NewStream(func(ctx context.Context) (U, error) {
		v, err := s.Next(ctx)
		if err != nil {
			var zero U

			return zero, err
		}

		return f(v)
	})
}
