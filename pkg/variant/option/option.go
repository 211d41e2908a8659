package option

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/variant/pkg/variant"
)

// ErrNoneUnwrap is the panic value of Unwrap on an empty Option.
var ErrNoneUnwrap = errors.New("option: unwrap of empty option")

// Option holds either a value T (Some) or nothing (None). The zero value
// behaves as None.
type Option[T any] struct {
	v variant.Of2[T, variant.Unit]
}

func Some[T any](value T) Option[T] {
	return Option[T]{v: variant.First[T, variant.Unit](value)}
}

func None[T any]() Option[T] {
	return Option[T]{v: variant.Second[T, variant.Unit](variant.Unit{})}
}

// OfPtr wraps the pointee of a non-nil pointer, otherwise None.
func OfPtr[T any](p *T) Option[T] {
	if variant.IsNil(p) {
		return None[T]()
	}
	return Some(*p)
}

// Match runs exactly one of onSome/onNone, selected by the discriminant.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	return variant.Match2(o.v, onSome,
		func(variant.Unit) R { return onNone() })
}

func (o Option[T]) IsSome() bool {
	return o.v.Tag() == variant.TagFirst
}

func (o Option[T]) IsNone() bool {
	return !o.IsSome()
}

// Unwrap returns the held value. Calling it on None is a precondition
// violation: it panics with ErrNoneUnwrap. Check IsSome or use UnwrapOr on
// any path where absence is possible.
func (o Option[T]) Unwrap() T {
	if o.IsSome() {
		return o.v.First()
	}
	panic(ErrNoneUnwrap)
}

func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.IsSome() {
		return o.v.First()
	}
	return defaultValue
}

// Get returns the held value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.v.First(), o.IsSome()
}

// Map applies f to the held value and wraps the output in a new Some.
// f is never invoked on None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.IsSome() {
		return Some(f(o.v.First()))
	}
	return None[U]()
}

// FlatMap applies f to the held value and returns the Option f produced,
// without double wrapping. f is never invoked on None.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.IsSome() {
		return f(o.v.First())
	}
	return None[U]()
}

func (o Option[T]) Tag() variant.Tag {
	return o.v.Tag()
}

func (o Option[T]) Id() uuid.UUID {
	return o.v.Id()
}

func (o Option[T]) CreatedAt() time.Time {
	return o.v.CreatedAt()
}
