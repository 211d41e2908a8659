package result

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/variant/pkg/variant"
)

// Result holds either a success value T or an error value E, never both.
type Result[T, E any] struct {
	v variant.Of2[T, E]
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{v: variant.First[T, E](value)}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{v: variant.Second[T, E](e)}
}

// Match is the only consumption path: exactly one of onOk/onErr runs, with
// the payload of the selected case.
func Match[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	return variant.Match2(r.v, onOk, onErr)
}

func (r Result[T, E]) Tag() variant.Tag {
	return r.v.Tag()
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.v.Id()
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.v.CreatedAt()
}
