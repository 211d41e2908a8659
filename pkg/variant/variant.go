package variant

import (
	"time"

	"github.com/google/uuid"
)

// Tag is the case discriminant of a variant value. It is assigned by the
// case constructor and never changes afterwards.
type Tag uint8

const (
	// TagEmpty is the discriminant of a zero value built without a constructor.
	TagEmpty Tag = iota
	TagFirst
	TagSecond
	TagThird
)

func (t Tag) String() string {
	switch t {
	case TagFirst:
		return "first"
	case TagSecond:
		return "second"
	case TagThird:
		return "third"
	default:
		return "empty"
	}
}

// Unit is the payload of a case that carries no fields.
type Unit struct{}

// Of2 is a closed two-case variant: exactly one of the two payload slots is
// selected for the whole lifetime of the value.
type Of2[A, B any] struct {
	id        uuid.UUID
	createdAt time.Time
	tag       Tag
	first     A
	second    B
}

func First[A, B any](a A) Of2[A, B] {
	return Of2[A, B]{
		tag:       TagFirst,
		first:     a,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Second[A, B any](b B) Of2[A, B] {
	return Of2[A, B]{
		tag:       TagSecond,
		second:    b,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (v Of2[A, B]) Tag() Tag {
	return v.tag
}

// First returns the first-case payload, or the zero A when another case is
// selected. Match2 is the safe consumption path.
func (v Of2[A, B]) First() A {
	return v.first
}

// Second returns the second-case payload, or the zero B when another case is
// selected.
func (v Of2[A, B]) Second() B {
	return v.second
}

func (v Of2[A, B]) IsEmpty() bool {
	return v.tag == TagEmpty
}

func (v Of2[A, B]) Id() uuid.UUID {
	return v.id
}

func (v Of2[A, B]) CreatedAt() time.Time {
	return v.createdAt
}

// Of3 is a closed three-case variant for user-defined unions.
type Of3[A, B, C any] struct {
	id        uuid.UUID
	createdAt time.Time
	tag       Tag
	first     A
	second    B
	third     C
}

func First3[A, B, C any](a A) Of3[A, B, C] {
	return Of3[A, B, C]{
		tag:       TagFirst,
		first:     a,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Second3[A, B, C any](b B) Of3[A, B, C] {
	return Of3[A, B, C]{
		tag:       TagSecond,
		second:    b,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Third3[A, B, C any](c C) Of3[A, B, C] {
	return Of3[A, B, C]{
		tag:       TagThird,
		third:     c,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (v Of3[A, B, C]) Tag() Tag {
	return v.tag
}

func (v Of3[A, B, C]) First() A {
	return v.first
}

func (v Of3[A, B, C]) Second() B {
	return v.second
}

func (v Of3[A, B, C]) Third() C {
	return v.third
}

func (v Of3[A, B, C]) IsEmpty() bool {
	return v.tag == TagEmpty
}

func (v Of3[A, B, C]) Id() uuid.UUID {
	return v.id
}

func (v Of3[A, B, C]) CreatedAt() time.Time {
	return v.createdAt
}
