package variant

import (
	"time"

	"github.com/google/uuid"
)

type Identified interface {
	// Id returns the instance identity assigned at construction
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Tagged defines an interface for values carrying an immutable case discriminant
type Tagged interface {
	Identified
	// Tag returns the discriminant set at construction
	Tag() Tag
	// IsEmpty returns true for a zero value built without a constructor
	IsEmpty() bool
}

var _ Tagged = Of2[int, string]{}
var _ Tagged = Of3[int, string, bool]{}
