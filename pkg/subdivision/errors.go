package subdivision

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIndexOutOfRange возвращается для несуществующих идентификаторов и для
	// сущностей чужого разбиения.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidLine - отрезок нулевой длины или с неконечными координатами.
	ErrInvalidLine = errors.New("invalid line")
)

// Invariant - имя нарушенного структурного инварианта.
type Invariant string

const (
	InvariantTwin      Invariant = "twin-symmetry"
	InvariantNext      Invariant = "next-prev-symmetry"
	InvariantFace      Invariant = "face-consistency"
	InvariantCycle     Invariant = "cycle-closure"
	InvariantOuterFace Invariant = "single-outer-face"
	InvariantReachable Invariant = "half-edge-reachability"
	InvariantVertex    Invariant = "vertex-edge-origin"
	InvariantFaceSite  Invariant = "face-site-correspondence"
)

// ValidationError описывает первое найденное нарушение инварианта.
type ValidationError struct {
	Invariant Invariant
	// Entity - "vertex", "half-edge", "face" или "site"
	Entity string
	ID     int
	Detail string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation failed: %s: %s %d", e.Invariant, e.Entity, e.ID)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func invalid(inv Invariant, entity string, id int, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Invariant: inv,
		Entity:    entity,
		ID:        id,
		Detail:    fmt.Sprintf(format, args...),
	}
}
