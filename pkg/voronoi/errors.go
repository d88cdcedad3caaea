package voronoi

import (
	"github.com/0x0FACED/go-voronoi/pkg/subdivision"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput - входные данные, для которых диаграмма не строится.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIndexOutOfRange совпадает с subdivision.ErrIndexOutOfRange.
	ErrIndexOutOfRange = subdivision.ErrIndexOutOfRange
)
