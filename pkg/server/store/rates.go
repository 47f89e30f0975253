package store

import (
	"errors"
	"time"

	"github.com/investlab/vollab/pkg/rates"
)

// ErrNoCurves is returned when a query matches no rate curves
var ErrNoCurves = errors.New("no rate curves found")

// RatesStore abstracts rate curve storage operations
type RatesStore interface {
	// SaveCurves persists a batch of par-yield curves.
	SaveCurves(curves []rates.Curve) error

	// FetchCurves retrieves curves dated in [start, end].
	// Returns ErrNoCurves when nothing matches.
	FetchCurves(start, end time.Time) ([]rates.Curve, error)
}
