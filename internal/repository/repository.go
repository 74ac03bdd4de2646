// Package repository implements the scoped query helpers: every list query is
// owner-filtered first, then predicate-filtered, then ordered, then capped.
// The row caps are a deliberate backpressure policy — callers that need more
// must page by date range.
package repository

import (
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"
	"github.com/google/uuid"
)

// Row caps per collection. The cierres list endpoint pages at 200; the annual
// resumen needs every cierre of the year and carries its own wider cap.
const (
	MaxCaptaciones    = 500
	MaxCierres        = 200
	MaxCierresResumen = 500
	MaxTrackeo        = 500
	MaxObjetivos      = 10
	MaxContactos      = 500
)

// guardScope rejects an empty owner set before it can turn into an impossible
// IN () filter. The resolver already short-circuits this case; the repos keep
// their own guard so no future call site can bypass it.
func guardScope(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return scope.ErrEmptyScope
	}
	return nil
}
