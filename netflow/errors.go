package netflow

import (
	"fmt"

	"github.com/arborio/arborio/xerrors"
)

var (
	// ErrInvalidCapacity indicates a negative arc capacity.
	ErrInvalidCapacity = fmt.Errorf("netflow: %w: negative capacity", xerrors.ErrInvalidCapacity)

	// ErrNegativeCycle indicates a negative-cost cycle found by the
	// Bellman-Ford pass of MinCostMaxFlow.
	ErrNegativeCycle = fmt.Errorf("netflow: %w", xerrors.ErrNegativeCycle)

	// ErrInfeasibleProblem indicates a min-cost flow target that no
	// augmenting path can satisfy.
	ErrInfeasibleProblem = fmt.Errorf("netflow: %w", xerrors.ErrInfeasibleProblem)

	// ErrAmbiguousTerminals indicates a connectivity query with a source
	// and sink that coincide or are adjacent in a way that makes k
	// undefined.
	ErrAmbiguousTerminals = fmt.Errorf("netflow: %w", xerrors.ErrAmbiguousTerminals)
)
