package shortestpath

import (
	"fmt"

	"github.com/arborio/arborio/xerrors"
)

var (
	// ErrNegativeWeight indicates Dijkstra was asked to run over a graph
	// containing a negative arc weight.
	ErrNegativeWeight = fmt.Errorf("shortestpath: %w: negative arc weight", xerrors.ErrInvalidInput)

	// ErrNegativeCycle indicates BellmanFord, SPFA or FloydWarshall found a
	// cycle whose total weight is negative, so no shortest path exists.
	ErrNegativeCycle = fmt.Errorf("shortestpath: %w", xerrors.ErrNegativeCycle)

	// ErrNilSource indicates a request to start from a nil node.
	ErrNilSource = fmt.Errorf("shortestpath: %w: nil source node", xerrors.ErrInvalidInput)
)
