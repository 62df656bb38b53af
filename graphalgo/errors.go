package graphalgo

import (
	"fmt"

	"github.com/arborio/arborio/xerrors"
)

var (
	// ErrNotConnected indicates a spanning-tree request over a graph where
	// not every node is reachable from the chosen root.
	ErrNotConnected = fmt.Errorf("graphalgo: %w", xerrors.ErrNotConnected)

	// ErrCycleDetected indicates a topological sort over a graph that is
	// not a DAG.
	ErrCycleDetected = fmt.Errorf("graphalgo: %w", xerrors.ErrCycleDetected)

	// ErrNilSource indicates a traversal was asked to start from a nil
	// node.
	ErrNilSource = fmt.Errorf("graphalgo: %w: nil source node", xerrors.ErrInvalidInput)
)
