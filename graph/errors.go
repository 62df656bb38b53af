package graph

import (
	"fmt"

	"github.com/arborio/arborio/xerrors"
)

// Sentinel errors for graph operations. All wrap a shared category from
// xerrors so callers can match with errors.Is against either the
// package-scoped or the shared sentinel.
var (
	// ErrNilNode indicates a nil *Node was passed where a live node is
	// required.
	ErrNilNode = fmt.Errorf("graph: %w: nil node", xerrors.ErrInvalidInput)

	// ErrForeignNode indicates a node or arc that does not belong to the
	// receiving Graph.
	ErrForeignNode = fmt.Errorf("graph: %w: node does not belong to this graph", xerrors.ErrInvalidInput)

	// ErrNodeNotFound indicates an operation referenced a node no longer
	// present in the graph.
	ErrNodeNotFound = fmt.Errorf("graph: %w: node not found", xerrors.ErrDomain)

	// ErrArcNotFound indicates an operation referenced an arc no longer
	// present in the graph.
	ErrArcNotFound = fmt.Errorf("graph: %w: arc not found", xerrors.ErrDomain)

	// ErrNotIncident indicates ConnectedNode was asked about a node that is
	// not an endpoint of the given arc.
	ErrNotIncident = fmt.Errorf("graph: %w: node is not an endpoint of arc", xerrors.ErrDomain)
)
