// Package xerrors collects the sentinel error taxonomy shared by every
// component of the module. Individual packages do not return these
// sentinels directly; they wrap them with their own prefix, e.g.
//
//	fmt.Errorf("rbtree: %w: key already present", xerrors.ErrDuplicateKey)
//
// so callers can both read a package-scoped message and match the shared
// category with errors.Is.
package xerrors

import "errors"

var (
	// ErrDomain signals an invalid argument given the container's current
	// state, e.g. removing a key that is not present under strict mode.
	ErrDomain = errors.New("domain error")

	// ErrOutOfRange signals a positional index outside [0, size).
	ErrOutOfRange = errors.New("index out of range")

	// ErrDuplicateKey signals insertion of an equal key under strict
	// uniqueness.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidCapacity signals a negative or otherwise malformed capacity.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrInvalidInput signals a structural precondition failure that is not
	// capacity-specific (e.g. non-comparable keys, nil callback).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConnected signals a spanning-tree operation over a disconnected
	// graph.
	ErrNotConnected = errors.New("graph is not connected")

	// ErrCycleDetected signals a topological sort over a non-DAG.
	ErrCycleDetected = errors.New("cycle detected")

	// ErrNegativeCycle signals a shortest-path computation over weights
	// that admit a negative cycle.
	ErrNegativeCycle = errors.New("negative cycle detected")

	// ErrInfeasibleProblem signals a flow problem with no s-t path.
	ErrInfeasibleProblem = errors.New("infeasible problem")

	// ErrAmbiguousTerminals signals a classical max-flow request against a
	// network without a unique source/sink.
	ErrAmbiguousTerminals = errors.New("ambiguous source/sink terminals")

	// ErrUnderflow signals a pop from an empty fixed-capacity structure.
	ErrUnderflow = errors.New("underflow")

	// ErrOverflow signals a push beyond a fixed capacity.
	ErrOverflow = errors.New("overflow")

	// ErrAllocation signals a propagated allocator failure.
	ErrAllocation = errors.New("allocation error")
)
