package pqueue

import (
	"fmt"

	"github.com/arborio/arborio/xerrors"
)

// ErrInvalidHandle is returned by DecreaseKey for a nil handle or one that
// is not a node of the queue's own kind. A handle taken from another queue
// of the same kind, or one whose element was already popped, is not
// detected.
var ErrInvalidHandle = fmt.Errorf("pqueue: %w", xerrors.ErrInvalidInput)

// ErrIncreasedKey is returned by DecreaseKey when newVal would increase
// the element's key.
var ErrIncreasedKey = fmt.Errorf("pqueue: %w", xerrors.ErrInvalidInput)
