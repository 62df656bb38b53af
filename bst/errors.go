package bst

import (
	"fmt"

	"github.com/arborio/arborio/xerrors"
)

// ErrOutOfRange is returned by Select when the requested position is not
// in [0, size).
var ErrOutOfRange = fmt.Errorf("bst: %w", xerrors.ErrOutOfRange)

// ErrDuplicateKey is the package-scoped duplicate-key sentinel. InsertLeaf
// does not return it: it reports a rejected duplicate through its isNew
// result instead.
var ErrDuplicateKey = fmt.Errorf("bst: %w", xerrors.ErrDuplicateKey)
