package ordtree

import (
	"fmt"

	"github.com/arborio/arborio/xerrors"
)

// ErrOutOfRange is returned by At for a position outside [0, Len()).
var ErrOutOfRange = fmt.Errorf("ordtree: %w", xerrors.ErrOutOfRange)
