package hashtable

import (
	"fmt"

	"github.com/arborio/arborio/xerrors"
)

// ErrInvalidCapacity is returned by constructors given a non-positive
// initial capacity.
var ErrInvalidCapacity = fmt.Errorf("hashtable: %w", xerrors.ErrInvalidCapacity)
