package ringcache

import (
	"fmt"

	"github.com/arborio/arborio/xerrors"
)

var (
	// ErrInvalidCapacity is returned by Create given a non-positive capacity.
	ErrInvalidCapacity = fmt.Errorf("ringcache: %w", xerrors.ErrInvalidCapacity)

	// ErrAlreadyInitialized reports an attempt to initialize a Cache a
	// second time. No function in this package returns it: Open always
	// builds a new Cache.
	ErrAlreadyInitialized = fmt.Errorf("ringcache: %w: already initialized", xerrors.ErrDomain)

	// ErrNotInitialized reports use of a Cache that was never attached to
	// storage. No function in this package returns it; Cache methods do
	// not check for the unusable zero value.
	ErrNotInitialized = fmt.Errorf("ringcache: %w: not initialized", xerrors.ErrDomain)

	// ErrOutOfRange is returned by Oldest/ReadFrom/Read given an index or
	// count outside the current contents.
	ErrOutOfRange = fmt.Errorf("ringcache: %w", xerrors.ErrOutOfRange)

	// ErrUnderflow is returned by ReadFirst/ReadLast on an empty cache. Get
	// reports too few records by returning false instead.
	ErrUnderflow = fmt.Errorf("ringcache: %w", xerrors.ErrUnderflow)

	// ErrOverflow is returned by an iterator advanced past its last record.
	ErrOverflow = fmt.Errorf("ringcache: %w", xerrors.ErrOverflow)

	// ErrBadMagic is returned by Open given a parameters file that was not
	// produced by Create (or Flush) of this package.
	ErrBadMagic = fmt.Errorf("ringcache: %w: not a ringcache parameters file", xerrors.ErrInvalidInput)
)
