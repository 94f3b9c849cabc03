package governance

import (
	"errors"
	"fmt"
)

// ErrNotFound is the class of errors for lookups that resolved to nothing.
var ErrNotFound = errors.New("not found")

var (
	ErrProposalNotFound = fmt.Errorf("proposal %w", ErrNotFound)
	ErrTallyNotFound    = fmt.Errorf("proposal result %w", ErrNotFound)
)
