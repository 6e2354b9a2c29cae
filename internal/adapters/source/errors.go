package source

import (
	"github.com/cockroachdb/errors"
)

// Sentinel kinds for table loading errors.
var (
	ErrOpenTable   = errors.New("open table")
	ErrDecodeTable = errors.New("decode table")
)
