package metrics

import (
	"github.com/cockroachdb/errors"
)

// Sentinel kinds for metrics errors.
var (
	ErrWriteTextfile = errors.New("metrics textfile write failed")
)
