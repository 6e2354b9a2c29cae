package sink

import (
	"github.com/cockroachdb/errors"
)

// Sentinel kinds for payload writing errors.
var (
	ErrEncodePayload = errors.New("encode payload")
	ErrWritePayload  = errors.New("write payload")
)
