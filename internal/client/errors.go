package client

import "errors"

// ErrChecksumMismatch is returned when a downloaded asset payload does
// not hash to the checksum the caller expected.
var ErrChecksumMismatch = errors.New("asset checksum mismatch")
