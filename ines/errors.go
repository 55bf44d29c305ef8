package ines

import (
	"errors"
	"fmt"
)

// ErrTruncated is matched by every *TruncatedError.
var ErrTruncated = errors.New("ines: truncated header")

// TruncatedError is returned when fewer than HeaderSize bytes are available.
type TruncatedError struct {
	Needed int
	Got    int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("ines: truncated header: need %d bytes, got %d", e.Needed, e.Got)
}

func (e *TruncatedError) Unwrap() error {
	return ErrTruncated
}
