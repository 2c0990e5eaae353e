package minefield

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig   = errors.New("invalid board config")
	ErrMalformedLayout = errors.New("malformed layout")
	ErrOutOfBounds     = errors.New("point out of bounds")
	ErrUnknownAction   = errors.New("unknown action")
	ErrGameOver        = errors.New("game is over")
)

// LayoutError describes where a layout description went wrong. Line and Col
// are 1-based; Col is 0 when the whole line is at fault.
type LayoutError struct {
	Line, Col int
	message   string
}

// [LayoutError] implements [error]
func (e LayoutError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("%s: %s", ErrMalformedLayout, e.message)
	case e.Col == 0:
		return fmt.Sprintf("%s: line %d: %s", ErrMalformedLayout, e.Line, e.message)
	default:
		return fmt.Sprintf("%s: line %d, col %d: %s", ErrMalformedLayout, e.Line, e.Col, e.message)
	}
}

func (e LayoutError) Unwrap() error {
	return ErrMalformedLayout
}
