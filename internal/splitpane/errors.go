package splitpane

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize matches any *InvalidSizeError.
	ErrInvalidSize = errors.New("invalid split size")
	// ErrInvalidPane matches any *InvalidPaneError.
	ErrInvalidPane = errors.New("invalid pane")
)

// InvalidSizeError reports a resize that would leave the split size outside
// its legal range. Size is the rejected value.
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidSize, e.Size)
}

func (e *InvalidSizeError) Is(target error) bool { return target == ErrInvalidSize }

// InvalidPaneError reports a pane index other than 0 or 1.
type InvalidPaneError struct {
	Pane int
}

func (e *InvalidPaneError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidPane, e.Pane)
}

func (e *InvalidPaneError) Is(target error) bool { return target == ErrInvalidPane }
