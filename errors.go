package txt2png

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by New for an option value out of range.
var ErrInvalidConfig = errors.New("txt2png: invalid configuration")

// PageRangeError is returned when a page outside the text is requested.
type PageRangeError struct {
	Page  int
	Pages int
}

func (e *PageRangeError) Error() string {
	return fmt.Sprintf("txt2png: page %d out of range [1, %d]", e.Page, e.Pages)
}
