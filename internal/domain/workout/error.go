package workout

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("workout not found")

// ValidationError carries the ordered list of rule failures for one
// candidate record.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}
