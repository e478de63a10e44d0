package syms

import (
	"errors"
	"fmt"
)

var ErrMalformedRecord = errors.New("malformed record")

// RecordError reports an input line that is not a "<name> - <hex address>"
// pair. It matches ErrMalformedRecord with errors.Is.
type RecordError struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s:%d: %v %q: %v", e.Source, e.Line, ErrMalformedRecord, e.Text, e.Err)
}

func (e *RecordError) Unwrap() []error { return []error{ErrMalformedRecord, e.Err} }
