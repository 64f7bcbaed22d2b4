package parse

import (
	"errors"
	"fmt"
)

// ErrFormatUnrecognized means no line in the transcript matched any known
// dialect. The parse aborts with zero records.
var ErrFormatUnrecognized = errors.New("no line matches a known chat export format")

// ErrEmptyTranscript means the input contained no classifiable lines.
var ErrEmptyTranscript = errors.New("transcript contains no classifiable lines")

// ErrLeadingContinuation means the transcript opens with a continuation
// line, i.e. text before any recognizable message header.
var ErrLeadingContinuation = errors.New("transcript opens with a continuation line")

// DateResolutionError reports a matched message header whose timestamp
// string could not be resolved against the detected dialect. Non-fatal:
// the record is kept with HasTime=false.
type DateResolutionError struct {
	Line int
	Raw  string
}

func (e *DateResolutionError) Error() string {
	return fmt.Sprintf("line %d: cannot resolve timestamp %q", e.Line, e.Raw)
}
