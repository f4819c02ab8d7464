package pipeline

import (
	"errors"
	"fmt"
)

// ExtractionError reports that the document's mandatory identifier could
// not be extracted after exhausting every strategy. It is a user-facing,
// non-fatal outcome: the document is simply not usable as the requested
// card type. All other missing fields stay null in the record and are not
// errors.
type ExtractionError struct {
	Field   string
	Message string
}

func (e *ExtractionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("mandatory field %q missing", e.Field)
}

// AsExtractionError unwraps err into an *ExtractionError when it is one.
func AsExtractionError(err error) (*ExtractionError, bool) {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}
