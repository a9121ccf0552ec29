package content

import "fmt"

// InvalidContentError reports a content document that failed validation.
type InvalidContentError struct {
	Field   string
	Message string
}

func (e *InvalidContentError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// errInvalid creates an InvalidContentError for the given field.
func errInvalid(field, format string, args ...interface{}) *InvalidContentError {
	return &InvalidContentError{Field: field, Message: fmt.Sprintf(format, args...)}
}
