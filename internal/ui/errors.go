package ui

import "fmt"

// ConfigurationError indicates a component was described with an illegal
// combination of options. It is raised synchronously at construction time and
// signals a defect in the calling page code, not a runtime fault.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// errConfiguration creates a ConfigurationError with a formatted message.
func errConfiguration(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}
