package common

import "errors"

// Match these with errors.Is.
var (
	// ErrorEmptyInput is returned by interactive prompts when the user
	// submits a blank value for a required field.
	ErrorEmptyInput = errors.New("empty input")
)
