package client

import "errors"

var (
	ErrUnavailable = errors.New("auth api unavailable")
)
