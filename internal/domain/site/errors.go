package site

import "errors"

// ErrNotConfigured is returned when a singleton row has never been saved.
var ErrNotConfigured = errors.New("not configured")
