package schedule

import "errors"

var ErrEventNotFound = errors.New("schedule event not found")
