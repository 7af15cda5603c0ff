package music

import "errors"

var ErrTrackNotFound = errors.New("music track not found")
