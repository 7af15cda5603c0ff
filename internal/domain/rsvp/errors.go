package rsvp

import "errors"

var ErrRsvpNotFound = errors.New("rsvp not found")
