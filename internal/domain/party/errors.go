package party

import "errors"

var ErrMemberNotFound = errors.New("wedding party member not found")
