package gifts

import "errors"

var ErrEntryNotFound = errors.New("gift entry not found")
