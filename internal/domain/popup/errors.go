package popup

import "errors"

var (
	ErrPopupNotFound  = errors.New("popup not found")
	ErrPopupTypeTaken = errors.New("popup type already exists")
)
