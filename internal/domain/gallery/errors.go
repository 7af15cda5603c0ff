package gallery

import "errors"

var (
	ErrPhotoNotFound      = errors.New("photo not found")
	ErrGuestPhotoNotFound = errors.New("guest photo not found")
)
