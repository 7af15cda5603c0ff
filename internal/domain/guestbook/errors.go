package guestbook

import "errors"

var ErrMessageNotFound = errors.New("guest message not found")
