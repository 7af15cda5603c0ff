package popup

import "context"

// Repository implementations return ErrPopupTypeTaken when the unique type
// index rejects a write.
type Repository interface {
	ListPopups(ctx context.Context, filter ListFilter) ([]Popup, error)
	GetPopupByID(ctx context.Context, id string) (*Popup, error)
	GetPopupByType(ctx context.Context, popupType string) (*Popup, error)
	CreatePopup(ctx context.Context, popup *Popup) error
	UpdatePopup(ctx context.Context, popup *Popup) error
	DeletePopup(ctx context.Context, id string) (bool, error)
}
