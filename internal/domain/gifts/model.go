package gifts

import "time"

const DefaultCurrency = "VND"

const (
	MethodCash         = "cash"
	MethodBankTransfer = "bank_transfer"
	MethodItem         = "item"
)

type Entry struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	GuestName  string    `gorm:"not null" validate:"required,max=100"`
	Amount     Amount    `gorm:"column:amount_minor;not null" validate:"gte=0"`
	Currency   string    `gorm:"size:3;not null" validate:"required,len=3,alpha"`
	Method     string    `gorm:"not null" validate:"required,oneof=cash bank_transfer item"`
	Side       string    `gorm:"not null" validate:"omitempty,oneof=bride groom"`
	Note       string    `gorm:"not null" validate:"max=1000"`
	ReceivedAt time.Time `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Entry) TableName() string { return "gift_entries" }

type ListFilter struct {
	Side   string
	Method string
}

type CreateEntryInput struct {
	GuestName string
	Amount    Amount
	// Currency defaults to DefaultCurrency.
	Currency string
	Method   string
	Side     string
	Note     string
	// ReceivedAt defaults to now.
	ReceivedAt *time.Time
}

type UpdateEntryInput struct {
	ID         string
	GuestName  *string
	Amount     *Amount
	Currency   *string
	Method     *string
	Side       *string
	Note       *string
	ReceivedAt *time.Time
}

// SummaryRow is one (currency, side) group as aggregated by storage.
type SummaryRow struct {
	Currency string
	Side     string
	Total    Amount
	Count    int64
}

type CurrencyTotal struct {
	Currency string
	Total    Amount
	Count    int64
}

type SideTotal struct {
	Side     string
	Currency string
	Total    Amount
	Count    int64
}

type Summary struct {
	Count      int64
	ByCurrency []CurrencyTotal
	BySide     []SideTotal
}
