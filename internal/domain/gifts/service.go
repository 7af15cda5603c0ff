package gifts

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"wedding-site-go/internal/validation"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Service) ListEntries(ctx context.Context, filter ListFilter) ([]Entry, error) {
	filter.Side = strings.ToLower(strings.TrimSpace(filter.Side))
	filter.Method = strings.ToLower(strings.TrimSpace(filter.Method))
	return s.repo.ListEntries(ctx, filter)
}

func (s *Service) GetEntry(ctx context.Context, id string) (*Entry, error) {
	return s.repo.GetEntryByID(ctx, id)
}

func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*Entry, error) {
	now := s.now()

	currency := normalizeCurrency(input.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	receivedAt := now
	if input.ReceivedAt != nil {
		receivedAt = input.ReceivedAt.UTC()
	}

	entry := Entry{
		ID:         uuid.NewString(),
		GuestName:  strings.TrimSpace(input.GuestName),
		Amount:     input.Amount,
		Currency:   currency,
		Method:     strings.ToLower(strings.TrimSpace(input.Method)),
		Side:       strings.ToLower(strings.TrimSpace(input.Side)),
		Note:       strings.TrimSpace(input.Note),
		ReceivedAt: receivedAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := validation.Struct(entry); err != nil {
		return nil, err
	}

	if err := s.repo.CreateEntry(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*Entry, error) {
	entry, err := s.repo.GetEntryByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.GuestName != nil {
		entry.GuestName = strings.TrimSpace(*input.GuestName)
	}
	if input.Amount != nil {
		entry.Amount = *input.Amount
	}
	if input.Currency != nil {
		entry.Currency = normalizeCurrency(*input.Currency)
	}
	if input.Method != nil {
		entry.Method = strings.ToLower(strings.TrimSpace(*input.Method))
	}
	if input.Side != nil {
		entry.Side = strings.ToLower(strings.TrimSpace(*input.Side))
	}
	if input.Note != nil {
		entry.Note = strings.TrimSpace(*input.Note)
	}
	if input.ReceivedAt != nil {
		entry.ReceivedAt = input.ReceivedAt.UTC()
	}

	if err := validation.Struct(entry); err != nil {
		return nil, err
	}

	entry.UpdatedAt = s.now()
	if err := s.repo.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteEntry(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEntryNotFound
	}
	return nil
}

// Summary totals the ledger per currency and per side. Amounts in different
// currencies are never added together.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	rows, err := s.repo.SummaryRows(ctx)
	if err != nil {
		return Summary{}, err
	}
	return BuildSummary(rows), nil
}

func BuildSummary(rows []SummaryRow) Summary {
	summary := Summary{ByCurrency: []CurrencyTotal{}, BySide: []SideTotal{}}
	byCurrency := map[string]*CurrencyTotal{}

	for _, row := range rows {
		summary.Count += row.Count

		total, ok := byCurrency[row.Currency]
		if !ok {
			total = &CurrencyTotal{Currency: row.Currency}
			byCurrency[row.Currency] = total
		}
		total.Total += row.Total
		total.Count += row.Count

		summary.BySide = append(summary.BySide, SideTotal{
			Side:     row.Side,
			Currency: row.Currency,
			Total:    row.Total,
			Count:    row.Count,
		})
	}

	for _, total := range byCurrency {
		summary.ByCurrency = append(summary.ByCurrency, *total)
	}
	sort.Slice(summary.ByCurrency, func(i, j int) bool {
		return summary.ByCurrency[i].Currency < summary.ByCurrency[j].Currency
	})
	sort.Slice(summary.BySide, func(i, j int) bool {
		if summary.BySide[i].Side != summary.BySide[j].Side {
			return summary.BySide[i].Side < summary.BySide[j].Side
		}
		return summary.BySide[i].Currency < summary.BySide[j].Currency
	})

	return summary
}

func normalizeCurrency(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
