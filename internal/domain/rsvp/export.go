package rsvp

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// utf8BOM makes spreadsheet apps detect UTF-8 for Vietnamese names.
const utf8BOM = "\uFEFF"

var csvHeader = []string{
	"guest_name",
	"email",
	"phone",
	"attending",
	"guest_count",
	"meal_preference",
	"special_requirements",
	"created_at",
}

// WriteCSV writes rsvps in the order given.
func WriteCSV(w io.Writer, rsvps []Rsvp) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, r := range rsvps {
		record := []string{
			safeCell(r.GuestName),
			safeCell(r.Email),
			safeCell(r.Phone),
			strconv.FormatBool(r.Attending),
			strconv.Itoa(r.GuestCount),
			safeCell(r.MealPreference),
			safeCell(r.SpecialRequirements),
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// safeCell stops spreadsheet apps from evaluating guest input as a formula.
func safeCell(value string) string {
	if value != "" && strings.ContainsRune("=+-@\t\r", rune(value[0])) {
		return "'" + value
	}
	return value
}
