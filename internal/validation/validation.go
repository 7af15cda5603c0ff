// Package validation checks domain structs against their `validate` tags and
// reports failures per field.
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Error lists the fields that failed validation, keyed by snake_case name.
type Error struct {
	Fields map[string]string
	cause  error
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+" "+e.Fields[key])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Field builds a single-field error.
func Field(name, message string) *Error {
	return &Error{Fields: map[string]string{name: message}}
}

// Wrap builds a single-field error that also matches cause with errors.Is.
func Wrap(cause error, name, message string) *Error {
	return &Error{Fields: map[string]string{name: message}, cause: cause}
}

// Merge combines two errors, returning nil when both are nil.
func Merge(a, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	var va, vb *Error
	if !errors.As(a, &va) || !errors.As(b, &vb) {
		return a
	}

	merged := &Error{Fields: make(map[string]string, len(va.Fields)+len(vb.Fields)), cause: va.cause}
	for k, v := range va.Fields {
		merged.Fields[k] = v
	}
	for k, v := range vb.Fields {
		if _, exists := merged.Fields[k]; !exists {
			merged.Fields[k] = v
		}
	}
	return merged
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Struct validates v and converts failures into *Error.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := &Error{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		name := SnakeCase(fe.StructField())
		if _, exists := result.Fields[name]; exists {
			continue
		}
		result.Fields[name] = message(fe)
	}
	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url", "http_url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return "is invalid"
	}
}

// SnakeCase turns a Go field name such as GuestCount or StreamURL into
// guest_count or stream_url.
func SnakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(runes) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
