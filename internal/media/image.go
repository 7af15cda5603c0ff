// Package media validates image references submitted by the admin console and
// guests. A reference is an http(s) URL, a site-relative path, or a base64
// data URL produced by the browser.
package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"wedding-site-go/internal/validation"
)

const DefaultMaxImageBytes int64 = 5 << 20

var (
	ErrInvalidReference = errors.New("invalid image reference")
	ErrNotImage         = errors.New("payload is not an image")
	ErrTooLarge         = errors.New("image too large")
)

// DataURL is a decoded data: URL.
type DataURL struct {
	DeclaredType string
	DetectedType string
	Data         []byte
}

// ParseDataURL decodes a base64 data URL and sniffs its payload.
func ParseDataURL(raw string) (*DataURL, error) {
	rest, ok := strings.CutPrefix(raw, "data:")
	if !ok {
		return nil, ErrInvalidReference
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ErrInvalidReference
	}

	params := strings.Split(meta, ";")
	if len(params) < 2 || params[len(params)-1] != "base64" {
		return nil, fmt.Errorf("%w: data URL must be base64 encoded", ErrInvalidReference)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
		}
	}

	return &DataURL{
		DeclaredType: strings.ToLower(strings.TrimSpace(params[0])),
		DetectedType: mimetype.Detect(data).String(),
		Data:         data,
	}, nil
}

// Checker validates image references against a size limit.
type Checker struct {
	MaxBytes int64
}

func NewChecker(maxBytes int64) Checker {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return Checker{MaxBytes: maxBytes}
}

// Check returns nil for an empty reference; required-ness is the caller's
// concern.
func (c Checker) Check(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil
	}

	if strings.HasPrefix(ref, "data:") {
		return c.checkDataURL(ref)
	}

	if strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//") {
		return nil
	}

	u, err := url.Parse(ref)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidReference
	}
	return nil
}

func (c Checker) checkDataURL(ref string) error {
	max := c.MaxBytes
	if max <= 0 {
		max = DefaultMaxImageBytes
	}

	// base64 inflates by 4/3; reject before decoding anything obviously huge.
	if int64(len(ref)) > max/3*4+1024 {
		return ErrTooLarge
	}

	parsed, err := ParseDataURL(ref)
	if err != nil {
		return err
	}
	if int64(len(parsed.Data)) > max {
		return ErrTooLarge
	}
	if !strings.HasPrefix(parsed.DeclaredType, "image/") || !strings.HasPrefix(parsed.DetectedType, "image/") {
		return ErrNotImage
	}
	return nil
}

// Validate runs Check and reports a failure as a validation error on field.
func (c Checker) Validate(field, ref string) error {
	err := c.Check(ref)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrTooLarge):
		return validation.Wrap(err, field, fmt.Sprintf("must be at most %d bytes", c.MaxBytes))
	case errors.Is(err, ErrNotImage):
		return validation.Wrap(err, field, "must be an image")
	default:
		return validation.Wrap(err, field, "must be an http(s) URL, a site path or an image data URL")
	}
}

// ValidateAll checks several fields and merges the failures.
func (c Checker) ValidateAll(fields map[string]string) error {
	var result error
	for field, ref := range fields {
		result = validation.Merge(result, c.Validate(field, ref))
	}
	return result
}
