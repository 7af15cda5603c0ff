package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	GuestName  string `validate:"required,max=10"`
	Email      string `validate:"required,email"`
	GuestCount int    `validate:"gte=1,lte=20"`
	Side       string `validate:"omitempty,oneof=bride groom"`
}

func TestStructReportsFieldsInSnakeCase(t *testing.T) {
	err := Struct(sample{GuestName: "", Email: "nope", GuestCount: 0, Side: "both"})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "is required", verr.Fields["guest_name"])
	assert.Equal(t, "must be a valid email", verr.Fields["email"])
	assert.Equal(t, "must be greater than or equal to 1", verr.Fields["guest_count"])
	assert.Equal(t, "must be one of: bride, groom", verr.Fields["side"])
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(sample{GuestName: "Linh", Email: "linh@example.com", GuestCount: 2}))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("popup type taken")
	err := error(Wrap(cause, "type", "already exists"))

	assert.True(t, errors.Is(err, cause))
	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "already exists", verr.Fields["type"])
	assert.Equal(t, "validation failed: type already exists", err.Error())
}

func TestMerge(t *testing.T) {
	assert.Nil(t, Merge(nil, nil))

	merged := Merge(Field("a", "is required"), Field("b", "is invalid"))
	var verr *Error
	require.True(t, errors.As(merged, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"GuestName":       "guest_name",
		"StreamURL":       "stream_url",
		"ID":              "id",
		"BrideQRImage":    "bride_qr_image",
		"DurationSeconds": "duration_seconds",
		"Field2Name":      "field2_name",
	}
	for in, want := range cases {
		assert.Equal(t, want, SnakeCase(in), in)
	}
}
