package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateWindow_Validate(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{name: "mesmo dia", start: "2021-01-01", end: "2021-01-01"},
		{name: "nove dias", start: "2021-01-01", end: "2021-01-10"},
		{name: "vinte e nove dias", start: "2021-01-01", end: "2021-01-30"},
		{name: "trinta dias", start: "2021-01-01", end: "2021-01-31", wantErr: ErrWindowTooLarge},
		{name: "trinta e um dias", start: "2021-01-01", end: "2021-02-01", wantErr: ErrWindowTooLarge},
		{name: "vinte e nove dias entre meses", start: "2021-03-20", end: "2021-04-18"},
		{name: "fim antes do início", start: "2021-01-10", end: "2021-01-01", wantErr: ErrInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := ParseDateWindow(tt.start, tt.end)
			require.NoError(t, err)

			err = window.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestDateWindow_ValidateEverySpan(t *testing.T) {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	for days := 0; days < 60; days++ {
		window := DateWindow{Start: start, End: start.AddDate(0, 0, days)}

		assert.Equal(t, days, window.Span())
		if days < MaxWindowSpanDays {
			assert.NoError(t, window.Validate(), "span %d", days)
		} else {
			assert.ErrorIs(t, window.Validate(), ErrWindowTooLarge, "span %d", days)
		}
	}
}

func TestParseDateWindow_Invalid(t *testing.T) {
	for _, input := range [][2]string{
		{"", "2021-01-01"},
		{"2021-01-01", ""},
		{"01/01/2021", "2021-01-02"},
		{"2021-01-01", "2021-13-01"},
	} {
		_, err := ParseDateWindow(input[0], input[1])
		assert.ErrorIs(t, err, ErrInvalidWindow, "input %v", input)
	}
}

func TestDateWindow_Bounds(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	window, err := ParseDateWindow("2021-01-01", "2021-07-01")
	require.NoError(t, err)

	start, end := window.Bounds(paris)

	assert.Equal(t, "2021-01-01T00:00:00+01:00", start.Format(time.RFC3339))
	assert.Equal(t, "2021-07-01T00:00:00+02:00", end.Format(time.RFC3339))
	assert.Equal(t, "2021-01-01", window.StartDate())
	assert.Equal(t, "2021-07-01", window.EndDate())
}
