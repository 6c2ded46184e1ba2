package lunar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	tests := []struct {
		name        string
		y, m, d     int
		expectError bool
	}{
		{"february 30", 2023, 2, 30, true},
		{"month 13", 2023, 13, 1, true},
		{"april 31", 2023, 4, 31, true},
		{"month 0", 2023, 0, 10, true},
		{"day 0", 2023, 5, 0, true},
		{"day 32", 2023, 1, 32, true},
		{"century non leap", 1900, 2, 29, true},
		{"february 28", 2023, 2, 28, false},
		{"leap day", 2024, 2, 29, false},
		{"quadricentennial leap", 2000, 2, 29, false},
		{"before gregorian reform", 1582, 10, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDate(tt.y, tt.m, tt.d)
			if tt.expectError {
				require.ErrorIs(t, err, ErrInvalidDate)
				assert.Equal(t, Date{}, d)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Date{Year: tt.y, Month: tt.m, Day: tt.d}, d)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date{2024, 2, 29}, d)

	for _, s := range []string{"2023-02-30", "2023-13-01", "yesterday", "2024-01", "2024-01-01junk", ""} {
		_, err := ParseDate(s)
		assert.ErrorIs(t, err, ErrInvalidDate, s)
	}
}

func TestDateAddDays(t *testing.T) {
	d := Date{2024, 2, 28}
	assert.Equal(t, Date{2024, 2, 29}, d.AddDays(1))
	assert.Equal(t, Date{2024, 3, 1}, d.AddDays(2))
	assert.Equal(t, Date{2023, 12, 31}, Date{2024, 1, 1}.AddDays(-1))
	assert.Equal(t, d, d.AddDays(0))
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	tm := time.Date(2023, 12, 31, 23, 30, 0, 0, time.UTC).In(loc)
	assert.Equal(t, Date{2024, 1, 1}, DateOf(tm))
}

func TestDateText(t *testing.T) {
	d := Date{987, 3, 4}
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0987-03-04", string(text))

	var back Date
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, d, back)
	assert.ErrorIs(t, back.UnmarshalText([]byte("2023-04-31")), ErrInvalidDate)
}
