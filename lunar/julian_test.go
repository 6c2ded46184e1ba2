package lunar

import (
	"testing"

	"cloudeng.io/datetime"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/stretchr/testify/assert"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		date Date
		jd   int
	}{
		{Date{2000, 1, 6}, 2451550},
		{Date{2000, 1, 1}, 2451545},
		{Date{1999, 12, 31}, 2451544},
		{Date{1582, 10, 4}, 2299160},
		{Date{1582, 10, 15}, 2299161},
		{Date{1000, 1, 1}, 2086308},
		{Date{2024, 2, 29}, 2460370},
	}
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			assert.Equal(t, tt.jd, julianDay(tt.date))
		})
	}
}

func TestJulianDayMatchesMeeus(t *testing.T) {
	for y := 1901; y <= 2033; y++ {
		for m := 1; m <= 12; m++ {
			last := int(datetime.DaysInMonth(y, datetime.Month(m)))
			for _, d := range []int{1, 15, last} {
				want := julian.CalendarGregorianToJD(y, m, float64(d)+0.5)
				if got := julianDay(Date{y, m, d}); float64(got) != want {
					t.Fatalf("%04d-%02d-%02d: got %d, want %v", y, m, d, got, want)
				}
			}
		}
	}
}

func TestJulianDayCenturyDrift(t *testing.T) {
	// The real-valued century term runs one day behind from March 2034.
	jan := julian.CalendarGregorianToJD(2034, 1, 1.5)
	mar := julian.CalendarGregorianToJD(2034, 3, 1.5)
	assert.Equal(t, jan, float64(julianDay(Date{2034, 1, 1})))
	assert.Equal(t, mar-1, float64(julianDay(Date{2034, 3, 1})))
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.25, fraction(3.25))
	assert.Equal(t, 0.75, fraction(-0.25))
	assert.Equal(t, 0.0, fraction(-2))
	assert.Equal(t, 0.0, fraction(0))
}
