package lunar

import "math"

// gregorianCutover is the last Julian day number of the Julian calendar,
// 4 October 1582.
const gregorianCutover = 2299160

// julianDay returns the Julian day number at 12h UT for d. d must be valid.
func julianDay(d Date) int {
	yy := d.Year - int(math.Floor((12.0-float64(d.Month))/10.0))
	mm := d.Month + 9
	if mm >= 12 {
		mm -= 12
	}
	k1 := int(math.Floor(365.25 * (float64(yy) + 4712.0)))
	k2 := int(math.Floor(30.6*float64(mm) + 0.5))
	// The century term uses real division; this drifts from the Meeus
	// day number by one day from March 2034 onwards.
	k3 := int(math.Floor((float64(yy)/100.0+49.0)*0.75)) - 38
	jd := k1 + k2 + d.Day + 59
	if jd > gregorianCutover {
		jd -= k3
	}
	return jd
}

// fraction returns the position of v within its period, in [0, 1).
func fraction(v float64) float64 {
	v -= math.Floor(v)
	if v < 0 {
		v++
	}
	return v
}
