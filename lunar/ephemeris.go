// Package lunar computes low-order approximations of the Moon's age, phase,
// distance and ecliptic position for a civil date.
package lunar

import (
	"math"

	"github.com/soniakeys/unit"
)

// Period lengths in days and the Julian day each period is measured from.
const (
	SynodicMonth     = 29.530588853
	AnomalisticMonth = 27.55454988
	DraconicMonth    = 27.212220817
	TropicalMonth    = 27.321582241

	synodicEpoch     = 2451550.1
	anomalisticEpoch = 2451562.2
	draconicEpoch    = 2451565.2
	tropicalEpoch    = 2451555.8

	// ageScale converts the synodic fraction into days.
	ageScale = 29.53
)

// angles holds the periodic arguments for a single Julian day.
type angles struct {
	synodic     float64 // fraction of the synodic month elapsed
	anomaly     unit.Angle
	draconic    unit.Angle
	tropical    float64 // fraction of the tropical month elapsed
	synodicRads unit.Angle
}

func anglesFor(jd int) angles {
	day := float64(jd)
	ip := fraction((day - synodicEpoch) / SynodicMonth)
	return angles{
		synodic:     ip,
		synodicRads: unit.Angle(ip * 2 * math.Pi),
		anomaly:     unit.Angle(2 * math.Pi * fraction((day-anomalisticEpoch)/AnomalisticMonth)),
		draconic:    unit.Angle(2 * math.Pi * fraction((day-draconicEpoch)/DraconicMonth)),
		tropical:    fraction((day - tropicalEpoch) / TropicalMonth),
	}
}

// moonAge returns the days since the last new moon, in [0, 29.53).
func moonAge(jd int) float64 {
	return anglesFor(jd).age()
}

func (a angles) age() float64 {
	return a.synodic * ageScale
}

// moonDistance returns the Earth-Moon distance in Earth radii.
func moonDistance(jd int) float64 {
	return anglesFor(jd).distance()
}

func (a angles) distance() float64 {
	ip, dp := a.synodicRads, a.anomaly
	return 60.4 - 3.3*dp.Cos() - 0.6*(2*ip-dp).Cos() - 0.5*(2*ip).Cos()
}

// moonLatitude returns the ecliptic latitude in degrees.
func moonLatitude(jd int) float64 {
	return anglesFor(jd).latitude()
}

func (a angles) latitude() float64 {
	return 5.1 * a.draconic.Sin()
}

// moonLongitude returns the ecliptic longitude in degrees. The periodic
// terms can carry the result slightly outside [0, 360); it is not wrapped.
func moonLongitude(jd int) float64 {
	return anglesFor(jd).longitude()
}

func (a angles) longitude() float64 {
	ip, dp := a.synodicRads, a.anomaly
	return 360*a.tropical + 6.3*dp.Sin() + 1.3*(2*ip-dp).Sin() + 0.7*(2*ip).Sin()
}

// illumination returns the illuminated percentage of the lunar disc.
func (a angles) illumination() float64 {
	return (1.0 - a.synodicRads.Cos()) / 2.0 * 100.0
}
