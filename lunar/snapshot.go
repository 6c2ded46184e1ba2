package lunar

import (
	"fmt"
	"time"
)

// Snapshot is the Moon's state on a single civil date.
type Snapshot struct {
	Date         Date    `json:"date" yaml:"date"`
	Age          float64 `json:"age" yaml:"age"`
	Phase        Phase   `json:"phase" yaml:"phase"`
	Illumination float64 `json:"illumination" yaml:"illumination"`
	Distance     float64 `json:"distance" yaml:"distance"`
	Latitude     float64 `json:"latitude" yaml:"latitude"`
	Longitude    float64 `json:"longitude" yaml:"longitude"`
	Zodiac       Zodiac  `json:"zodiac" yaml:"zodiac"`
}

// Compute returns the Snapshot for d. It fails only when d is not a real
// calendar date, in which case the error wraps ErrInvalidDate.
func Compute(d Date) (Snapshot, error) {
	jd, err := julianDayOf(d)
	if err != nil {
		return Snapshot{}, err
	}
	a := anglesFor(jd)
	s := Snapshot{
		Date:         d,
		Age:          a.age(),
		Illumination: a.illumination(),
		Distance:     a.distance(),
		Latitude:     a.latitude(),
		Longitude:    a.longitude(),
	}
	s.Phase = PhaseForAge(s.Age)
	s.Zodiac = ZodiacForLongitude(s.Longitude)
	return s, nil
}

// At returns the Snapshot for the civil date of t in t's location.
func At(t time.Time) Snapshot {
	s, err := Compute(DateOf(t))
	if err != nil {
		// time.Time always carries a valid date.
		panic(err)
	}
	return s
}

// Now returns the Snapshot for today's local date.
func Now() Snapshot {
	return At(time.Now())
}

// MaxRangeDays is the largest day count Range accepts.
const MaxRangeDays = 366

// Range returns snapshots for days consecutive dates starting at from.
// days must be between 0 and MaxRangeDays.
func Range(from Date, days int) ([]Snapshot, error) {
	if err := from.Validate(); err != nil {
		return nil, err
	}
	if days < 0 || days > MaxRangeDays {
		return nil, fmt.Errorf("day count %d outside [0, %d]", days, MaxRangeDays)
	}
	out := make([]Snapshot, 0, days)
	for i := 0; i < days; i++ {
		s, err := Compute(from.AddDays(i))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// NextPhase returns the snapshot of the first date on or after from whose
// phase is p, looking at most limit days ahead. ok is false when no such
// date is found within the limit.
func NextPhase(from Date, p Phase, limit int) (s Snapshot, ok bool, err error) {
	if err := from.Validate(); err != nil {
		return Snapshot{}, false, err
	}
	for i := 0; i < limit; i++ {
		s, err = Compute(from.AddDays(i))
		if err != nil {
			return Snapshot{}, false, err
		}
		if s.Phase == p {
			return s, true, nil
		}
	}
	return Snapshot{}, false, nil
}

// Age returns the moon age in days for d.
func Age(d Date) (float64, error) {
	jd, err := julianDayOf(d)
	if err != nil {
		return 0, err
	}
	return moonAge(jd), nil
}

// PhaseOf returns the named phase for d.
func PhaseOf(d Date) (Phase, error) {
	age, err := Age(d)
	if err != nil {
		return 0, err
	}
	return PhaseForAge(age), nil
}

// Distance returns the Earth-Moon distance for d in Earth radii.
func Distance(d Date) (float64, error) {
	jd, err := julianDayOf(d)
	if err != nil {
		return 0, err
	}
	return moonDistance(jd), nil
}

// Latitude returns the Moon's ecliptic latitude for d in degrees.
func Latitude(d Date) (float64, error) {
	jd, err := julianDayOf(d)
	if err != nil {
		return 0, err
	}
	return moonLatitude(jd), nil
}

// Longitude returns the Moon's ecliptic longitude for d in degrees.
func Longitude(d Date) (float64, error) {
	jd, err := julianDayOf(d)
	if err != nil {
		return 0, err
	}
	return moonLongitude(jd), nil
}

// ZodiacOf returns the zodiac sign the Moon is in on d.
func ZodiacOf(d Date) (Zodiac, error) {
	lon, err := Longitude(d)
	if err != nil {
		return 0, err
	}
	return ZodiacForLongitude(lon), nil
}

func julianDayOf(d Date) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return julianDay(d), nil
}
