package lunar

import (
	"fmt"
	"strings"
)

// Phase is one of the eight named lunar phases.
type Phase int

const (
	NewMoon Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var phaseNames = [...]string{
	NewMoon:        "New Moon",
	WaxingCrescent: "Waxing Crescent",
	FirstQuarter:   "First Quarter",
	WaxingGibbous:  "Waxing Gibbous",
	FullMoon:       "Full Moon",
	WaningGibbous:  "Waning Gibbous",
	LastQuarter:    "Last Quarter",
	WaningCrescent: "Waning Crescent",
}

var phaseSymbols = [...]string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"}

// phaseBounds are exclusive upper bounds on age, in days. Ages at or past
// the last bound wrap to NewMoon.
var phaseBounds = [...]struct {
	below float64
	phase Phase
}{
	{1.84566, NewMoon},
	{5.53699, WaxingCrescent},
	{9.22831, FirstQuarter},
	{12.91963, WaxingGibbous},
	{16.61096, FullMoon},
	{20.30228, WaningGibbous},
	{23.99361, LastQuarter},
	{27.68493, WaningCrescent},
}

// PhaseForAge returns the phase for a moon age in days.
func PhaseForAge(age float64) Phase {
	for _, b := range phaseBounds {
		if age < b.below {
			return b.phase
		}
	}
	return NewMoon
}

// String returns the phase label, e.g. "Waxing Crescent".
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Symbol returns the moon emoji for p.
func (p Phase) Symbol() string {
	if p < 0 || int(p) >= len(phaseSymbols) {
		return "?"
	}
	return phaseSymbols[p]
}

// MarshalText implements encoding.TextMarshaler using the phase label.
func (p Phase) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(phaseNames) {
		return nil, fmt.Errorf("unknown phase %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with ParsePhase.
func (p *Phase) UnmarshalText(text []byte) error {
	v, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePhase returns the phase named s. Matching ignores case, spaces,
// hyphens and underscores, so "full-moon" and "FullMoon" both name FullMoon.
func ParsePhase(s string) (Phase, error) {
	key := labelKey(s)
	for i, name := range phaseNames {
		if labelKey(name) == key {
			return Phase(i), nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}

// Zodiac is the sign the Moon's ecliptic longitude falls in.
type Zodiac int

const (
	Pisces Zodiac = iota
	Aries
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
)

var zodiacNames = [...]string{
	Pisces:      "Pisces",
	Aries:       "Aries",
	Taurus:      "Taurus",
	Gemini:      "Gemini",
	Cancer:      "Cancer",
	Leo:         "Leo",
	Virgo:       "Virgo",
	Libra:       "Libra",
	Scorpio:     "Scorpio",
	Sagittarius: "Sagittarius",
	Capricorn:   "Capricorn",
	Aquarius:    "Aquarius",
}

// zodiacBounds are exclusive upper bounds on longitude, in degrees. The
// boundaries follow the constellations, not 30 degree signs.
var zodiacBounds = [...]struct {
	below  float64
	zodiac Zodiac
}{
	{33.18, Pisces},
	{51.16, Aries},
	{93.44, Taurus},
	{119.48, Gemini},
	{135.3, Cancer},
	{173.34, Leo},
	{224.17, Virgo},
	{242.57, Libra},
	{271.26, Scorpio},
	{302.49, Sagittarius},
	{311.72, Capricorn},
	{348.58, Aquarius},
}

// ZodiacForLongitude returns the sign for an ecliptic longitude in degrees.
func ZodiacForLongitude(longitude float64) Zodiac {
	for _, b := range zodiacBounds {
		if longitude < b.below {
			return b.zodiac
		}
	}
	return Pisces
}

// String returns the sign name, e.g. "Sagittarius".
func (z Zodiac) String() string {
	if z < 0 || int(z) >= len(zodiacNames) {
		return fmt.Sprintf("Zodiac(%d)", int(z))
	}
	return zodiacNames[z]
}

// MarshalText implements encoding.TextMarshaler using the sign name.
func (z Zodiac) MarshalText() ([]byte, error) {
	if z < 0 || int(z) >= len(zodiacNames) {
		return nil, fmt.Errorf("unknown zodiac sign %d", int(z))
	}
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching follows the
// same rules as ParsePhase.
func (z *Zodiac) UnmarshalText(text []byte) error {
	key := labelKey(string(text))
	for i, name := range zodiacNames {
		if labelKey(name) == key {
			*z = Zodiac(i)
			return nil
		}
	}
	return fmt.Errorf("unknown zodiac sign %q", text)
}

func labelKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
