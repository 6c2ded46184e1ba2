package lunar

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestPhaseForAgeBoundaries(t *testing.T) {
	want := []Phase{WaxingCrescent, FirstQuarter, WaxingGibbous, FullMoon,
		WaningGibbous, LastQuarter, WaningCrescent, NewMoon}
	for i, b := range phaseBounds {
		assert.Equal(t, b.phase, PhaseForAge(b.below-epsilon), "below %v", b.below)
		assert.Equal(t, want[i], PhaseForAge(b.below), "at %v", b.below)
		assert.Equal(t, want[i], PhaseForAge(b.below+epsilon), "above %v", b.below)
	}
	assert.Equal(t, NewMoon, PhaseForAge(0))
	assert.Equal(t, NewMoon, PhaseForAge(29.52))
}

func TestZodiacForLongitudeBoundaries(t *testing.T) {
	want := []Zodiac{Aries, Taurus, Gemini, Cancer, Leo, Virgo, Libra,
		Scorpio, Sagittarius, Capricorn, Aquarius, Pisces}
	for i, b := range zodiacBounds {
		assert.Equal(t, b.zodiac, ZodiacForLongitude(b.below-epsilon), "below %v", b.below)
		assert.Equal(t, want[i], ZodiacForLongitude(b.below), "at %v", b.below)
	}
	assert.Equal(t, Pisces, ZodiacForLongitude(-7.6))
	assert.Equal(t, Pisces, ZodiacForLongitude(367.7))
}

func TestPhaseNames(t *testing.T) {
	assert.Equal(t, "Waxing Crescent", WaxingCrescent.String())
	assert.Equal(t, "🌕", FullMoon.Symbol())
	assert.Equal(t, "Phase(8)", Phase(8).String())
	assert.Equal(t, "?", Phase(-1).Symbol())

	for _, s := range []string{"full moon", "Full-Moon", "FULL_MOON", " FullMoon "} {
		p, err := ParsePhase(s)
		require.NoError(t, err, s)
		assert.Equal(t, FullMoon, p)
	}
	_, err := ParsePhase("blue moon")
	assert.Error(t, err)
}

func TestLabelsJSON(t *testing.T) {
	type labels struct {
		Phase  Phase  `json:"phase"`
		Zodiac Zodiac `json:"zodiac"`
	}
	buf, err := json.Marshal(labels{LastQuarter, Sagittarius})
	require.NoError(t, err)
	assert.JSONEq(t, `{"phase":"Last Quarter","zodiac":"Sagittarius"}`, string(buf))

	var back labels
	require.NoError(t, json.Unmarshal(buf, &back))
	assert.Equal(t, labels{LastQuarter, Sagittarius}, back)

	_, err = json.Marshal(labels{Phase: 42})
	assert.Error(t, err)
	assert.Error(t, json.Unmarshal([]byte(`{"zodiac":"Ophiuchus"}`), &back))
}
