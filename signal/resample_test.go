package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownmixMonoPassthrough(t *testing.T) {
	in := []float64{0.1, 0.2, 0.3}
	assert.Equal(t, in, Downmix(in, 1))
}

func TestDownmixAveragesChannels(t *testing.T) {
	in := []float64{1.0, 0.0, 0.5, 0.5, -1.0, 1.0}
	out := Downmix(in, 2)

	assert := assert.New(t)
	assert.Equal(3, len(out))
	assert.InDelta(0.5, out[0], 1e-12)
	assert.InDelta(0.5, out[1], 1e-12)
	assert.InDelta(0.0, out[2], 1e-12)
}

func TestResampleSameRate(t *testing.T) {
	in := []float64{0.1, 0.2, 0.3}
	assert.Equal(t, in, Resample(in, 16000, 16000))
}

func TestResampleEmpty(t *testing.T) {
	assert.Empty(t, Resample(nil, 44100, 16000))
}

func TestResampleHalvesLength(t *testing.T) {
	in := make([]float64, 32000)
	for i := range in {
		in[i] = float64(i)
	}
	out := Resample(in, 32000, 16000)

	assert := assert.New(t)
	assert.Equal(16000, len(out))
	// a linear ramp survives linear interpolation exactly
	assert.InDelta(0.0, out[0], 1e-9)
	assert.InDelta(2.0, out[1], 1e-9)
	assert.InDelta(20.0, out[10], 1e-9)
}

func TestResampleDeterministic(t *testing.T) {
	in := sineFloat(440, 0.25, 44100)
	a := Resample(in, 44100, 16000)
	b := Resample(in, 44100, 16000)
	assert.Equal(t, a, b)
}

func sineFloat(freq float64, seconds float64, rate int) []float64 {
	data := sineWave(freq, seconds, rate)
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v) / 32768.0
	}
	return out
}
