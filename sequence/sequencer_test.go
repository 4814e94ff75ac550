package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonescribe/tonescribe/model"
)

func sequenceFor(duration float64) model.NoteSequence {
	var s ScaleSequencer
	return s.Sequence(model.FeatureSummary{
		DurationSeconds: duration,
		SampleRate:      16000,
		SampleCount:     int(duration * 16000),
	})
}

func TestNoteCountLaw(t *testing.T) {
	cases := []struct {
		duration float64
		expected int
	}{
		{0.0, 0},
		{0.4, 0},
		{0.5, 1},
		{1.0, 2},
		{3.5, 7},
		{4.0, 8},
		{10.0, 8},
		{3600.0, 8},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, len(sequenceFor(c.duration)),
			"duration %v", c.duration)
	}
}

func TestPitchCycling(t *testing.T) {
	notes := sequenceFor(4.0)

	assert := assert.New(t)
	for i, n := range notes {
		assert.Equal(CMajorScale[i%len(CMajorScale)], n.Pitch)
	}
}

func TestTimingGrid(t *testing.T) {
	notes := sequenceFor(2.0)

	assert := assert.New(t)
	assert.Equal(4, len(notes))
	for i, n := range notes {
		assert.Equal(float64(i)*0.5, n.Start)
		assert.InDelta(n.Start+0.4, n.End, 1e-12)
		assert.Equal(uint8(64), n.Velocity)
	}
}

func TestNotesOrderedAndNonOverlapping(t *testing.T) {
	notes := sequenceFor(10.0)

	assert := assert.New(t)
	for i := 1; i < len(notes); i++ {
		assert.Less(notes[i-1].Start, notes[i].Start)
		assert.LessOrEqual(notes[i-1].End, notes[i].Start)
	}
}

func TestSequenceDeterministic(t *testing.T) {
	assert.Equal(t, sequenceFor(3.0), sequenceFor(3.0))
}
