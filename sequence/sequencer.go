package sequence

import (
	"github.com/tonescribe/tonescribe/model"
	"github.com/tonescribe/tonescribe/util"
)

// Sequencer maps extracted features onto an ordered note sequence.
// Implementations are deterministic and total for any valid summary.
type Sequencer interface {
	Sequence(features model.FeatureSummary) model.NoteSequence
}

// CMajorScale is the fixed pitch cycle used by ScaleSequencer, C4 to C5.
var CMajorScale = []uint8{60, 62, 64, 65, 67, 69, 71, 72}

const (
	notesPerSecond = 2.0
	noteDuration   = 0.4
	noteVelocity   = 64
	maxNotes       = 8
)

// ScaleSequencer lays notes from a fixed scale on a half-second grid,
// ignoring pitch content entirely. Output must stay bit-compatible with
// the original placeholder policy (including the 8-note cap) until an
// onset-driven sequencer replaces it.
type ScaleSequencer struct{}

func (ScaleSequencer) Sequence(features model.FeatureSummary) model.NoteSequence {
	numNotes := util.Min(maxNotes, int(features.DurationSeconds*notesPerSecond))
	seq := make(model.NoteSequence, 0, numNotes)
	for i := 0; i < numNotes; i++ {
		start := float64(i) / notesPerSecond
		seq = append(seq, model.NoteEvent{
			Pitch:    CMajorScale[i%len(CMajorScale)],
			Velocity: noteVelocity,
			Start:    start,
			End:      start + noteDuration,
		})
	}
	return seq
}
