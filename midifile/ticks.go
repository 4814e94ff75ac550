package midifile

import (
	"math"

	"github.com/tonescribe/tonescribe/constants"
)

// At 120 BPM a quarter note lasts half a second, so with 960 ticks per
// quarter one second spans 1920 ticks. The rounding rule is fixed so a
// written file is byte-identical across platforms.

func SecondsToTicks(seconds float64) uint32 {
	return uint32(math.Round(seconds * constants.TicksPerQuarter * constants.TempoBPM / 60.0))
}

func TicksToSeconds(ticks uint32) float64 {
	return float64(ticks) * 60.0 / (constants.TicksPerQuarter * constants.TempoBPM)
}
