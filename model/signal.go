package model

// Signal is a mono stream of amplitude samples at a fixed rate. It is
// produced by the signal loader and consumed once by feature extraction.
type Signal struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the signal length in seconds.
func (s Signal) Duration() float64 {
	if s.SampleRate == 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// FeatureSummary is the compact feature record derived from a signal.
// A real pitch tracker would extend this with per-frame onset and pitch
// candidates; duration is all the fixed-scale sequencer needs.
type FeatureSummary struct {
	DurationSeconds float64
	SampleRate      int
	SampleCount     int
}
