package feature

import "github.com/tonescribe/tonescribe/model"

// Extractor derives time-aligned musical features from a signal. It is
// total: any well-formed signal, including a zero-length one, produces a
// summary. This is the substitution point for real onset detection and
// pitch tracking; replacements must keep the same pure contract.
type Extractor interface {
	Extract(sig model.Signal) model.FeatureSummary
}

// SummaryExtractor records duration, rate and sample count only.
type SummaryExtractor struct{}

func (SummaryExtractor) Extract(sig model.Signal) model.FeatureSummary {
	count := len(sig.Samples)
	var duration float64
	if sig.SampleRate > 0 {
		duration = float64(count) / float64(sig.SampleRate)
	}
	return model.FeatureSummary{
		DurationSeconds: duration,
		SampleRate:      sig.SampleRate,
		SampleCount:     count,
	}
}
