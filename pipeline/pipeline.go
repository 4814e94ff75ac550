package pipeline

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/tonescribe/tonescribe/feature"
	"github.com/tonescribe/tonescribe/midifile"
	"github.com/tonescribe/tonescribe/model"
	"github.com/tonescribe/tonescribe/sequence"
	"github.com/tonescribe/tonescribe/signal"
)

const (
	instrumentProgram = 0
	instrumentName    = "Piano"
)

// Transcriber runs the four-stage audio-to-MIDI pipeline: load, analyze,
// sequence, write. Every stage is an injected strategy, so a real pitch
// tracker can replace the extractor/sequencer pair without touching
// orchestration or serialization. A Transcriber holds no per-call state
// and is safe to share across goroutines.
type Transcriber struct {
	Loader    signal.Loader
	Extractor feature.Extractor
	Sequencer sequence.Sequencer
	Logger    *slog.Logger
}

func New(logger *slog.Logger) *Transcriber {
	return &Transcriber{
		Loader:    signal.NewFileLoader(),
		Extractor: feature.SummaryExtractor{},
		Sequencer: sequence.ScaleSequencer{},
		Logger:    logger,
	}
}

// Transcribe converts the audio file at inputPath into a MIDI file at
// outputPath. A nil return means outputPath holds a complete file. On
// error the failing stage terminates the pipeline immediately and
// nothing is left at outputPath.
func (t *Transcriber) Transcribe(inputPath string, outputPath string) error {
	log := t.Logger.With("correlation_id", uuid.New().String())
	log.Info("transcription started", "input", inputPath, "output", outputPath)

	sig, err := t.Loader.Load(inputPath)
	if err != nil {
		log.Error("load failed", "error", err)
		return stageFailed(StageLoad, err)
	}
	log.Info("audio loaded", "samples", len(sig.Samples), "sample_rate", sig.SampleRate)

	features := t.Extractor.Extract(sig)
	log.Info("analysis complete", "duration_seconds", features.DurationSeconds)

	notes := t.Sequencer.Sequence(features)
	log.Info("notes sequenced", "count", len(notes))

	track := model.InstrumentTrack{
		Program: instrumentProgram,
		Name:    instrumentName,
		Notes:   notes,
	}
	if err := midifile.WriteTrack(track, outputPath); err != nil {
		log.Error("write failed", "error", err)
		return stageFailed(StageWrite, err)
	}

	log.Info("transcription complete")
	return nil
}
