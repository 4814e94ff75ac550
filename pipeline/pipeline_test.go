package pipeline

import (
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonescribe/tonescribe/midifile"
	"github.com/tonescribe/tonescribe/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeSineWAV(t *testing.T, path string, seconds float64, sampleRate int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	n := int(seconds * float64(sampleRate))
	data := make([]int, n)
	for i := range data {
		data[i] = int(0.5 * 32767 * math.Sin(2*math.Pi*440*float64(i)/float64(sampleRate)))
	}
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
}

type stubLoader struct {
	sig model.Signal
	err error
}

func (s stubLoader) Load(path string) (model.Signal, error) {
	return s.sig, s.err
}

type countingExtractor struct {
	calls *int
}

func (c countingExtractor) Extract(sig model.Signal) model.FeatureSummary {
	*c.calls++
	return model.FeatureSummary{}
}

func TestTranscribeSuccess(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.wav")
	output := filepath.Join(dir, "out.mid")
	writeSineWAV(t, input, 1.0, 44100)

	tr := New(discardLogger())
	require.NoError(t, tr.Transcribe(input, output))

	notes, err := midifile.ReadNotes(output)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(2, len(notes))
	assert.Equal(uint8(60), notes[0].Pitch)
	assert.Equal(uint8(62), notes[1].Pitch)
}

func TestTranscribeZeroLengthAudio(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.wav")
	output := filepath.Join(dir, "out.mid")
	writeSineWAV(t, input, 0, 44100)

	tr := New(discardLogger())
	require.NoError(t, tr.Transcribe(input, output))

	notes, err := midifile.ReadNotes(output)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestTranscribeLoadFailureStopsPipeline(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.mid")

	tr := New(discardLogger())
	var extractorCalls int
	tr.Extractor = countingExtractor{calls: &extractorCalls}

	err := tr.Transcribe(filepath.Join(dir, "nope.wav"), output)

	assert := assert.New(t)
	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(StageLoad, stageErr.Stage)
	assert.Equal(0, extractorCalls)
	_, statErr := os.Stat(output)
	assert.True(os.IsNotExist(statErr))
}

func TestTranscribeWriteFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.wav")
	output := filepath.Join(dir, "missing", "out.mid")
	writeSineWAV(t, input, 1.0, 44100)

	tr := New(discardLogger())
	err := tr.Transcribe(input, output)

	assert := assert.New(t)
	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(StageWrite, stageErr.Stage)
	_, statErr := os.Stat(output)
	assert.True(os.IsNotExist(statErr))
}

func TestTranscribeDeterministic(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.wav")
	writeSineWAV(t, input, 2.5, 44100)

	tr := New(discardLogger())
	outA := filepath.Join(dir, "a.mid")
	outB := filepath.Join(dir, "b.mid")
	require.NoError(t, tr.Transcribe(input, outA))
	require.NoError(t, tr.Transcribe(input, outB))

	da, err := os.ReadFile(outA)
	require.NoError(t, err)
	db, err := os.ReadFile(outB)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestTranscribeStubbedSignal(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.mid")

	tr := New(discardLogger())
	tr.Loader = stubLoader{sig: model.Signal{Samples: make([]float64, 56000), SampleRate: 16000}}

	require.NoError(t, tr.Transcribe("ignored", output))

	notes, err := midifile.ReadNotes(output)
	require.NoError(t, err)
	// 3.5 seconds of audio yields 7 notes
	assert.Equal(t, 7, len(notes))
}
