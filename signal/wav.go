package signal

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// decodeWAV reads an entire WAV file as normalized interleaved samples.
func decodeWAV(path string) (samples []float64, channels int, rate int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, 0, 0, fmt.Errorf("%w: invalid WAV header", ErrCorruptStream)
	}

	divisor, err := pcmDivisor(int(dec.BitDepth))
	if err != nil {
		return nil, 0, 0, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}

	samples = make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / divisor
	}
	return samples, int(dec.NumChans), int(dec.SampleRate), nil
}
