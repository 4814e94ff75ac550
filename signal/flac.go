package signal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tphakala/flac"
)

// decodeFLAC reads an entire FLAC file as normalized interleaved samples.
// Decoded frames arrive as little-endian PCM bytes.
func decodeFLAC(path string) (samples []float64, channels int, rate int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	defer f.Close()

	dec, err := flac.NewDecoder(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}

	divisor, err := pcmDivisor(dec.BitsPerSample)
	if err != nil {
		return nil, 0, 0, err
	}

	bytesPerSample := dec.BitsPerSample / 8
	for {
		frame, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%w: %v", ErrCorruptStream, err)
		}

		for i := 0; i+bytesPerSample <= len(frame); i += bytesPerSample {
			var v int32
			switch dec.BitsPerSample {
			case 16:
				v = int32(int16(binary.LittleEndian.Uint16(frame[i:])))
			case 24:
				v = int32(frame[i]) | int32(frame[i+1])<<8 | int32(frame[i+2])<<16
				// sign extension for 24-bit
				if v&0x800000 != 0 {
					v |= -1 << 24
				}
			case 32:
				v = int32(binary.LittleEndian.Uint32(frame[i:]))
			}
			samples = append(samples, float64(v)/divisor)
		}
	}
	return samples, dec.NChannels, dec.SampleRate, nil
}
