package signal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tonescribe/tonescribe/constants"
	"github.com/tonescribe/tonescribe/model"
)

// Sentinel errors for expected load failure modes.
var (
	ErrFileNotFound      = errors.New("file not found")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrCorruptStream     = errors.New("corrupt or unreadable audio stream")
)

// Loader decodes an audio file into a mono analysis signal.
type Loader interface {
	Load(path string) (model.Signal, error)
}

// FileLoader decodes WAV and FLAC files, downmixes to mono and resamples
// to TargetRate. Zero-length audio is valid and yields an empty signal.
type FileLoader struct {
	TargetRate int
}

func NewFileLoader() *FileLoader {
	return &FileLoader{TargetRate: constants.TargetSampleRate}
}

func (l *FileLoader) Load(path string) (model.Signal, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return model.Signal{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return model.Signal{}, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}

	var (
		interleaved []float64
		channels    int
		rate        int
		err         error
	)
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		interleaved, channels, rate, err = decodeWAV(path)
	case ".flac":
		interleaved, channels, rate, err = decodeFLAC(path)
	default:
		return model.Signal{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return model.Signal{}, err
	}

	mono := Downmix(interleaved, channels)
	resampled := Resample(mono, rate, l.TargetRate)
	return model.Signal{Samples: resampled, SampleRate: l.TargetRate}, nil
}

// pcmDivisor returns the normalization divisor for a PCM bit depth.
func pcmDivisor(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	default:
		return 0, fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedFormat, bitDepth)
	}
}
