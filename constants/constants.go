package constants

import (
	"os"
	"strconv"
)

// AllowedExtensions are the upload extensions the service accepts. MP3/M4A
// are rejected until a decoder for them lands in the signal package.
var AllowedExtensions = []string{".wav", ".flac"}

const (
	// TargetSampleRate is the analysis rate every decoded signal is
	// resampled to before feature extraction.
	TargetSampleRate = 16000

	// TicksPerQuarter is the SMF time division declared in written files.
	TicksPerQuarter = 960

	// TempoBPM is the fixed tempo declared in written files.
	TempoBPM = 120.0

	DefaultMaxUploadMB = 50
)

func GetUploadDir() string {
	path := os.Getenv("UPLOAD_DIR")
	if path != "" {
		return path
	}
	return "./uploads"
}

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_DIR")
	if path != "" {
		return path
	}
	return "./output"
}

func GetPort() int {
	port := os.Getenv("PORT")
	if port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8080
}

func GetMaxUploadBytes() int64 {
	mb := os.Getenv("MAX_FILE_SIZE_MB")
	if mb != "" {
		if n, err := strconv.ParseInt(mb, 10, 64); err == nil && n > 0 {
			return n * 1024 * 1024
		}
	}
	return DefaultMaxUploadMB * 1024 * 1024
}
