package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tonescribe/tonescribe/constants"
	"github.com/tonescribe/tonescribe/model"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	formats := make([]string, 0, len(constants.AllowedExtensions))
	for _, ext := range constants.AllowedExtensions {
		formats = append(formats, strings.TrimPrefix(ext, "."))
	}
	writeJSON(w, http.StatusOK, model.FormatsResponse{
		SupportedFormats: formats,
		MaxFileSizeMB:    s.maxBytes / (1024 * 1024),
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusNotFound, "endpoint not found")
}

// handleTranscribe accepts a multipart upload in the "audio_file" field,
// runs the pipeline and responds with the MIDI file. The upload is
// removed before the response goes out, success or not.
func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBytes)
	if err := r.ParseMultipartForm(s.maxBytes); err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("file too large, maximum size is %dMB", s.maxBytes/(1024*1024)))
		return
	}

	file, header, err := r.FormFile("audio_file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "no audio file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.writeError(w, http.StatusBadRequest, "no file selected")
		return
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtension(ext) {
		s.writeError(w, http.StatusBadRequest,
			"file type not supported, allowed types: "+strings.Join(constants.AllowedExtensions, ", "))
		return
	}

	id := uuid.New().String()
	inputPath := filepath.Join(s.uploadDir, id+ext)
	outputPath := filepath.Join(s.outputDir, id+".mid")

	if err := saveUpload(file, inputPath); err != nil {
		s.logger.Error("saving upload failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	defer func() {
		os.Remove(inputPath)
		s.scheduleSweep()
	}()

	if err := s.transcriber.Transcribe(inputPath, outputPath); err != nil {
		s.writeError(w, http.StatusInternalServerError, "transcription failed")
		return
	}

	base := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+".mid"))
	http.ServeFile(w, r, outputPath)
}

func saveUpload(src io.Reader, dest string) error {
	dst, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}

func allowedExtension(ext string) bool {
	for _, allowed := range constants.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.ErrorResponse{Error: message})
}
