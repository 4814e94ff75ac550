package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/tonescribe/tonescribe/constants"
	"github.com/tonescribe/tonescribe/pipeline"
	"github.com/tonescribe/tonescribe/util"
)

const serviceName = "tonescribe"

// Server is the HTTP collaborator around the transcription pipeline. It
// owns upload validation, temp-file lifecycle and the JSON error surface;
// the pipeline itself stays transport-free.
type Server struct {
	logger      *slog.Logger
	router      *mux.Router
	transcriber *pipeline.Transcriber
	uploadDir   string
	outputDir   string
	maxBytes    int64
	sweep       func(f func())
}

func New(logger *slog.Logger) (*Server, error) {
	s := &Server{
		logger:      logger,
		transcriber: pipeline.New(logger),
		uploadDir:   constants.GetUploadDir(),
		outputDir:   constants.GetOutputDir(),
		maxBytes:    constants.GetMaxUploadBytes(),
		sweep:       debounce.New(30 * time.Second),
	}
	if err := util.EnsureDir(s.uploadDir); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	if err := util.EnsureDir(s.outputDir); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/supported_formats", s.handleFormats).Methods("GET")
	router.HandleFunc("/transcribe", s.handleTranscribe).Methods("POST")
	router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	s.router = router
	return s, nil
}

// Handler returns the CORS-wrapped route handler.
func (s *Server) Handler() http.Handler {
	return cors.Default().Handler(s.router)
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Run(port int) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh

		s.logger.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
		}
		close(done)
	}()

	s.logger.Info("server starting", "port", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	<-done
	return nil
}
