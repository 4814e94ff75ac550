package server

import (
	"os"
	"path/filepath"
	"time"
)

// staleAfter is how long a leftover upload or output file may sit before
// the janitor removes it. Outputs are served straight from the handler,
// so anything this old belongs to an abandoned request.
const staleAfter = time.Hour

// scheduleSweep kicks a debounced janitor pass. Request bursts collapse
// into a single sweep.
func (s *Server) scheduleSweep() {
	s.sweep(s.removeStale)
}

func (s *Server) removeStale() {
	for _, dir := range []string{s.uploadDir, s.outputDir} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			info, err := entry.Info()
			if err != nil || info.IsDir() {
				continue
			}
			if time.Since(info.ModTime()) > staleAfter {
				path := filepath.Join(dir, entry.Name())
				if err := os.Remove(path); err == nil {
					s.logger.Info("removed stale file", "path", path)
				}
			}
		}
	}
}
