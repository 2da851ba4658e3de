package studio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"podnest/internal/domain/source"
)

// The session file keeps the source list alive between CLI
// invocations. Losing it only loses the session; it is never required.
type sessionFile struct {
	Sources   []source.Source `json:"sources"`
	SavedAt   time.Time       `json:"saved_at"`
	SourceLen int             `json:"source_count"`
}

func (s *Studio) loadSession() {
	data, err := os.ReadFile(s.sessionPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).Warn("Failed to read session file")
		}
		return
	}

	var saved sessionFile
	if err := json.Unmarshal(data, &saved); err != nil {
		logrus.WithError(err).Warn("Session file corrupt, starting empty")
		return
	}

	s.store.Load(saved.Sources)
	logrus.WithField("sources", len(saved.Sources)).Info("Loaded session")
}

func (s *Studio) saveSession() {
	sources := s.store.List()
	saved := sessionFile{
		Sources:   sources,
		SavedAt:   time.Now(),
		SourceLen: len(sources),
	}

	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		logrus.WithError(err).Warn("Failed to marshal session")
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.sessionPath), 0755); err != nil {
		logrus.WithError(err).Warn("Failed to create session directory")
		return
	}
	if err := os.WriteFile(s.sessionPath, data, 0644); err != nil {
		logrus.WithError(err).Warn("Failed to save session")
	}
}

// sessionDirectory returns the directory holding the session file.
func sessionDirectory() string {
	if cacheDir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cacheDir, "podnest")
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".podnest", "cache")
	}
	if cwd, err := os.Getwd(); err == nil {
		return filepath.Join(cwd, "cache")
	}
	return "cache"
}
