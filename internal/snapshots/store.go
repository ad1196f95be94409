package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
)

// Store persists the most recent scoreboard per league so the fetcher can
// serve data immediately after a restart instead of waiting out a fetch.
type Store struct {
	basePath string
}

// NewStore constructs a filesystem-backed store rooted at basePath.
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// BasePath exposes the store root path (primarily for testing).
func (s *Store) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

func (s *Store) snapshotPath(league domain.LeagueID) string {
	return filepath.Join(s.basePath, fmt.Sprintf("%s.json", league))
}

// Write persists the scoreboard for its league. The write is atomic: data
// lands in a temp file first and is renamed into place. Writing an identical
// payload is a no-op so repeated polls do not churn the disk.
func (s *Store) Write(snapshot domain.ScoreboardSnapshot) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if !snapshot.League.Known() {
		return fmt.Errorf("unknown league %q", snapshot.League)
	}

	target := s.snapshotPath(snapshot.League)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// Load reads the persisted scoreboard for a league. A missing snapshot is
// reported via os.IsNotExist on the returned error.
func (s *Store) Load(league domain.LeagueID) (domain.ScoreboardSnapshot, error) {
	var snapshot domain.ScoreboardSnapshot
	if s == nil {
		return snapshot, errors.New("snapshot store not configured")
	}
	if !league.Known() {
		return snapshot, fmt.Errorf("unknown league %q", league)
	}

	f, err := os.Open(s.snapshotPath(league))
	if err != nil {
		return snapshot, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&snapshot); err != nil {
		return domain.ScoreboardSnapshot{}, err
	}
	if snapshot.League == "" {
		snapshot.League = league
	}
	return snapshot, nil
}
