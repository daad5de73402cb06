package services

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
)

// stateFiles are the persisted JSON files a snapshot copies.
var stateFiles = []string{"data.json", "auth.json", "tokens.json"}

// BackupService copies the persisted state files into timestamped
// directories under <dataDir>/backups on a cron schedule, keeping only the
// newest snapshots.
type BackupService struct {
	dataDir string
	keep    int
	logger  *slog.Logger
	cron    *cron.Cron
}

func NewBackupService(dataDir string, keep int, logger *slog.Logger) *BackupService {
	if keep <= 0 {
		keep = 10
	}
	return &BackupService{dataDir: dataDir, keep: keep, logger: logger}
}

// Start registers the snapshot job under the given cron schedule and
// starts the scheduler. An empty schedule disables backups.
func (s *BackupService) Start(schedule string) error {
	if schedule == "" {
		return nil
	}
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(schedule, func() {
		if err := s.Snapshot(); err != nil {
			s.logger.Error("Backup snapshot failed", slog.String("error", err.Error()))
		}
	}); err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", schedule, err)
	}
	s.cron.Start()
	s.logger.Info("Backup scheduler started", slog.String("schedule", schedule))
	return nil
}

// Stop halts the scheduler, waiting for a running snapshot to finish.
func (s *BackupService) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Snapshot copies the state files that exist into a fresh timestamped
// directory, then prunes snapshots beyond the retention count.
func (s *BackupService) Snapshot() error {
	dest := filepath.Join(s.dataDir, "backups", time.Now().Format("20060102-150405"))
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("failed to create backup dir: %w", err)
	}

	copied := 0
	for _, name := range stateFiles {
		data, err := os.ReadFile(filepath.Join(s.dataDir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dest, name), data, 0o644); err != nil {
			return fmt.Errorf("failed to write backup of %s: %w", name, err)
		}
		copied++
	}
	s.logger.Info("Backup snapshot written", slog.String("dir", dest), slog.Int("files", copied))

	return s.prune()
}

func (s *BackupService) prune() error {
	root := filepath.Join(s.dataDir, "backups")
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	if len(dirs) <= s.keep {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(dirs)
	for _, name := range dirs[:len(dirs)-s.keep] {
		if err := os.RemoveAll(filepath.Join(root, name)); err != nil {
			return fmt.Errorf("failed to prune backup %s: %w", name, err)
		}
	}
	return nil
}
