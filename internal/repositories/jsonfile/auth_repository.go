package jsonfile

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/alazar/finance-backend/internal/models"
	"github.com/alazar/finance-backend/internal/utils"
)

const authFile = "auth.json"

// Default credential pair written on first run.
const (
	DefaultUsername = "admin"
	DefaultPassword = "6Rm%HLz4"
)

// AuthRepository stores the singleton admin credential in
// <dataDir>/auth.json, initializing and self-healing it on load.
type AuthRepository struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

func NewAuthRepository(dataDir string, logger *slog.Logger) *AuthRepository {
	return &AuthRepository{path: filepath.Join(dataDir, authFile), logger: logger}
}

// Load returns the stored credential. A missing or unreadable file yields
// the default record, which is persisted immediately. A stored hash equal
// to the default plaintext username or to the record's own username means
// the file holds an unhashed or corrupted credential; it is rewritten with
// the default password's hash.
func (r *AuthRepository) Load(ctx context.Context) (models.AuthRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Error("Error loading auth file", slog.String("error", err.Error()))
		}
		return r.writeDefault()
	}

	var rec models.AuthRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		r.logger.Error("Error parsing auth file", slog.String("error", err.Error()))
		return r.writeDefault()
	}

	if rec.PasswordHash == DefaultUsername || rec.PasswordHash == rec.Username {
		r.logger.Warn("Stored password hash is invalid, regenerating")
		rec.PasswordHash = utils.LegacyHash(DefaultPassword)
		if err := writeJSONFile(r.path, rec); err != nil {
			return models.AuthRecord{}, err
		}
	}
	return rec, nil
}

// Save rewrites the credential file.
func (r *AuthRepository) Save(ctx context.Context, rec models.AuthRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeJSONFile(r.path, rec)
}

func (r *AuthRepository) writeDefault() (models.AuthRecord, error) {
	rec := models.AuthRecord{
		Username:     DefaultUsername,
		PasswordHash: utils.LegacyHash(DefaultPassword),
	}
	if err := writeJSONFile(r.path, rec); err != nil {
		return models.AuthRecord{}, err
	}
	return rec, nil
}
