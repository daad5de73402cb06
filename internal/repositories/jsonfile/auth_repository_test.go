package jsonfile_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alazar/finance-backend/internal/models"
	"github.com/alazar/finance-backend/internal/repositories/jsonfile"
	"github.com/alazar/finance-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthLoadInitializesDefaultRecord(t *testing.T) {
	dir := t.TempDir()
	repo := jsonfile.NewAuthRepository(dir, slog.Default())

	rec, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, jsonfile.DefaultUsername, rec.Username)
	assert.Equal(t, utils.LegacyHash(jsonfile.DefaultPassword), rec.PasswordHash)

	// The default record is persisted immediately.
	data, err := os.ReadFile(filepath.Join(dir, "auth.json"))
	require.NoError(t, err)
	var onDisk models.AuthRecord
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, rec, onDisk)
}

func TestAuthLoadSelfHealsPlaintextHash(t *testing.T) {
	dir := t.TempDir()
	// A record whose "hash" is the plaintext default username is corrupt.
	seed := models.AuthRecord{Username: "admin", PasswordHash: "admin"}
	data, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "auth.json"), data, 0o644))

	repo := jsonfile.NewAuthRepository(dir, slog.Default())
	rec, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, utils.LegacyHash(jsonfile.DefaultPassword), rec.PasswordHash)
}

func TestAuthLoadSelfHealsHashEqualToUsername(t *testing.T) {
	dir := t.TempDir()
	seed := models.AuthRecord{Username: "operator", PasswordHash: "operator"}
	data, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "auth.json"), data, 0o644))

	repo := jsonfile.NewAuthRepository(dir, slog.Default())
	rec, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "operator", rec.Username)
	assert.Equal(t, utils.LegacyHash(jsonfile.DefaultPassword), rec.PasswordHash)
}

func TestAuthLoadKeepsValidRecord(t *testing.T) {
	dir := t.TempDir()
	seed := models.AuthRecord{Username: "admin", PasswordHash: utils.LegacyHash("custom-password")}
	data, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "auth.json"), data, 0o644))

	repo := jsonfile.NewAuthRepository(dir, slog.Default())
	rec, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed, rec)
}
