package jsonfile

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const tokensFile = "tokens.json"

type tokenSet struct {
	Tokens []string `json:"tokens"`
}

// TokenRepository keeps the active bearer tokens in memory and mirrors
// them to <dataDir>/tokens.json so logins survive restarts. A membership
// miss re-reads the file before answering: another process (or a previous
// incarnation) may have persisted a token this one never saw.
type TokenRepository struct {
	mu     sync.Mutex
	path   string
	active map[string]struct{}
	logger *slog.Logger
}

func NewTokenRepository(dataDir string, logger *slog.Logger) *TokenRepository {
	r := &TokenRepository{
		path:   filepath.Join(dataDir, tokensFile),
		active: make(map[string]struct{}),
		logger: logger,
	}
	r.mu.Lock()
	r.reloadLocked()
	r.mu.Unlock()
	return r
}

// Contains reports membership, lazily reconciling from disk on a miss.
func (r *TokenRepository) Contains(ctx context.Context, token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active[token]; ok {
		return true
	}
	r.reloadLocked()
	_, ok := r.active[token]
	return ok
}

// Add inserts the token and persists the set.
func (r *TokenRepository) Add(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[token] = struct{}{}
	return r.persistLocked()
}

// Remove deletes the token and persists the set. Unknown tokens are a
// no-op success.
func (r *TokenRepository) Remove(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, token)
	return r.persistLocked()
}

// reloadLocked merges tokens persisted on disk into the in-memory set.
// Tokens already in memory are kept: an on-disk set lagging behind memory
// must not revoke a token the process just issued.
func (r *TokenRepository) reloadLocked() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Error("Error loading tokens file", slog.String("error", err.Error()))
		}
		return
	}
	var set tokenSet
	if err := json.Unmarshal(data, &set); err != nil {
		r.logger.Error("Error parsing tokens file", slog.String("error", err.Error()))
		return
	}
	for _, t := range set.Tokens {
		r.active[t] = struct{}{}
	}
}

func (r *TokenRepository) persistLocked() error {
	tokens := make([]string, 0, len(r.active))
	for t := range r.active {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return writeJSONFile(r.path, tokenSet{Tokens: tokens})
}
