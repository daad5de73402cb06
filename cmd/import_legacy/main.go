// Command import_legacy migrates a legacy storage.json export into the
// data.json document the server reads.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alazar/finance-backend/internal/importer"
)

func main() {
	source := flag.String("source", "storage.json", "path to the legacy storage.json export")
	dataDir := flag.String("data-dir", "data", "directory to write data.json into")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	raw, err := os.ReadFile(*source)
	if err != nil {
		logger.Error("Failed to read legacy export", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var legacy importer.LegacyStorage
	if err := json.Unmarshal(raw, &legacy); err != nil {
		logger.Error("Failed to parse legacy export", slog.String("error", err.Error()))
		os.Exit(1)
	}

	doc := importer.Transform(legacy)

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		logger.Error("Failed to create data dir", slog.String("error", err.Error()))
		os.Exit(1)
	}
	out := filepath.Join(*dataDir, "data.json")
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal document", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		logger.Error("Failed to write data file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Import complete",
		slog.String("file", out),
		slog.Int("clients", len(doc.Clients)),
		slog.Int("employees", len(doc.Employees)),
		slog.Int("fixed_expenses", len(doc.FixedExpenses)),
		slog.Int("incomes", len(doc.Incomes)),
	)
}
