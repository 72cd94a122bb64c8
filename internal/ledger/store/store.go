package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	internal "github.com/yuchingtw/trip-companion/internal"
	"github.com/yuchingtw/trip-companion/internal/ledger"
)

// Backend names accepted in config.
const (
	BackendScript = "script"
	BackendSheets = "sheets"
	BackendMemory = "memory"
)

// httpDoer lets tests substitute the HTTP client.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// New builds the configured ledger store. The script backend does both
// reads and writes against the spreadsheet web app; the sheets backend
// reads through the Sheets API and delegates writes to the same web app
// endpoint, since the API has no notion of the append/edit/delete
// actions the sheet's script implements.
func New(ctx context.Context, cfg internal.LedgerStoreConfig, logger *slog.Logger) (ledger.Store, error) {
	switch cfg.Backend {
	case BackendScript:
		logger.Info("ledger store initialized", "backend", BackendScript)
		return NewScriptStore(cfg.ScriptURL, cfg.RequestTimeout, logger), nil

	case BackendSheets:
		writer := NewScriptStore(cfg.ScriptURL, cfg.RequestTimeout, logger)
		reader, err := NewSheetsStore(ctx, cfg, writer, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sheets backend: %w", err)
		}
		logger.Info("ledger store initialized", "backend", BackendSheets, "spreadsheet_id", cfg.SpreadsheetID)
		return reader, nil

	case BackendMemory:
		logger.Info("ledger store initialized", "backend", BackendMemory)
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unsupported ledger backend %q", cfg.Backend)
	}
}
