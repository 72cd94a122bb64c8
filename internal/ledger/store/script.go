package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	internal "github.com/yuchingtw/trip-companion/internal"
	"github.com/yuchingtw/trip-companion/internal/ledger"
)

// ScriptStore talks to the spreadsheet's web-app endpoint: a GET
// returns the full row list as JSON, a POST with an action field
// performs add/edit/delete. The endpoint has no partial reads and no
// read-your-writes guarantee beyond "a later GET sees the write", which
// is why the service refetches instead of patching.
type ScriptStore struct {
	scriptURL string
	client    httpDoer
	timeout   time.Duration
	logger    *slog.Logger
}

func NewScriptStore(scriptURL string, timeout time.Duration, logger *slog.Logger) *ScriptStore {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ScriptStore{
		scriptURL: scriptURL,
		client:    &http.Client{Timeout: timeout},
		timeout:   timeout,
		logger:    logger,
	}
}

// WithHTTPClient overrides the HTTP client, for tests.
func (s *ScriptStore) WithHTTPClient(c httpDoer) *ScriptStore {
	s.client = c
	return s
}

// scriptRecord is the web app's row shape. The payment method travels
// in the "payer" field on both reads and writes.
type scriptRecord struct {
	RowIndex  int    `json:"rowIndex"`
	Date      string `json:"date"`
	Item      string `json:"item"`
	Payer     string `json:"payer"`
	AmountTWD int64  `json:"amountTwd"`
	AmountINR int64  `json:"amountInr"`
	Note      string `json:"note"`
}

func (s *ScriptStore) ListRecords(ctx context.Context) ([]ledger.Record, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.scriptURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ledger fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("script endpoint returned status %d", resp.StatusCode)
	}

	var rows []scriptRecord
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode ledger response: %w", err)
	}

	records := make([]ledger.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, ledger.Record{
			RowIndex:      row.RowIndex,
			Date:          row.Date,
			Item:          row.Item,
			PaymentMethod: row.Payer,
			AmountTWD:     row.AmountTWD,
			AmountINR:     row.AmountINR,
			Note:          row.Note,
		})
	}

	s.logger.Debug("ledger records fetched", "count", len(records))
	return records, nil
}

func (s *ScriptStore) Submit(ctx context.Context, payload ledger.MutationPayload) error {
	return s.post(ctx, payload)
}

func (s *ScriptStore) Delete(ctx context.Context, rowIndex int) error {
	return s.post(ctx, ledger.DeletePayload{
		Action:   ledger.ActionDelete,
		RowIndex: rowIndex,
	})
}

func (s *ScriptStore) post(ctx context.Context, body interface{}) error {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal write payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.scriptURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// text/plain keeps the web app from rejecting the preflighted request
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("ledger write failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("script endpoint returned status %d", resp.StatusCode)
	}

	return nil
}
