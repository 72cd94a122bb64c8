package store

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	internal "github.com/yuchingtw/trip-companion/internal"
	ledgerDatamodel "github.com/yuchingtw/trip-companion/internal/core/datamodel/ledger"
	"github.com/yuchingtw/trip-companion/internal/ledger"
)

// SheetsStore reads expense rows straight from the spreadsheet through
// the Sheets API. Writes are delegated to the web-app endpoint: the
// sheet's own script is the only thing that knows how to assign row
// indexes and shift rows on delete.
type SheetsStore struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
	writer        ledger.Store
	logger        *slog.Logger
}

func NewSheetsStore(ctx context.Context, cfg internal.LedgerStoreConfig, writer ledger.Store, logger *slog.Logger) (*SheetsStore, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	sheetName := cfg.SheetName
	if sheetName == "" {
		sheetName = "Expenses"
	}

	return &SheetsStore{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     sheetName,
		writer:        writer,
		logger:        logger,
	}, nil
}

func (s *SheetsStore) ListRecords(ctx context.Context) ([]ledger.Record, error) {
	rng := fmt.Sprintf("%s!A2:H", s.sheetName)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}

	records := make([]ledger.Record, 0, len(resp.Values))
	for i, row := range resp.Values {
		if len(row) == 0 {
			continue
		}

		r := ledger.Record{
			Date:          cell(row, ledgerDatamodel.ColDate),
			Item:          cell(row, ledgerDatamodel.ColItem),
			PaymentMethod: cell(row, ledgerDatamodel.ColPaymentMethod),
			AmountTWD:     cellInt(row, ledgerDatamodel.ColAmountTWD),
			AmountINR:     cellInt(row, ledgerDatamodel.ColAmountINR),
			Note:          cell(row, ledgerDatamodel.ColNote),
		}

		// row 1 is the header, so data row i sits at sheet row i+2
		r.RowIndex = i + 2
		if idx := cellInt(row, ledgerDatamodel.ColRowIndex); idx > 0 {
			r.RowIndex = int(idx)
		}

		if r.Item == "" && r.AmountTWD == 0 && r.AmountINR == 0 {
			continue
		}
		records = append(records, r)
	}

	s.logger.Debug("ledger records read from sheet", "count", len(records))
	return records, nil
}

func (s *SheetsStore) Submit(ctx context.Context, payload ledger.MutationPayload) error {
	return s.writer.Submit(ctx, payload)
}

func (s *SheetsStore) Delete(ctx context.Context, rowIndex int) error {
	return s.writer.Delete(ctx, rowIndex)
}

func cell(row []interface{}, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[col]))
}

func cellInt(row []interface{}, col int) int64 {
	raw := cell(row, col)
	if raw == "" {
		return 0
	}
	raw = strings.ReplaceAll(raw, ",", "")
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int64(f)
	}
	return 0
}
