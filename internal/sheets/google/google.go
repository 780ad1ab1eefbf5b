package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	ports "fintrack/internal/sheets"
)

// Config selects the spreadsheet and credentials.
type Config struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsJSON string
	CredentialsFile string
}

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string

	mu      sync.Mutex
	sheetID *int64
}

// Ensure interface conformance
var _ ports.RecordExporter = (*Client)(nil)

// New creates a Sheets client using service account credentials.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	if strings.TrimSpace(cfg.SheetName) == "" {
		return nil, errors.New("missing sheet name")
	}

	svc, err := newSheetsService(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account
// credentials, falling back to GOOGLE_APPLICATION_CREDENTIALS.
func newSheetsService(ctx context.Context, cfg Config) (*gsheet.Service, error) {
	credentialsFile := strings.TrimSpace(cfg.CredentialsFile)
	if cfg.CredentialsJSON == "" && credentialsFile == "" {
		credentialsFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case cfg.CredentialsJSON != "":
		slog.InfoContext(ctx, "Using inline JSON credentials")
		credentialsJSON = []byte(cfg.CredentialsJSON)
	case credentialsFile != "":
		slog.InfoContext(ctx, "Reading credentials from file", "path", credentialsFile)
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = data
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	slog.InfoContext(ctx, "Google Sheets service created successfully")
	return service, nil
}

func (c *Client) idColumn(ctx context.Context) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, a1Range(c.sheetName, "A:A")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read id column: %w", err)
	}
	return resp.Values, nil
}

// AppendRecord implements ports.RecordExporter. Redelivered events find
// their row already present and are skipped.
func (c *Client) AppendRecord(ctx context.Context, row ports.Row) error {
	ids, err := c.idColumn(ctx)
	if err != nil {
		return err
	}
	if findRowIndex(ids, row.ID) >= 0 {
		slog.InfoContext(ctx, "Row already exported, skipping", "id", row.ID, "sheet", c.sheetName)
		return nil
	}

	values := [][]interface{}{row.Values()}
	if len(ids) == 0 {
		values = append([][]interface{}{toInterfaces(ports.Header)}, values...)
	}

	rng := a1Range(c.sheetName, "A:"+lastColumn(len(ports.Header)))
	_, err = c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, &gsheet.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}

	slog.InfoContext(ctx, "Exported record to Google Sheets", "id", row.ID, "kind", row.Kind, "sheet", c.sheetName)
	return nil
}

// DeleteRecord implements ports.RecordExporter.
func (c *Client) DeleteRecord(ctx context.Context, id string) (bool, error) {
	ids, err := c.idColumn(ctx)
	if err != nil {
		return false, err
	}
	idx := findRowIndex(ids, id)
	if idx < 0 {
		return false, nil
	}

	sheetID, err := c.resolveSheetID(ctx)
	if err != nil {
		return false, err
	}

	req := &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{{
			DeleteDimension: &gsheet.DeleteDimensionRequest{
				Range: &gsheet.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(idx),
					EndIndex:   int64(idx + 1),
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return false, fmt.Errorf("delete row %d: %w", idx+1, err)
	}

	slog.InfoContext(ctx, "Deleted record from Google Sheets", "id", id, "row", idx+1, "sheet", c.sheetName)
	return true, nil
}

// resolveSheetID looks up the numeric id of the worksheet once.
func (c *Client) resolveSheetID(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sheetID != nil {
		return *c.sheetID, nil
	}

	ss, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == c.sheetName {
			id := sh.Properties.SheetId
			c.sheetID = &id
			return id, nil
		}
	}
	return 0, fmt.Errorf("sheet %q not found in spreadsheet", c.sheetName)
}
