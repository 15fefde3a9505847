package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsClient reads and appends ledger rows in a Google Sheet whose first
// row holds the column headers.
type SheetsClient struct {
	values  *sheets.SpreadsheetsValuesService
	sheetID string
	rng     string
}

// NewSheetsClient authenticates with a base64-encoded service-account key.
func NewSheetsClient(ctx context.Context, credentialsB64, sheetID, rng string) (*SheetsClient, error) {
	creds, err := base64.StdEncoding.DecodeString(strings.TrimSpace(credentialsB64))
	if err != nil {
		return nil, fmt.Errorf("decode sheets credentials: %w", err)
	}
	srv, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(creds),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &SheetsClient{values: srv.Spreadsheets.Values, sheetID: sheetID, rng: rng}, nil
}

// ReadRows returns every data row keyed by the header row.
func (c *SheetsClient) ReadRows(ctx context.Context) ([]map[string]string, error) {
	resp, err := c.values.Get(c.sheetID, c.rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get sheet values: %w", err)
	}
	return recordsFromValues(resp.Values), nil
}

// AppendRow appends values after the last data row, stored as typed.
func (c *SheetsClient) AppendRow(ctx context.Context, values []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{cellsFromStrings(values)}}
	_, err := c.values.Append(c.sheetID, c.rng, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append sheet row: %w", err)
	}
	return nil
}

// Close is a no-op; the sheets service holds no pooled resources.
func (c *SheetsClient) Close() error { return nil }

// recordsFromValues maps each row after the header to header→cell.
// Cells missing at the end of a short row read as empty strings, and
// entirely empty rows are dropped.
func recordsFromValues(values [][]interface{}) []map[string]string {
	if len(values) == 0 {
		return nil
	}
	header := make([]string, len(values[0]))
	for i, h := range values[0] {
		header[i] = strings.TrimSpace(fmt.Sprint(h))
	}

	out := make([]map[string]string, 0, len(values)-1)
	for _, row := range values[1:] {
		rec := make(map[string]string, len(header))
		empty := true
		for i, col := range header {
			if col == "" {
				continue
			}
			cell := ""
			if i < len(row) && row[i] != nil {
				cell = fmt.Sprint(row[i])
			}
			if cell != "" {
				empty = false
			}
			rec[col] = cell
		}
		if !empty {
			out = append(out, rec)
		}
	}
	return out
}

func cellsFromStrings(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
