package sheets

import "context"

// ISheets defines the interface for the spreadsheet-backed config source.
// Implementations are safe for concurrent use.
type ISheets interface {
	// ReadRange returns the cell rows for a named range.
	ReadRange(ctx context.Context, sheetID, rangeName string) ([][]string, error)
}

// NewSheets creates a new config source client. Returns the interface.
func NewSheets(cfg Config) (ISheets, error) {
	if cfg.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}
	return newClientImpl(cfg), nil
}
