package files

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// ErrLegacyFormat is returned when a .xls source is given and no legacy
// converter is available. Conversion of the old binary format is an
// external collaborator; the core never performs it.
var ErrLegacyFormat = errors.New("source is in legacy .xls format and no converter is configured")

// LegacyConverter converts an old binary-format workbook to .xlsx and
// returns the path of the converted copy.
type LegacyConverter interface {
	ConvertToXLSX(ctx context.Context, path string) (string, error)
}

// ResolveSource returns a readable .xlsx path for a source workbook,
// delegating .xls inputs to the converter when one is wired.
func ResolveSource(ctx context.Context, path string, conv LegacyConverter) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		if conv == nil {
			return "", ErrLegacyFormat
		}
		return conv.ConvertToXLSX(ctx, path)
	}
	return path, nil
}
