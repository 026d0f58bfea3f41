// Package sheet is the tabular storage boundary: it persists the
// flattened records and the ranked analysis as spreadsheet files and
// reads entry sheets back for the analysis stage.
package sheet

import (
	"fmt"
	"strings"
)

// Codec writes and reads a rectangular table of string cells.
type Codec interface {
	Ext() string
	Write(path string, rows [][]string) error
	Read(path string) ([][]string, error)
}

// ByFormat returns the codec for a -format flag value.
func ByFormat(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "xlsx":
		return XLSX{}, nil
	case "csv":
		return CSV{}, nil
	default:
		return nil, fmt.Errorf("unknown sheet format %q (want xlsx or csv)", format)
	}
}
