// Package export renders dashboard datasets as downloadable files.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CSVContentType is the media type of WriteQuotedCSV output.
const CSVContentType = "text/csv"

// WriteQuotedCSV writes header and rows as CSV with every field wrapped in
// double quotes. Embedded quotes are doubled. Records are separated by "\n"
// and the last record has no terminator.
func WriteQuotedCSV(w io.Writer, header []string, rows [][]string) error {
	bw := bufio.NewWriter(w)
	writeRecord(bw, header)
	for _, row := range rows {
		bw.WriteByte('\n')
		writeRecord(bw, row)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// bufio.Writer errors are sticky and surface from Flush.
func writeRecord(bw *bufio.Writer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteByte('"')
		bw.WriteString(strings.ReplaceAll(field, `"`, `""`))
		bw.WriteByte('"')
	}
}
