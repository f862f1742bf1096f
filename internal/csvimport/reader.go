package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnreadableFile    = errors.New("csvimport: file could not be parsed")
	ErrEmptyFile         = errors.New("csvimport: file has no header row")
	ErrUnsupportedFormat = errors.New("csvimport: unsupported file format")
)

const utf8BOM = "\ufeff"

// Table is a parsed spreadsheet: ordered headers plus header->value rows
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// ReadFile parses an uploaded file, choosing the reader by extension (.csv or .xlsx).
// A file without extension is treated as CSV.
func ReadFile(filename string, data []byte) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv", "":
		return ReadCSV(bytes.NewReader(data))
	case ".xlsx":
		return ReadXLSX(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// ReadCSV reads comma-separated values. Rows may have fewer or more cells than the header.
func ReadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte(utf8BOM))))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	return buildTable(records)
}

// ReadXLSX reads the first worksheet of a workbook
func ReadXLSX(r io.Reader) (*Table, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w: no worksheet found", ErrUnreadableFile)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	return buildTable(rows)
}

func buildTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}
	if isBlank(headers) {
		return nil, ErrEmptyFile
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if _, seen := row[h]; seen {
				// the first column with a given header wins
				continue
			}
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
