package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/hoangkien2400-crypto/thongkesosach/internal/apperror"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/ledger"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/logging"
)

var log = logging.GetLogger()

// Delimiter used for CSV output; configurable via SetDelimiter.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Write serializes the rows to the given path, choosing the format by
// extension: .csv is written as CSV, everything else as xlsx.
func Write(rows []Row, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return WriteCSV(rows, path)
	}
	return WriteXLSX(rows, path)
}

// WriteXLSX writes the rows to an xlsx workbook with a single statistics
// sheet. Positions are written as numbers, summary positions as empty cells.
func WriteXLSX(rows []Row, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return &apperror.ExportError{Path: path, Err: err}
	}

	header := []interface{}{"STT", "Nội dung chi tiêu", "Số tiền (VNĐ)"}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return &apperror.ExportError{Path: path, Err: err}
	}

	for i, row := range rows {
		var position interface{} = ""
		if row.Position != "" {
			n, err := strconv.Atoi(row.Position)
			if err == nil {
				position = n
			} else {
				position = row.Position
			}
		}
		cells := []interface{}{position, row.Name, row.Amount.InexactFloat64()}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			return &apperror.ExportError{Path: path, Err: err}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return &apperror.ExportError{Path: path, Err: err}
	}

	log.WithField(logging.FieldOutputFile, path).
		WithField(logging.FieldCount, len(rows)).
		Info("Wrote xlsx export")
	return nil
}

// WriteCSV writes the rows to a CSV file using the configured delimiter.
func WriteCSV(rows []Row, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return &apperror.ExportError{Path: path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return &apperror.ExportError{Path: path, Err: err}
	}

	log.WithField(logging.FieldOutputFile, path).
		WithField(logging.FieldCount, len(rows)).
		Info("Wrote CSV export")
	return nil
}

// ReadEntriesCSV reads expense entries from a CSV file with the export's
// column layout. Summary rows (empty position column) are skipped, so a
// previously exported file can be read back.
func ReadEntriesCSV(path string) ([]ledger.Entry, error) {
	log.WithField(logging.FieldInputFile, path).Info("Reading expense CSV")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []Row
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	entries := make([]ledger.Entry, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Position) == "" {
			continue
		}
		entries = append(entries, ledger.Entry{
			Name:   row.Name,
			Amount: row.Amount,
		})
	}

	log.WithField(logging.FieldCount, len(entries)).Info("Read expense entries")
	return entries, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	return nil
}
