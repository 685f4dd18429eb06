// Package baparser converts Bank Austria CSV account exports into
// normalized statement transactions. The plain CSV columns only carry part
// of the story; the real payee, merchant, location and reference data hide
// in free-text narrative fields encoded in a handful of fixed-layout and
// label-delimited micro-formats, which this package recognizes and
// extracts.
package baparser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bankaustria-csv/internal/common"
	"bankaustria-csv/internal/models"
	"bankaustria-csv/internal/parsererror"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Defaults for statements parsed without explicit options.
const (
	DefaultBankID  = "Bank-Austria"
	DefaultCharset = "iso-8859-1"
)

// Options control file-level parsing behavior.
type Options struct {
	BankID  string // statement bank id, DefaultBankID when empty
	Charset string // input file encoding, DefaultCharset when empty
}

func (o Options) bankID() string {
	if o.BankID == "" {
		return DefaultBankID
	}
	return o.BankID
}

func (o Options) charset() string {
	if o.Charset == "" {
		return DefaultCharset
	}
	return o.Charset
}

// Parse converts the ordered raw rows of one export file into a Statement.
// Rows whose amount column does not parse are reported and skipped; the
// remaining rows are still processed. The running balance is recomputed
// once, after the last row.
func Parse(rows [][]string) (*models.Statement, error) {
	return ParseWithOptions(rows, Options{})
}

// ParseWithOptions is Parse with an explicit bank id.
func ParseWithOptions(rows [][]string, opts Options) (*models.Statement, error) {
	stmt := &models.Statement{BankID: opts.bankID()}

	for i, row := range rows {
		tx, err := ParseRecord(row, i, stmt)
		if err != nil {
			log.WithError(err).WithField("row", i+1).Warn("Skipping unparseable row")
			continue
		}
		if tx == nil {
			continue
		}
		stmt.Transactions = append(stmt.Transactions, *tx)
	}

	models.RecalculateBalance(stmt)

	log.WithFields(logrus.Fields{
		"count":    len(stmt.Transactions),
		"currency": stmt.Currency,
	}).Info("Parsed Bank Austria statement")
	return stmt, nil
}

// ParseFile parses a Bank Austria CSV export file into a Statement.
func ParseFile(filePath string, opts Options) (*models.Statement, error) {
	rows, err := common.ReadRawRowsFromFile(filePath, opts.charset())
	if err != nil {
		return nil, err
	}
	return ParseWithOptions(rows, opts)
}

// ValidateFormat checks whether the file looks like a Bank Austria export:
// semicolon delimited, 15 columns, German header row.
func ValidateFormat(filePath string, opts Options) (bool, error) {
	rows, err := common.ReadRawRowsFromFile(filePath, opts.charset())
	if err != nil {
		return false, fmt.Errorf("error reading file for validation: %w", err)
	}
	if len(rows) == 0 {
		return false, nil
	}

	header := rows[0]
	if len(header) != numColumns {
		log.WithField("columns", len(header)).Info("Unexpected column count")
		return false, nil
	}
	if !strings.HasPrefix(header[colBookingDate], "Buchungsdatum") {
		log.WithField("header", header[colBookingDate]).Info("Unexpected header row")
		return false, nil
	}
	return true, nil
}

// ConvertToCSV converts a Bank Austria export file to the normalized CSV
// format. This is the main entry point used by the CLI.
func ConvertToCSV(inputFile, outputFile string, opts Options) error {
	stmt, err := ParseFile(inputFile, opts)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", inputFile, err)
	}
	return common.WriteTransactionsToCSV(stmt.Transactions, outputFile)
}

// BatchConvert converts all CSV files in a directory to the normalized
// format. Files that fail validation are skipped, not fatal.
func BatchConvert(inputDir, outputDir string, opts Options) (int, error) {
	log.WithFields(logrus.Fields{
		"inputDir":  inputDir,
		"outputDir": outputDir,
	}).Info("Starting batch conversion of Bank Austria exports")

	inputInfo, err := os.Stat(inputDir)
	if err != nil {
		return 0, fmt.Errorf("error accessing input directory: %w", err)
	}
	if !inputInfo.IsDir() {
		return 0, fmt.Errorf("input path is not a directory: %s", inputDir)
	}

	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, models.PermissionDirectory); err != nil {
			return 0, fmt.Errorf("error creating output directory: %w", err)
		}
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("error reading input directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			continue
		}

		inputFile := filepath.Join(inputDir, entry.Name())

		valid, err := ValidateFormat(inputFile, opts)
		if err != nil {
			log.WithError(err).WithField("file", inputFile).Warn("Error validating file, skipping")
			continue
		}
		if !valid {
			log.WithField("file", inputFile).Info("Not a Bank Austria export, skipping")
			continue
		}

		baseName := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		outputFile := filepath.Join(outputDir, baseName+"_processed.csv")

		if err := ConvertToCSV(inputFile, outputFile, opts); err != nil {
			log.WithError(err).WithField("file", inputFile).Warn("Error converting file, skipping")
			continue
		}
		count++
	}

	log.WithField("count", count).Info("Batch conversion completed")
	return count, nil
}

func rowError(field, value string, err error) *parsererror.ParseError {
	return &parsererror.ParseError{Parser: "bankaustria", Field: field, Value: value, Err: err}
}
