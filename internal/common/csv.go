// Package common provides shared CSV reading and writing helpers.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bankaustria-csv/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var log = logrus.New()

// Delimiter used for the normalized output CSV.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// DecoderFor returns the text decoder for a configured charset name.
// Bank Austria exports ship in a Latin-1 family encoding.
func DecoderFor(charset string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "iso-8859-15", "latin9":
		return charmap.ISO8859_15.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "utf-8", "utf8":
		return unicode.UTF8.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
}

// ReadRawRows tokenizes a semicolon delimited bank export into raw rows,
// decoding from the given charset first. Row order is preserved; the
// header row is returned as row 0.
func ReadRawRows(r io.Reader, charset string) ([][]string, error) {
	decoder, err := DecoderFor(charset)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(transform.NewReader(r, decoder))
	cr.Comma = ';'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		log.WithError(err).Error("Failed to tokenize CSV input")
		return nil, fmt.Errorf("error reading CSV rows: %w", err)
	}
	return rows, nil
}

// ReadRawRowsFromFile reads a bank export file into raw rows.
func ReadRawRowsFromFile(filePath, charset string) ([][]string, error) {
	log.WithField("file", filePath).Info("Reading bank export file")

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		log.WithError(err).Error("Failed to open export file")
		return nil, fmt.Errorf("error opening export file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return ReadRawRows(file, charset)
}

// WriteTransactionsToCSV writes transactions to a CSV file in a
// standardized format. All output paths go through this function so the
// delimiter and amount formatting stay consistent.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithField("count", len(transactions)).Info("Successfully wrote transactions to CSV file")
	return nil
}
