package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"minhsangitdev/beerpriceworker/internal/product"
	perrors "minhsangitdev/beerpriceworker/pkg/errors"
)

// Exporter writes a batch of records to a sink
type Exporter interface {
	// Export writes the records and returns the output path
	Export(records []product.Record) (string, error)
}

// CSVExporter writes one combined CSV per crawl date into the output
// directory. Each cycle rewrites the current day's file with the full
// latest batch.
type CSVExporter struct {
	dir string
}

// NewCSVExporter creates a CSV exporter writing into dir
func NewCSVExporter(dir string) *CSVExporter {
	return &CSVExporter{dir: dir}
}

// Export writes the records as CSV in the fixed unified column order
func (e *CSVExporter) Export(records []product.Record) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", perrors.NewExport("csv", "output directory is not writable", err)
	}

	path := filepath.Join(e.dir, fmt.Sprintf("all_beer_prices_%s.csv", time.Now().Format("20060102")))
	f, err := os.Create(path)
	if err != nil {
		return "", perrors.NewExport("csv", "output file cannot be created", err)
	}
	defer f.Close()

	// BOM so spreadsheet tools pick up UTF-8 for the Vietnamese names
	if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return "", perrors.NewExport("csv", "write failed", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(product.CSVHeader()); err != nil {
		return "", perrors.NewExport("csv", "header write failed", err)
	}
	for _, record := range records {
		if err := w.Write(record.CSVRow()); err != nil {
			return "", perrors.NewExport("csv", "row write failed", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", perrors.NewExport("csv", "flush failed", err)
	}
	return path, nil
}
