package services

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cdf-insights/internal/models"
	"cdf-insights/internal/validation"
)

var (
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrNoDataToExport          = errors.New("no data to export")
)

var exportHeader = []string{"Constituency", "Category", "SubCategory", "Amount"}

type exportService struct {
	metrics MetricsRecorderInterface
}

// NewExportService creates an exporter for filtered allocation records
func NewExportService(metrics MetricsRecorderInterface) ExportServiceInterface {
	return &exportService{metrics: metrics}
}

// ContentType returns the MIME type for a supported format
func (s *exportService) ContentType(format string) (string, error) {
	switch strings.ToLower(format) {
	case validation.FormatCSV:
		return "text/csv; charset=utf-8", nil
	case validation.FormatJSON:
		return "application/json; charset=utf-8", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExportFormat, format)
	}
}

// FileName builds the download name, e.g. cdf-allocations-2024-03-01.csv
func (s *exportService) FileName(format string, at time.Time) string {
	return fmt.Sprintf("cdf-allocations-%s.%s", at.Format("2006-01-02"), strings.ToLower(format))
}

// Export writes records to w in the requested format
func (s *exportService) Export(w io.Writer, records []models.AllocationRecord, format string) error {
	format = strings.ToLower(format)
	if _, err := s.ContentType(format); err != nil {
		s.metrics.IncrementCounter("export", map[string]string{"format": "unsupported", "status": "failed"})
		return err
	}
	if len(records) == 0 {
		s.metrics.IncrementCounter("export", map[string]string{"format": format, "status": "empty"})
		return ErrNoDataToExport
	}

	var err error
	switch format {
	case validation.FormatCSV:
		err = writeCSV(w, records)
	case validation.FormatJSON:
		err = writeJSON(w, records)
	}
	if err != nil {
		s.metrics.IncrementCounter("export", map[string]string{"format": format, "status": "failed"})
		return fmt.Errorf("failed to write %s export: %w", format, err)
	}

	s.metrics.IncrementCounter("export", map[string]string{"format": format, "status": "success"})
	s.metrics.RecordGauge("exported_records", float64(len(records)), nil)
	return nil
}

func writeCSV(w io.Writer, records []models.AllocationRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Constituency, r.Category, r.SubCategory, r.Amount.String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type exportRow struct {
	Constituency string `json:"Constituency"`
	Category     string `json:"Category"`
	SubCategory  string `json:"SubCategory"`
	Amount       string `json:"Amount"`
}

func writeJSON(w io.Writer, records []models.AllocationRecord) error {
	rows := make([]exportRow, len(records))
	for i, r := range records {
		rows[i] = exportRow{
			Constituency: r.Constituency,
			Category:     r.Category,
			SubCategory:  r.SubCategory,
			Amount:       r.Amount.String(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
