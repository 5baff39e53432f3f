// Package dataset decodes CDF allocation records and province registries from
// the embedded snapshot or from files on disk.
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"cdf-insights/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed cdf_allocations.json
var embeddedAllocations []byte

//go:embed provinces.json
var embeddedProvinces []byte

var (
	ErrUnsupportedFile = errors.New("unsupported dataset file type")
	ErrMissingColumn   = errors.New("missing required column")
	ErrEmptyRegistry   = errors.New("province registry is empty")
)

// RawRecord is a decoded record together with its position in the source and
// any per-record decoding error
type RawRecord struct {
	Index  int
	Record models.AllocationRecord
	Err    error
}

// Source supplies allocation records and the province registry
type Source interface {
	Name() string
	Records(ctx context.Context) ([]RawRecord, error)
	Provinces(ctx context.Context) ([]models.Province, error)
}

// EmbeddedSource serves the dataset compiled into the binary
type EmbeddedSource struct{}

// NewEmbeddedSource creates a source backed by the embedded snapshot
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

func (s *EmbeddedSource) Name() string {
	return "embedded"
}

func (s *EmbeddedSource) Records(_ context.Context) ([]RawRecord, error) {
	return DecodeRecordsJSON(bytes.NewReader(embeddedAllocations))
}

func (s *EmbeddedSource) Provinces(_ context.Context) ([]models.Province, error) {
	return DecodeProvincesJSON(bytes.NewReader(embeddedProvinces))
}

// FileSource reads records from a JSON or CSV file and the registry from a
// JSON or YAML file. When ProvincesPath is empty the embedded registry is used.
type FileSource struct {
	RecordsPath   string
	ProvincesPath string
}

// NewFileSource creates a file-backed source
func NewFileSource(recordsPath, provincesPath string) *FileSource {
	return &FileSource{RecordsPath: recordsPath, ProvincesPath: provincesPath}
}

func (s *FileSource) Name() string {
	return "file:" + s.RecordsPath
}

func (s *FileSource) Records(_ context.Context) ([]RawRecord, error) {
	f, err := os.Open(s.RecordsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open records file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(s.RecordsPath)) {
	case ".json":
		return DecodeRecordsJSON(f)
	case ".csv":
		return DecodeRecordsCSV(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, s.RecordsPath)
	}
}

func (s *FileSource) Provinces(ctx context.Context) ([]models.Province, error) {
	if s.ProvincesPath == "" {
		return NewEmbeddedSource().Provinces(ctx)
	}

	var decode func(io.Reader) ([]models.Province, error)
	switch strings.ToLower(filepath.Ext(s.ProvincesPath)) {
	case ".json":
		decode = DecodeProvincesJSON
	case ".yaml", ".yml":
		decode = DecodeProvincesYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, s.ProvincesPath)
	}

	f, err := os.Open(s.ProvincesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open provinces file: %w", err)
	}
	defer f.Close()

	return decode(f)
}

// ErrMissingAmount marks a JSON record whose amount is absent, null or blank
var ErrMissingAmount = errors.New("amount is required")

// jsonRecord keeps the amount raw so an absent or null value can be told
// apart from a real zero
type jsonRecord struct {
	Constituency string          `json:"constituency"`
	Category     string          `json:"category"`
	SubCategory  string          `json:"subCategory"`
	Amount       json.RawMessage `json:"amount"`
}

// DecodeRecordsJSON decodes a JSON array of records. Elements that fail to
// decode are returned with Err set rather than aborting the whole array.
func DecodeRecordsJSON(r io.Reader) ([]RawRecord, error) {
	var elements []json.RawMessage
	if err := json.NewDecoder(r).Decode(&elements); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	records := make([]RawRecord, len(elements))
	for i, el := range elements {
		records[i] = decodeJSONRecord(i, el)
	}
	return records, nil
}

func decodeJSONRecord(index int, el json.RawMessage) RawRecord {
	raw := RawRecord{Index: index, Record: models.AllocationRecord{Position: index}}

	var rec jsonRecord
	if err := json.Unmarshal(el, &rec); err != nil {
		raw.Err = fmt.Errorf("record %d: %w", index, err)
		return raw
	}
	raw.Record.Constituency = rec.Constituency
	raw.Record.Category = rec.Category
	raw.Record.SubCategory = rec.SubCategory

	amount, err := jsonAmount(rec.Amount)
	if err != nil {
		raw.Err = fmt.Errorf("record %d: %w", index, err)
		return raw
	}
	raw.Record.Amount = amount
	return raw
}

// jsonAmount accepts a JSON number or a string in the loose CSV format
func jsonAmount(msg json.RawMessage) (decimal.Decimal, error) {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return decimal.Zero, ErrMissingAmount
	}
	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return decimal.Zero, err
		}
		if strings.TrimSpace(text) == "" {
			return decimal.Zero, ErrMissingAmount
		}
		return ParseAmount(text)
	}
	amount, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrMalformedAmount, trimmed)
	}
	return amount, nil
}

var (
	ErrMalformedAmount = errors.New("malformed amount")

	// plainAmount is what remains once sign, currency prefix and separators are gone
	plainAmount = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// ParseAmount reads a loosely formatted amount such as "K 1,250.50" or the
// spreadsheet form "1.39E+07". Only a leading sign, a leading "K" or "ZMW",
// thousands commas and spaces are tolerated; anything else is
// ErrMalformedAmount. Blank values are zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	body := strings.TrimSpace(raw)
	if body == "" {
		return decimal.Zero, nil
	}

	sign := ""
	if body[0] == '-' || body[0] == '+' {
		sign, body = body[:1], body[1:]
	}
	upper := strings.ToUpper(body)
	for _, prefix := range []string{"ZMW", "K"} {
		if strings.HasPrefix(upper, prefix) {
			body = body[len(prefix):]
			break
		}
	}
	body = strings.NewReplacer(",", "", " ", "").Replace(body)

	if !plainAmount.MatchString(body) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
	}
	return decimal.NewFromString(sign + body)
}

// DecodeRecordsCSV decodes a CSV file whose header names the constituency,
// category, subcategory and amount columns in any order
func DecodeRecordsCSV(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make(map[string]int)
	for i, name := range header {
		key := strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(name))
		columns[strings.TrimPrefix(key, "\ufeff")] = i
	}
	for _, required := range []string{"constituency", "category", "amount"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var records []RawRecord
	for index := 0; ; index++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row %d: %w", index, err)
		}

		raw := RawRecord{
			Index: index,
			Record: models.AllocationRecord{
				Position:     index,
				Constituency: strings.TrimSpace(field(row, "constituency")),
				Category:     strings.TrimSpace(field(row, "category")),
				SubCategory:  strings.TrimSpace(field(row, "subcategory")),
			},
		}
		amount, err := ParseAmount(field(row, "amount"))
		if err != nil {
			raw.Err = fmt.Errorf("record %d: invalid amount %q: %w", index, field(row, "amount"), err)
		}
		raw.Record.Amount = amount
		records = append(records, raw)
	}

	return records, nil
}

// DecodeProvincesJSON decodes an ordered list of provinces
func DecodeProvincesJSON(r io.Reader) ([]models.Province, error) {
	var provinces []models.Province
	if err := json.NewDecoder(r).Decode(&provinces); err != nil {
		return nil, fmt.Errorf("failed to decode provinces: %w", err)
	}
	if len(provinces) == 0 {
		return nil, ErrEmptyRegistry
	}
	return provinces, nil
}

// DecodeProvincesYAML decodes an ordered list of provinces from YAML
func DecodeProvincesYAML(r io.Reader) ([]models.Province, error) {
	var provinces []models.Province
	if err := yaml.NewDecoder(r).Decode(&provinces); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode provinces: %w", err)
	}
	if len(provinces) == 0 {
		return nil, ErrEmptyRegistry
	}
	return provinces, nil
}
