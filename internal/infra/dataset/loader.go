// Package dataset loads a yacht catalog bundled as a YAML or JSON file.
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "yachts.schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("dataset: add schema resource: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// Format is the encoding of a dataset file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath detects the format by file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// LoadFile reads, validates and decodes a dataset file
func LoadFile(path string) ([]domain.Yacht, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return Parse(raw, format)
}

// Parse validates raw against the dataset schema and decodes it. Yachts get
// IDs 1..n in file order.
func Parse(raw []byte, format Format) ([]domain.Yacht, error) {
	doc, err := normalize(raw, format)
	if err != nil {
		return nil, err
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}

	var f file
	if err := json.Unmarshal(doc, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	seen := make(map[string]struct{}, len(f.Yachts))
	yachts := make([]domain.Yacht, 0, len(f.Yachts))
	for i, rec := range f.Yachts {
		if _, dup := seen[rec.Slug]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, rec.Slug)
		}
		seen[rec.Slug] = struct{}{}

		yachts = append(yachts, rec.toDomain(int64(i+1)))
	}

	return yachts, nil
}

// Validate checks a JSON document against the embedded schema
func Validate(doc []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: not a valid JSON document: %v", ErrInvalidDataset, err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	return nil
}

// normalize converts the dataset to JSON so one schema covers both formats
func normalize(raw []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return raw, nil
	case FormatYAML:
		var v interface{}
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
		}
		doc, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

func (r yachtRecord) toDomain(id int64) domain.Yacht {
	tiers := make([]domain.PriceTier, len(r.PriceTiers))
	for i, t := range r.PriceTiers {
		tiers[i] = domain.PriceTier{CharterHours: t.CharterHours, RetailCents: t.RetailCents}
	}

	published := true
	if r.Published != nil {
		published = *r.Published
	}

	return domain.Yacht{
		ID:            id,
		Slug:          r.Slug,
		Name:          r.Name,
		Description:   r.Description,
		Location:      domain.Location{City: r.Location.City, Country: r.Location.Country},
		LengthFeet:    r.LengthFeet,
		GuestCapacity: r.GuestCapacity,
		Cabins:        r.Cabins,
		PriceTiers:    tiers,
		AmenityCodes:  r.AmenityCodes,
		ImageURLs:     r.ImageURLs,
		IsPublished:   published,
	}
}

// Source serves the published yachts of a dataset loaded at startup
type Source struct {
	yachts []domain.Yacht
}

// NewSource loads path into a Source
func NewSource(path string) (*Source, error) {
	yachts, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &Source{yachts: yachts}, nil
}

// ListYachts returns a copy of the published yachts
func (s *Source) ListYachts(_ context.Context) ([]domain.Yacht, error) {
	out := make([]domain.Yacht, 0, len(s.yachts))
	for _, y := range s.yachts {
		if y.IsPublished {
			out = append(out, y)
		}
	}
	return out, nil
}

// GetByID returns a published yacht by its position in the file
func (s *Source) GetByID(_ context.Context, id int64) (*domain.Yacht, error) {
	for _, y := range s.yachts {
		if y.ID == id && y.IsPublished {
			return &y, nil
		}
	}
	return nil, ErrYachtNotFound
}

// ListLocations groups published yachts by city and country, ordered like
// the Postgres location repository. Yachts without any location are skipped.
func (s *Source) ListLocations(_ context.Context) ([]domain.LocationSummary, error) {
	index := make(map[domain.Location]int)
	out := make([]domain.LocationSummary, 0)
	for _, y := range s.yachts {
		if !y.IsPublished || (y.Location.City == "" && y.Location.Country == "") {
			continue
		}
		if i, ok := index[y.Location]; ok {
			out[i].YachtCount++
			continue
		}
		index[y.Location] = len(out)
		out = append(out, domain.LocationSummary{City: y.Location.City, Country: y.Location.Country, YachtCount: 1})
	}

	slices.SortFunc(out, func(a, b domain.LocationSummary) int {
		if c := strings.Compare(a.Country, b.Country); c != 0 {
			return c
		}
		return strings.Compare(a.City, b.City)
	})
	return out, nil
}

// Yachts returns every yacht of the file, published or not
func (s *Source) Yachts() []domain.Yacht {
	return slices.Clone(s.yachts)
}
