package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CharterService/internal/catalog"
	"github.com/m04kA/SMC-CharterService/internal/domain"
)

func TestLoadFile_YAML(t *testing.T) {
	yachts, err := LoadFile("testdata/fleet.yaml")
	require.NoError(t, err)
	require.Len(t, yachts, 4)

	first := yachts[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "sea-breeze", first.Slug)
	assert.Equal(t, "Miami", first.Location.City)
	assert.Equal(t, 45.0, first.LengthFeet)
	assert.Equal(t, 2500.0, first.StartingPrice())
	assert.True(t, first.IsPublished)

	assert.False(t, yachts[3].IsPublished)
	assert.Zero(t, yachts[3].GuestCapacity)
}

func TestLoadFile_JSON(t *testing.T) {
	yachts, err := LoadFile("testdata/fleet.json")
	require.NoError(t, err)
	require.Len(t, yachts, 1)
	assert.Equal(t, 120.5, yachts[0].LengthFeet)
	assert.Equal(t, []string{"jacuzzi", "chef"}, yachts[0].AmenityCodes)
}

func TestLoadFile_UnsupportedFormat(t *testing.T) {
	_, err := LoadFile("testdata/fleet.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing yachts", `{}`},
		{"missing name", `{"yachts":[{"slug":"a"}]}`},
		{"bad slug", `{"yachts":[{"slug":"Sea Breeze","name":"x"}]}`},
		{"negative length", `{"yachts":[{"slug":"a","name":"x","lengthFeet":-1}]}`},
		{"fractional guests", `{"yachts":[{"slug":"a","name":"x","guestCapacity":2.5}]}`},
		{"zero hour tier", `{"yachts":[{"slug":"a","name":"x","priceTiers":[{"charterHours":0,"retailCents":1}]}]}`},
		{"duplicate amenity", `{"yachts":[{"slug":"a","name":"x","amenityCodes":["kayak","kayak"]}]}`},
		{"unknown field", `{"yachts":[{"slug":"a","name":"x","colour":"white"}]}`},
		{"not json", `{"yachts":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatJSON)
			assert.ErrorIs(t, err, ErrInvalidDataset)
		})
	}
}

func TestParse_DuplicateSlug(t *testing.T) {
	doc := "yachts:\n  - {slug: a, name: A}\n  - {slug: a, name: B}\n"
	_, err := Parse([]byte(doc), FormatYAML)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestSource(t *testing.T) {
	src, err := NewSource("testdata/fleet.yaml")
	require.NoError(t, err)

	yachts, err := src.ListYachts(context.Background())
	require.NoError(t, err)
	assert.Len(t, yachts, 3)

	filtered := catalog.Filter(yachts, catalog.FilterState{Amenities: []string{"jacuzzi"}})
	assert.Len(t, filtered, 2)

	y, err := src.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "aurora", y.Slug)

	_, err = src.GetByID(context.Background(), 4)
	assert.ErrorIs(t, err, ErrYachtNotFound)

	assert.Len(t, src.Yachts(), 4)

	locations, err := src.ListLocations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.LocationSummary{
		{City: "Nassau", Country: "Bahamas", YachtCount: 1},
		{City: "Fort Lauderdale", Country: "United States", YachtCount: 1},
		{City: "Miami", Country: "United States", YachtCount: 1},
	}, locations)
}
