package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		state FilterState
		want  []int64
	}{
		{"zero value selects all", FilterState{}, []int64{1, 2, 3, 4, 5, 6}},
		{"all sentinels select all", NewFilterState(), []int64{1, 2, 3, 4, 5, 6}},
		{
			name:  "location and duration",
			state: FilterState{Location: "miami", Duration: "4"},
			want:  []int64{1, 6},
		},
		{
			name:  "location duration length",
			state: FilterState{Location: "miami", Duration: "4", Length: Length50To90},
			want:  []int64{6},
		},
		{
			name:  "amenities and passengers",
			state: FilterState{Amenities: []string{"jacuzzi", "jet_ski"}, Passengers: Passengers10Plus},
			want:  []int64{2, 4},
		},
		{
			name:  "budget and passengers",
			state: FilterState{Budget: BudgetUpTo5000, Passengers: Passengers6},
			want:  []int64{1, 2},
		},
		{
			name:  "garbage length hides everything",
			state: FilterState{Length: "foo"},
			want:  []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(fleet(), tt.state)))
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := fleet()
	before := fleet()

	out := Filter(in, FilterState{Length: LengthOver90})
	require.Len(t, out, 1)
	out[0].Name = "changed"

	assert.Equal(t, before, in)
}

func TestFilter_EmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, FilterState{Location: "miami"}))
	assert.NotNil(t, Filter(nil, FilterState{}))
}

func TestFilter_Idempotent(t *testing.T) {
	for _, s := range sampleStates() {
		t.Run(s.QueryString(), func(t *testing.T) {
			once := Filter(fleet(), s)
			assert.Equal(t, once, Filter(once, s))
		})
	}
}

func TestFilter_AgreesWithMatches(t *testing.T) {
	for _, s := range sampleStates() {
		want := []int64{}
		for _, y := range fleet() {
			if Matches(&y, s) {
				want = append(want, y.ID)
			}
		}
		assert.Equal(t, want, ids(Filter(fleet(), s)), s.QueryString())
	}
}

func TestFilter_Monotonic(t *testing.T) {
	extra := map[Dimension][]string{
		DimensionLocation:   {"miami", "united", "bahamas"},
		DimensionDuration:   {"4", "8"},
		DimensionLength:     {string(LengthUpTo50), string(Length50To90), string(LengthOver90)},
		DimensionBudget:     {string(BudgetUpTo5000), string(Budget5000To10000)},
		DimensionAmenities:  {"jacuzzi", "kayak"},
		DimensionPassengers: {string(Passengers4), string(Passengers10Plus)},
	}

	for _, s := range sampleStates() {
		base := Filter(fleet(), s)
		for dim, values := range extra {
			if s.IsActive(dim) {
				continue
			}
			for _, v := range values {
				narrowed, ok := s.With(dim, v)
				require.True(t, ok)

				got := Filter(fleet(), narrowed)
				assert.LessOrEqual(t, len(got), len(base), "%s + %s=%s", s.QueryString(), dim, v)
				assert.Subset(t, ids(base), ids(got))
			}
		}
	}
}
