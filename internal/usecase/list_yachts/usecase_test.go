package list_yachts

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CharterService/internal/catalog"
	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/pkg/logger"
)

type fakeSource struct {
	yachts []domain.Yacht
	err    error
}

func (f *fakeSource) ListYachts(context.Context) ([]domain.Yacht, error) {
	return f.yachts, f.err
}

type fakeMetrics struct {
	sizes  []int
	dims   [][]string
	errors int
}

func (f *fakeMetrics) ObserveCatalog(_ string, size int, dims []string) {
	f.sizes = append(f.sizes, size)
	f.dims = append(f.dims, dims)
}

func (f *fakeMetrics) ObserveCatalogError(string) { f.errors++ }

// fleet 30 яхт: четные 60 футов с джакузи, нечетные 40 футов
func fleet() []domain.Yacht {
	yachts := make([]domain.Yacht, 0, 30)
	for i := 1; i <= 30; i++ {
		y := domain.Yacht{ID: int64(i), Name: fmt.Sprintf("Yacht %d", i), LengthFeet: 40, GuestCapacity: 6}
		if i%2 == 0 {
			y.LengthFeet = 60
			y.AmenityCodes = []string{"jacuzzi"}
		}
		yachts = append(yachts, y)
	}
	return yachts
}

func newUseCase(src *fakeSource, m *fakeMetrics) *UseCase {
	return NewUseCase(src, "dataset", Settings{ItemsPerPage: 12, MaxPerPage: 60}, m, logger.NewNop())
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name      string
		query     url.Values
		page      int
		perPage   int
		wantIDs   []int64
		wantPage  int
		wantTotal int
		wantQuery string
	}{
		{
			name:      "no filters first page",
			wantIDs:   []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
			wantPage:  1,
			wantTotal: 30,
		},
		{
			name:      "last page is partial",
			page:      3,
			wantIDs:   []int64{25, 26, 27, 28, 29, 30},
			wantPage:  3,
			wantTotal: 30,
		},
		{
			name:      "page beyond range is clamped",
			query:     url.Values{"length": {"50-90"}},
			page:      9,
			perPage:   10,
			wantIDs:   []int64{22, 24, 26, 28, 30},
			wantPage:  2,
			wantTotal: 15,
			wantQuery: "length=50-90",
		},
		{
			name:      "amenities and length combine",
			query:     url.Values{"amenities": {"jacuzzi"}, "length": {"0-50"}},
			wantIDs:   []int64{},
			wantPage:  1,
			wantTotal: 0,
			wantQuery: "amenities=jacuzzi&length=0-50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMetrics{}
			uc := newUseCase(&fakeSource{yachts: fleet()}, m)

			resp, err := uc.Execute(context.Background(), &Request{Query: tt.query, Page: tt.page, ItemsPerPage: tt.perPage})
			require.NoError(t, err)

			ids := make([]int64, 0, len(resp.Yachts))
			for _, y := range resp.Yachts {
				ids = append(ids, y.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantPage, resp.Window.CurrentPage)
			assert.Equal(t, tt.wantTotal, resp.Window.TotalItems)
			assert.Equal(t, tt.wantQuery, resp.Query)
			assert.Equal(t, []int{tt.wantTotal}, m.sizes)
		})
	}
}

func TestExecute_ReportsActiveDimensions(t *testing.T) {
	m := &fakeMetrics{}
	uc := newUseCase(&fakeSource{yachts: fleet()}, m)

	resp, err := uc.Execute(context.Background(), &Request{Query: url.Values{"passengers": {"4"}, "budget": {"all"}}})
	require.NoError(t, err)

	assert.Equal(t, catalog.PassengerCount("4"), resp.Filters.Passengers)
	assert.Equal(t, [][]string{{"passengers"}}, m.dims)
}

func TestExecute_InvalidPerPage(t *testing.T) {
	uc := newUseCase(&fakeSource{}, &fakeMetrics{})

	_, err := uc.Execute(context.Background(), &Request{ItemsPerPage: 61})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SourceError(t *testing.T) {
	m := &fakeMetrics{}
	uc := newUseCase(&fakeSource{err: errors.New("connection reset")}, m)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, m.errors)
}
