package catalog

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seq renders a page bar as it is shown to the visitor.
func seq(pages []PageEntry) string {
	return fmt.Sprint(pages)
}

func TestPaginate_Indices(t *testing.T) {
	w := Paginate(37, 12, 2)

	assert.Equal(t, 12, w.StartIndex)
	assert.Equal(t, 24, w.EndIndex)
	assert.Equal(t, 4, w.TotalPages)
	assert.True(t, w.NeedsPagination)

	last := Paginate(37, 12, 4)
	assert.Equal(t, 36, last.StartIndex)
	assert.Equal(t, 37, last.EndIndex)
}

func TestPaginate_SinglePage(t *testing.T) {
	w := Paginate(12, 12, 1)
	assert.False(t, w.NeedsPagination)
	assert.Equal(t, 1, w.TotalPages)
	assert.Equal(t, "[1]", seq(w.Pages))
}

func TestPaginate_Empty(t *testing.T) {
	w := Paginate(0, 12, 3)

	assert.Equal(t, 0, w.TotalPages)
	assert.Equal(t, 1, w.CurrentPage)
	assert.Equal(t, 0, w.StartIndex)
	assert.Equal(t, 0, w.EndIndex)
	assert.False(t, w.NeedsPagination)
	assert.Empty(t, w.Pages)
}

func TestPaginate_ClampsPage(t *testing.T) {
	assert.Equal(t, 1, Paginate(37, 12, 0).CurrentPage)
	assert.Equal(t, 1, Paginate(37, 12, -4).CurrentPage)

	w := Paginate(37, 12, 99)
	assert.Equal(t, 4, w.CurrentPage)
	assert.Equal(t, 36, w.StartIndex)
}

func TestPaginate_DefaultPerPage(t *testing.T) {
	w := Paginate(30, 0, 1)
	assert.Equal(t, defaultItemsPerPage, w.ItemsPerPage)
	assert.Equal(t, 3, w.TotalPages)
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		total, current int
		want           string
	}{
		{1, 1, "[1]"},
		{5, 3, "[1 2 3 4 5]"},
		{10, 1, "[1 2 3 4 … 10]"},
		{10, 3, "[1 2 3 4 … 10]"},
		{10, 4, "[1 … 3 4 5 … 10]"},
		{10, 5, "[1 … 4 5 6 … 10]"},
		{10, 7, "[1 … 6 7 8 … 10]"},
		{10, 8, "[1 … 7 8 9 10]"},
		{10, 9, "[1 … 7 8 9 10]"},
		{10, 10, "[1 … 7 8 9 10]"},
		{6, 4, "[1 … 3 4 5 6]"},
		{6, 3, "[1 2 3 4 … 6]"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.current, tt.total), func(t *testing.T) {
			assert.Equal(t, tt.want, seq(PageNumbers(tt.total, tt.current)))
		})
	}
}

func TestPaginate_Coverage(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for _, k := range []int{1, 5, 12} {
			items := make([]int, n)
			for i := range items {
				items[i] = i
			}

			var joined []int
			for p := 1; p <= TotalPages(n, k); p++ {
				joined = append(joined, PageOf(items, Paginate(n, k, p))...)
			}

			if n == 0 {
				assert.Empty(t, joined)
				continue
			}
			assert.Equal(t, items, joined, "n=%d k=%d", n, k)
		}
	}
}

func TestPageOf_DoesNotAlias(t *testing.T) {
	items := []int{1, 2, 3, 4}
	page := PageOf(items, Paginate(4, 2, 1))

	page = append(page, 99)
	assert.Equal(t, []int{1, 2, 3, 4}, items)
	assert.Equal(t, []int{1, 2, 99}, page)
}

func TestGoToPage(t *testing.T) {
	p := Pagination{CurrentPage: 2, ItemsPerPage: 12}

	next, ok := p.GoToPage(4, 4)
	assert.True(t, ok)
	assert.Equal(t, 4, next.CurrentPage)

	for _, n := range []int{0, -1, 5} {
		same, ok := p.GoToPage(n, 4)
		assert.False(t, ok)
		assert.Equal(t, p, same)
	}
}

func TestWindow_PrevNext(t *testing.T) {
	first := Paginate(30, 10, 1)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())

	last := Paginate(30, 10, 3)
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())
}

func TestPageEntry_JSON(t *testing.T) {
	data, err := json.Marshal(PageNumbers(10, 5))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,"…",4,5,6,"…",10]`, string(data))

	var back []PageEntry
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, PageNumbers(10, 5), back)

	var bad PageEntry
	assert.Error(t, json.Unmarshal([]byte(`"..."`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`true`), &bad))
}
