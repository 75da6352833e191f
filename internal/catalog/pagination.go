package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// EllipsisMarker stands for a run of hidden page numbers.
const EllipsisMarker = "…"

// maxPageButtons is how many page numbers are shown before the sequence is
// compressed with ellipses.
const maxPageButtons = 5

const defaultItemsPerPage = domain.DefaultItemsPerPage

// Pagination is the page the visitor is on.
type Pagination struct {
	CurrentPage  int
	ItemsPerPage int
}

// TotalPages is ceil(totalItems / perPage). It is 0 for an empty list.
func TotalPages(totalItems, perPage int) int {
	if totalItems <= 0 || perPage <= 0 {
		return 0
	}
	return (totalItems + perPage - 1) / perPage
}

// GoToPage moves to page n. Pages outside 1..totalPages are rejected and p
// is returned unchanged.
func (p Pagination) GoToPage(n, totalPages int) (Pagination, bool) {
	if !CanGoToPage(n, totalPages) {
		return p, false
	}
	p.CurrentPage = n
	return p, true
}

// CanGoToPage reports whether n is a page that exists.
func CanGoToPage(n, totalPages int) bool {
	return n >= 1 && n <= totalPages
}

// PageEntry is one button of the page-number bar: a page number or an
// ellipsis.
type PageEntry struct {
	Number   int
	Ellipsis bool
}

func page(n int) PageEntry { return PageEntry{Number: n} }

var ellipsis = PageEntry{Ellipsis: true}

func (e PageEntry) String() string {
	if e.Ellipsis {
		return EllipsisMarker
	}
	return strconv.Itoa(e.Number)
}

// MarshalJSON encodes a page as a number and an ellipsis as "…".
func (e PageEntry) MarshalJSON() ([]byte, error) {
	if e.Ellipsis {
		return json.Marshal(EllipsisMarker)
	}
	return json.Marshal(e.Number)
}

func (e *PageEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != EllipsisMarker {
			return fmt.Errorf("catalog: unexpected page entry %q", s)
		}
		*e = ellipsis
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("catalog: page entry must be a number or %q: %w", EllipsisMarker, err)
	}
	*e = page(n)
	return nil
}

// Window is the visible part of a list of totalItems items.
type Window struct {
	CurrentPage  int
	ItemsPerPage int
	TotalItems   int
	TotalPages   int
	// StartIndex and EndIndex bound the page as a half-open range.
	StartIndex int
	EndIndex   int
	// NeedsPagination is false when everything fits on one page.
	NeedsPagination bool
	Pages           []PageEntry
}

// Paginate computes the window of currentPage. The page is clamped to
// 1..TotalPages and a non-positive itemsPerPage falls back to
// domain.DefaultItemsPerPage.
func Paginate(totalItems, itemsPerPage, currentPage int) Window {
	if itemsPerPage <= 0 {
		itemsPerPage = defaultItemsPerPage
	}
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := TotalPages(totalItems, itemsPerPage)
	if currentPage > totalPages {
		currentPage = totalPages
	}
	if currentPage < 1 {
		currentPage = 1
	}

	start := (currentPage - 1) * itemsPerPage
	end := min(currentPage*itemsPerPage, totalItems)
	if start > end {
		start = end
	}

	return Window{
		CurrentPage:     currentPage,
		ItemsPerPage:    itemsPerPage,
		TotalItems:      totalItems,
		TotalPages:      totalPages,
		StartIndex:      start,
		EndIndex:        end,
		NeedsPagination: totalPages > 1,
		Pages:           PageNumbers(totalPages, currentPage),
	}
}

// PageNumbers builds the page-number bar: every page when there are at most
// five, otherwise the first and last page around a three page window, with
// an ellipsis for each hidden run.
func PageNumbers(totalPages, currentPage int) []PageEntry {
	if totalPages <= 0 {
		return []PageEntry{}
	}

	if totalPages <= maxPageButtons {
		pages := make([]PageEntry, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, page(i))
		}
		return pages
	}

	switch {
	case currentPage <= 3:
		return []PageEntry{page(1), page(2), page(3), page(4), ellipsis, page(totalPages)}
	case currentPage >= totalPages-2:
		return []PageEntry{page(1), ellipsis, page(totalPages - 3), page(totalPages - 2), page(totalPages - 1), page(totalPages)}
	default:
		return []PageEntry{page(1), ellipsis, page(currentPage - 1), page(currentPage), page(currentPage + 1), ellipsis, page(totalPages)}
	}
}

// HasPrev reports whether a previous page exists.
func (w Window) HasPrev() bool { return w.CurrentPage > 1 }

// HasNext reports whether a next page exists.
func (w Window) HasNext() bool { return w.CurrentPage < w.TotalPages }

// PageOf returns the items of the window.
func PageOf[T any](items []T, w Window) []T {
	start, end := w.StartIndex, w.EndIndex
	if end > len(items) {
		end = len(items)
	}
	if start > end {
		start = end
	}
	return items[start:end:end]
}
