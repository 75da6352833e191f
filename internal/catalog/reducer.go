package catalog

import "net/url"

// View is the state of the listing page.
type View struct {
	Filters    FilterState
	Pagination Pagination
}

// NewView returns the first page with no filters.
func NewView(itemsPerPage int) View {
	if itemsPerPage <= 0 {
		itemsPerPage = defaultItemsPerPage
	}
	return View{
		Filters:    NewFilterState(),
		Pagination: Pagination{CurrentPage: 1, ItemsPerPage: itemsPerPage},
	}
}

// Event is a user interaction with the listing page.
type Event interface {
	event()
}

// FilterChanged replaces the selection of one dimension.
type FilterChanged struct {
	Dimension Dimension
	Values    []string
}

// PageChanged requests a move to another page.
type PageChanged struct {
	Page int
}

// URLChanged replaces the filters with those decoded from a navigation.
type URLChanged struct {
	Query url.Values
}

func (FilterChanged) event() {}
func (PageChanged) event()   {}
func (URLChanged) event()    {}

// Reduce applies ev to v. totalItems is the size of the filtered list the
// page change is checked against.
//
// Changing filters, directly or through the URL, sends the visitor back to
// page 1. A page change outside the list, and a change of an unknown
// dimension, leave v as it was.
func Reduce(v View, ev Event, totalItems int) View {
	switch e := ev.(type) {
	case FilterChanged:
		next, ok := v.Filters.With(e.Dimension, e.Values...)
		if !ok {
			return v
		}
		v.Filters = next
		v.Pagination.CurrentPage = 1

	case URLChanged:
		v.Filters = Decode(e.Query)
		v.Pagination.CurrentPage = 1

	case PageChanged:
		v.Pagination, _ = v.Pagination.GoToPage(e.Page, TotalPages(totalItems, v.Pagination.ItemsPerPage))
	}
	return v
}
