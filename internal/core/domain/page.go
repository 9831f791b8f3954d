package domain

// DefaultPageSize is the number of rows shown per page when nothing else is configured.
const DefaultPageSize = 5

// PageQuery describes which slice of the table a caller wants to see.
type PageQuery struct {
	// Term filters records by case-insensitive substring. Empty means no filter.
	Term string

	// Page is the 1-based page number. Values below 1 are treated as 1.
	Page int

	// Size is the number of rows per page. Values below 1 fall back to DefaultPageSize.
	Size int
}

// Normalised returns the query with page and size clamped to usable values.
func (q PageQuery) Normalised() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size < 1 {
		q.Size = DefaultPageSize
	}
	return q
}

// Page is a disposable projection of the record store.
// It is never updated in place; callers derive a fresh one after each mutation.
type Page struct {
	// Items are the records visible on this page, in store order.
	Items []Hearing

	// Positions holds the store index of each item at projection time.
	Positions []int

	// Number is the 1-based page number that was projected.
	Number int

	// Size is the page size used for the projection.
	Size int

	// Count is the number of pages in the working set. Zero when nothing matches.
	Count int

	// Total is the number of records in the working set.
	Total int

	// Query is the search term the working set was filtered with.
	Query string
}

// IsEmpty reports whether the page holds no rows.
func (p Page) IsEmpty() bool {
	return len(p.Items) == 0
}

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool {
	return p.Number < p.Count
}

// HasPrev reports whether an earlier page exists.
func (p Page) HasPrev() bool {
	return p.Number > 1
}

// Row returns the record at a visible row, or false if the row is out of range.
func (p Page) Row(row int) (Hearing, bool) {
	if row < 0 || row >= len(p.Items) {
		return Hearing{}, false
	}
	return p.Items[row], true
}

// LastPage returns the highest page number a caller may navigate to.
// It is at least 1 so an empty table still has a page to show.
func (p Page) LastPage() int {
	if p.Count < 1 {
		return 1
	}
	return p.Count
}
