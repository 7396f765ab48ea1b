package model

// TypeFilterAll disables the category filter.
const TypeFilterAll = "all"

// DateRange selects how recently a document must have been updated.
type DateRange string

const (
	DateAll   DateRange = "all"
	DateToday DateRange = "today"
	DateWeek  DateRange = "week"
	DateMonth DateRange = "month"
	DateYear  DateRange = "year"
)

// Valid reports whether r is a known date range.
func (r DateRange) Valid() bool {
	switch r {
	case DateAll, DateToday, DateWeek, DateMonth, DateYear:
		return true
	}
	return false
}

// SizeRange buckets documents by size in MiB.
type SizeRange string

const (
	SizeAll    SizeRange = "all"
	SizeSmall  SizeRange = "small"
	SizeMedium SizeRange = "medium"
	SizeLarge  SizeRange = "large"
)

// Valid reports whether r is a known size range.
func (r SizeRange) Valid() bool {
	switch r {
	case SizeAll, SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// SortKey is the field the visible list is ordered by.
type SortKey string

const (
	SortByName SortKey = "name"
	SortByDate SortKey = "date"
	SortBySize SortKey = "size"
	SortByType SortKey = "type"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByDate, SortBySize, SortByType:
		return true
	}
	return false
}

// SortOrder is ascending or descending.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Valid reports whether o is a known sort order.
func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

// ViewMode is how the presentation layer lays out the list.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Valid reports whether m is a known view mode.
func (m ViewMode) Valid() bool {
	return m == ViewGrid || m == ViewList
}

// ViewParameters is the user-controlled display, filter and sort state.
// SelectedFolder "" means root, which is the unfiltered view.
type ViewParameters struct {
	SearchTerm     string    `json:"search_term"`
	SelectedFolder string    `json:"selected_folder"`
	TypeFilter     string    `json:"type_filter"`
	DateRange      DateRange `json:"date_range"`
	SizeRange      SizeRange `json:"size_range"`
	SortBy         SortKey   `json:"sort_by"`
	SortOrder      SortOrder `json:"sort_order"`
	ViewMode       ViewMode  `json:"view_mode"`
}

// DefaultViewParameters returns the initial view state.
func DefaultViewParameters() ViewParameters {
	return ViewParameters{
		TypeFilter: TypeFilterAll,
		DateRange:  DateAll,
		SizeRange:  SizeAll,
		SortBy:     SortByName,
		SortOrder:  SortAsc,
		ViewMode:   ViewGrid,
	}
}

// FilterSet is the group of settings applied at once by the advanced filter.
type FilterSet struct {
	Type      string    `json:"type"`
	DateRange DateRange `json:"date_range"`
	SizeRange SizeRange `json:"size_range"`
	SortBy    SortKey   `json:"sort_by"`
	SortOrder SortOrder `json:"sort_order"`
}

// DefaultFilterSet mirrors the reset state of the advanced filter.
func DefaultFilterSet() FilterSet {
	return FilterSet{
		Type:      TypeFilterAll,
		DateRange: DateAll,
		SizeRange: SizeAll,
		SortBy:    SortByName,
		SortOrder: SortAsc,
	}
}

// Validate checks every enum of the view parameters.
func (p ViewParameters) Validate() error {
	if p.TypeFilter != TypeFilterAll && !Category(p.TypeFilter).Valid() {
		return Invalidf("unknown type filter %q", p.TypeFilter)
	}
	if !p.DateRange.Valid() {
		return Invalidf("unknown date range %q", p.DateRange)
	}
	if !p.SizeRange.Valid() {
		return Invalidf("unknown size range %q", p.SizeRange)
	}
	if !p.SortBy.Valid() {
		return Invalidf("unknown sort key %q", p.SortBy)
	}
	if !p.SortOrder.Valid() {
		return Invalidf("unknown sort order %q", p.SortOrder)
	}
	if !p.ViewMode.Valid() {
		return Invalidf("unknown view mode %q", p.ViewMode)
	}
	return nil
}

// Validate checks every enum of the filter set.
func (f FilterSet) Validate() error {
	p := DefaultViewParameters()
	p.TypeFilter = f.Type
	p.DateRange = f.DateRange
	p.SizeRange = f.SizeRange
	p.SortBy = f.SortBy
	p.SortOrder = f.SortOrder
	return p.Validate()
}
