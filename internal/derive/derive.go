// Package derive turns the full document list plus the current view
// parameters into the list that is actually displayed.
//
// The pipeline is a pure function: folder scope, search, type, date and size
// filters, then a stable sort. Each call recomputes from the base list.
package derive

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"docmanager/internal/model"
)

const bytesPerMiB = 1024 * 1024

// Predicate keeps a document when it returns true.
type Predicate func(model.Document) bool

// Visible applies every step of the pipeline in order and returns a new
// slice. The input slice is never modified. Day boundaries for the "today"
// range are taken in now's location.
func Visible(docs []model.Document, params model.ViewParameters, now time.Time) ([]model.Document, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInternalDerivation, err)
	}

	out := make([]model.Document, 0, len(docs))
	filters := Filters(params, now)
	for _, d := range docs {
		if keep(d, filters) {
			out = append(out, d)
		}
	}
	Sort(out, params.SortBy, params.SortOrder)
	return out, nil
}

// Filters returns the filter steps for params in pipeline order. Steps that
// are disabled by params are omitted.
func Filters(params model.ViewParameters, now time.Time) []Predicate {
	var fs []Predicate
	if params.SelectedFolder != "" {
		fs = append(fs, InFolder(params.SelectedFolder))
	}
	if term := strings.TrimSpace(params.SearchTerm); term != "" {
		fs = append(fs, Matches(term))
	}
	if params.TypeFilter != "" && params.TypeFilter != model.TypeFilterAll {
		fs = append(fs, OfCategory(model.Category(params.TypeFilter)))
	}
	if params.DateRange != "" && params.DateRange != model.DateAll {
		fs = append(fs, UpdatedSince(Cutoff(params.DateRange, now)))
	}
	if params.SizeRange != "" && params.SizeRange != model.SizeAll {
		fs = append(fs, InSizeRange(params.SizeRange))
	}
	return fs
}

func keep(d model.Document, filters []Predicate) bool {
	for _, f := range filters {
		if !f(d) {
			return false
		}
	}
	return true
}

// InFolder keeps documents filed directly under folderID.
func InFolder(folderID string) Predicate {
	return func(d model.Document) bool { return d.FolderID == folderID }
}

// Matches keeps documents whose name, description, category or any tag
// contains term, ignoring case.
func Matches(term string) Predicate {
	needle := strings.ToLower(term)
	return func(d model.Document) bool {
		if strings.Contains(strings.ToLower(d.Name), needle) ||
			strings.Contains(strings.ToLower(d.Description), needle) ||
			strings.Contains(strings.ToLower(string(d.Category)), needle) {
			return true
		}
		for _, tag := range d.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
		return false
	}
}

// OfCategory keeps documents of category c.
func OfCategory(c model.Category) Predicate {
	return func(d model.Document) bool { return d.Category == c }
}

// UpdatedSince keeps documents updated at or after cutoff.
func UpdatedSince(cutoff time.Time) Predicate {
	return func(d model.Document) bool { return !d.UpdatedAt.Before(cutoff) }
}

// Cutoff returns the earliest update instant admitted by r. DateAll yields
// the zero time.
func Cutoff(r model.DateRange, now time.Time) time.Time {
	switch r {
	case model.DateToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case model.DateWeek:
		return now.AddDate(0, 0, -7)
	case model.DateMonth:
		return now.AddDate(0, -1, 0)
	case model.DateYear:
		return now.AddDate(-1, 0, 0)
	}
	return time.Time{}
}

// InSizeRange keeps documents whose size in MiB falls into r: small below 1,
// medium from 1 to 10 inclusive, large above 10.
func InSizeRange(r model.SizeRange) Predicate {
	return func(d model.Document) bool {
		mib := float64(d.Size) / bytesPerMiB
		switch r {
		case model.SizeSmall:
			return mib < 1
		case model.SizeMedium:
			return mib >= 1 && mib <= 10
		case model.SizeLarge:
			return mib > 10
		}
		return true
	}
}

// Sort orders docs in place by key. The sort is stable in both directions:
// documents with equal keys keep their relative order.
func Sort(docs []model.Document, key model.SortKey, order model.SortOrder) {
	compare := comparator(key)
	if order == model.SortDesc {
		slices.SortStableFunc(docs, func(a, b model.Document) int { return compare(b, a) })
		return
	}
	slices.SortStableFunc(docs, compare)
}

func comparator(key model.SortKey) func(a, b model.Document) int {
	switch key {
	case model.SortByDate:
		return func(a, b model.Document) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	case model.SortBySize:
		return func(a, b model.Document) int { return cmp.Compare(a.Size, b.Size) }
	case model.SortByType:
		return func(a, b model.Document) int {
			return strings.Compare(strings.ToLower(string(a.Category)), strings.ToLower(string(b.Category)))
		}
	default:
		return func(a, b model.Document) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	}
}
