// Package pagination slices ordered collections into 1-based pages.
package pagination

const (
	DefaultPageSize        = 10
	DefaultMaxVisiblePages = 5
)

// Page is one window over an ordered collection.
//
// FirstIndex and LastIndex are the zero-based, half-open display bounds of
// the window within the whole collection: items[FirstIndex:LastIndex].
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	FirstIndex int `json:"first_index"`
	LastIndex  int `json:"last_index"`
}

// TotalPages returns ceil(total/pageSize), or 0 when pageSize is not positive.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate returns the requested 1-based page of items. It never clamps the
// page number: a page outside [1, TotalPages] yields no items. Items is never
// nil.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(items),
		TotalPages: TotalPages(len(items), pageSize),
	}

	if pageSize <= 0 || page < 1 {
		return p
	}

	first := (page - 1) * pageSize
	last := min(page*pageSize, len(items))

	p.FirstIndex = min(first, len(items))
	p.LastIndex = max(last, p.FirstIndex)
	p.Items = append(p.Items, items[p.FirstIndex:p.LastIndex]...)
	return p
}

// ClampPage bounds page to [1, totalPages]. With no pages it returns 1.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	return min(page, totalPages)
}

// VisiblePages returns the page numbers a pager shows around current, at
// most maxVisible of them, keeping current centered when possible.
func VisiblePages(current, totalPages, maxVisible int) []int {
	if totalPages <= 0 || maxVisible <= 0 {
		return []int{}
	}

	current = ClampPage(current, totalPages)
	count := min(maxVisible, totalPages)

	start := max(current-count/2, 1)
	if start+count-1 > totalPages {
		start = totalPages - count + 1
	}

	pages := make([]int, count)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}
