package pager

// TotalPages returns the number of pages needed to show listLen entries
// at pageSize entries per page. An empty list still has one (empty) page.
func TotalPages(listLen, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	n := (listLen + pageSize - 1) / pageSize
	if n < 1 {
		return 1
	}
	return n
}

// ClampPage clamps a requested page index into [0, totalPages-1].
// Out-of-range requests are policy-clamped, not rejected.
func ClampPage(requested, totalPages int) int {
	if requested < 0 {
		return 0
	}
	if requested > totalPages-1 {
		return totalPages - 1
	}
	return requested
}

// PageState is the pagination state for one session.
type PageState struct {
	Size    int // entries per page, > 0
	Total   int // total pages, >= 1
	Current int // current page, in [0, Total-1]
}

// NewPageState computes the initial state for a list of listLen entries,
// positioned on page 0.
func NewPageState(listLen, pageSize int) PageState {
	return PageState{
		Size:  pageSize,
		Total: TotalPages(listLen, pageSize),
	}
}
