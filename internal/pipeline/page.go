package pipeline

import "github.com/sosarder/savvysailorcruises.co.uk/internal/model"

// PageSize is the fixed number of listings per result page.
const PageSize = 50

// pageWindow is how many page buttons show either side of the current page.
const pageWindow = 3

// PageButton is one structured pagination control.  Kind is "prev",
// "next", "page" or "ellipsis"; Page is meaningful for everything but
// ellipsis.  Rendering is the consumer's problem.
type PageButton struct {
	Kind     string `json:"kind"`
	Page     int    `json:"page,omitempty"`
	Active   bool   `json:"active,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// PageControls is the derived pagination metadata for a result set.
type PageControls struct {
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	Buttons    []PageButton `json:"buttons"`
}

// Paginate returns the 1-based page of items.  Requests past the end
// yield an empty slice, never an error.
func Paginate(items []model.Listing, page int) []model.Listing {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []model.Listing{}
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is ceil(total / PageSize).
func TotalPages(total int) int {
	return (total + PageSize - 1) / PageSize
}

// Controls derives the page-button metadata for a result of total items
// with the given current page: a prev/next pair that disables at the
// edges rather than wrapping, a window of current±3 page buttons, and
// jump-to-first/last buttons with ellipsis markers when the window does
// not touch the ends.  A single page yields no buttons at all.
func Controls(total, page int) PageControls {
	tp := TotalPages(total)
	pc := PageControls{Page: page, TotalPages: tp}
	if tp <= 1 {
		return pc
	}

	pc.Buttons = append(pc.Buttons, PageButton{Kind: "prev", Page: page - 1, Disabled: page <= 1})

	start := page - pageWindow
	if start < 1 {
		start = 1
	}
	end := page + pageWindow
	if end > tp {
		end = tp
	}
	if start > 1 {
		pc.Buttons = append(pc.Buttons,
			PageButton{Kind: "page", Page: 1},
			PageButton{Kind: "ellipsis", Disabled: true})
	}
	for i := start; i <= end; i++ {
		pc.Buttons = append(pc.Buttons, PageButton{Kind: "page", Page: i, Active: i == page})
	}
	if end < tp {
		pc.Buttons = append(pc.Buttons,
			PageButton{Kind: "ellipsis", Disabled: true},
			PageButton{Kind: "page", Page: tp})
	}

	pc.Buttons = append(pc.Buttons, PageButton{Kind: "next", Page: page + 1, Disabled: page >= tp})
	return pc
}
