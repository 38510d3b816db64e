package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// maxWindow is how many page numbers the pagination bar shows at once.
const maxWindow = 5

// Window is the run of page numbers shown around the current page.
type Window struct {
	Pages            []int
	LeadingEllipsis  bool
	TrailingEllipsis bool
}

// PageWindow centres up to five page numbers on current, shifting the run at
// either edge so it always stays inside 1..totalPages.
func PageWindow(current, totalPages int) Window {
	if totalPages < 1 {
		return Window{}
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start := current - maxWindow/2
	if start < 1 {
		start = 1
	}
	end := start + maxWindow - 1
	if end > totalPages {
		end = totalPages
		start = end - maxWindow + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return Window{
		Pages:            pages,
		LeadingEllipsis:  start > 1,
		TrailingEllipsis: end < totalPages,
	}
}

// RenderPagination prints the pagination bar, highlighting the current page.
func RenderPagination(w io.Writer, current, totalPages int) {
	win := PageWindow(current, totalPages)
	if len(win.Pages) <= 1 {
		return
	}

	active := color.New(color.FgBlack, color.BgCyan).SprintFunc()
	parts := make([]string, 0, len(win.Pages)+4)
	if current > 1 {
		parts = append(parts, "«")
	}
	if win.LeadingEllipsis {
		parts = append(parts, "...")
	}
	for _, p := range win.Pages {
		if p == current {
			parts = append(parts, active(fmt.Sprintf("[%d]", p)))
			continue
		}
		parts = append(parts, fmt.Sprintf("%d", p))
	}
	if win.TrailingEllipsis {
		parts = append(parts, "...")
	}
	if current < totalPages {
		parts = append(parts, "»")
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}
