package dto

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
	// MaxLimit mirrors the server cap; larger limits are replaced by the default there.
	MaxLimit = 100
)

// CatalogQuery is the filter and paging state of the catalog browser.
// Changing any filter sends the browser back to the first page.
type CatalogQuery struct {
	Page      int
	Limit     int
	Genre     string
	MinRating *float64
	Sort      string
	Search    string
}

func NewCatalogQuery() CatalogQuery {
	return CatalogQuery{Page: DefaultPage, Limit: DefaultLimit}
}

func (q CatalogQuery) WithPage(page int) CatalogQuery {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

func (q CatalogQuery) WithGenre(genre string) CatalogQuery {
	q.Genre = strings.TrimSpace(genre)
	q.Page = DefaultPage
	return q
}

func (q CatalogQuery) WithSearch(search string) CatalogQuery {
	q.Search = strings.TrimSpace(search)
	q.Page = DefaultPage
	return q
}

func (q CatalogQuery) WithSort(sort string) CatalogQuery {
	q.Sort = strings.TrimSpace(sort)
	q.Page = DefaultPage
	return q
}

func (q CatalogQuery) WithMinRating(min *float64) CatalogQuery {
	q.MinRating = min
	q.Page = DefaultPage
	return q
}

// Values encodes the query string of GET /api/anime, leaving out unset filters.
func (q CatalogQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Genre != "" {
		v.Set("genre", q.Genre)
	}
	if q.MinRating != nil {
		v.Set("minRating", strconv.FormatFloat(*q.MinRating, 'f', -1, 64))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}
