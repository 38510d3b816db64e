package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"animehub/internal/microservices/http-api/dto"
)

func init() {
	color.NoColor = true
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name             string
		current, total   int
		pages            []int
		leading, trailng bool
	}{
		{"no pages", 1, 0, nil, false, false},
		{"single page", 1, 1, []int{1}, false, false},
		{"fewer than window", 2, 3, []int{1, 2, 3}, false, false},
		{"start edge", 1, 10, []int{1, 2, 3, 4, 5}, false, true},
		{"near start", 3, 10, []int{1, 2, 3, 4, 5}, false, true},
		{"middle", 5, 10, []int{3, 4, 5, 6, 7}, true, true},
		{"near end", 9, 10, []int{6, 7, 8, 9, 10}, true, false},
		{"end edge", 10, 10, []int{6, 7, 8, 9, 10}, true, false},
		{"current past end", 12, 10, []int{6, 7, 8, 9, 10}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win := PageWindow(tt.current, tt.total)
			if tt.pages == nil {
				assert.Empty(t, win.Pages)
			} else {
				assert.Equal(t, tt.pages, win.Pages)
			}
			assert.Equal(t, tt.leading, win.LeadingEllipsis)
			assert.Equal(t, tt.trailng, win.TrailingEllipsis)
			assert.LessOrEqual(t, len(win.Pages), 5)
		})
	}
}

func TestRenderPagination(t *testing.T) {
	var buf bytes.Buffer
	RenderPagination(&buf, 5, 10)
	assert.Equal(t, "« ... 3 4 [5] 6 7 ... »\n", buf.String())

	buf.Reset()
	RenderPagination(&buf, 1, 1)
	assert.Empty(t, buf.String())
}

func TestTruncate(t *testing.T) {
	exact := strings.Repeat("a", 100)
	assert.Equal(t, exact, Truncate(exact, 100))
	assert.Equal(t, exact+"...", Truncate(exact+"b", 100))
	assert.Equal(t, "短い", Truncate("短い", 100))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
}

func TestFormatters(t *testing.T) {
	avg := 4.26
	year, eps := 1998, 26

	assert.Equal(t, "No ratings yet", FormatRating(nil, 0))
	assert.Equal(t, "★ 4.3 (3)", FormatRating(&avg, 3))
	assert.Equal(t, "—", FormatYear(nil))
	assert.Equal(t, "1998", FormatYear(&year))
	assert.Equal(t, "?", FormatEpisodes(nil))
	assert.Equal(t, "26", FormatEpisodes(&eps))
	assert.Equal(t, "No description", CardDescription("  "))

	genres := []dto.GenreResponse{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
	assert.Equal(t, []string{"A", "B", "C"}, GenreTags(genres))
}

func TestCommentAuthor(t *testing.T) {
	blank := "  "
	bob := "Bob"
	assert.Equal(t, "Anonymous", CommentAuthor(nil))
	assert.Equal(t, "Anonymous", CommentAuthor(&blank))
	assert.Equal(t, "Bob", CommentAuthor(&bob))
}

func TestRenderCatalog(t *testing.T) {
	var buf bytes.Buffer
	RenderCatalog(&buf, nil, 1, 0, 0, LayoutGrid)
	assert.Contains(t, buf.String(), "Nothing found")

	year := 1998
	avg := 4.5
	items := []dto.AnimeResponse{
		{
			ID:          1,
			Title:       "Cowboy Bebop",
			Description: strings.Repeat("x", 120),
			Year:        &year,
			Genres: []dto.GenreResponse{
				{Name: "Action"}, {Name: "Sci-Fi"}, {Name: "Drama"}, {Name: "Space"},
			},
		},
		{
			ID:            2,
			Title:         "Mushishi: The Next Passage Special Edition Collection",
			AverageRating: &avg,
			RatingCount:   2,
		},
	}

	tests := []struct {
		layout Layout
		tags   string
	}{
		{LayoutGrid, "[Action] [Sci-Fi] [Drama]"},
		{LayoutList, "Action · Sci-Fi · Drama"},
	}
	for _, tt := range tests {
		t.Run(string(tt.layout), func(t *testing.T) {
			var buf bytes.Buffer
			RenderCatalog(&buf, items, 1, 1, 2, tt.layout)

			out := buf.String()
			assert.Contains(t, out, "Cowboy Bebop")
			assert.Contains(t, out, "1998")
			assert.Contains(t, out, tt.tags)
			assert.NotContains(t, out, "Space")
			assert.Contains(t, out, strings.Repeat("x", 100)+"...")
			assert.NotContains(t, out, strings.Repeat("x", 101))
			assert.Contains(t, out, "No ratings yet")
			assert.Contains(t, out, "Mushishi: The Next Passage Special Edition Collection")
			assert.Contains(t, out, "★ 4.5 (2)")
			assert.Contains(t, out, "No description")
		})
	}
}

func TestRenderDetail(t *testing.T) {
	bob := "Bob"
	var buf bytes.Buffer
	RenderDetail(&buf, &dto.AnimeResponse{Title: "Mushishi", VideoURL: "https://v/1"}, []dto.CommentResponse{
		{Username: &bob, Text: "Great!", CreatedAt: time.Now()},
		{Text: "meh", CreatedAt: time.Now()},
	})

	out := buf.String()
	assert.Contains(t, out, "Watch: https://v/1")
	assert.Contains(t, out, "Comments (2)")
	assert.Less(t, strings.Index(out, "Bob"), strings.Index(out, "Anonymous"))
}
