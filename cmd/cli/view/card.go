package view

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"animehub/internal/microservices/http-api/dto"
)

const (
	// DescriptionLimit is how much of a description a card shows.
	DescriptionLimit = 100
	maxCardGenres    = 3
)

// Layout selects how catalog cards are printed.
type Layout string

const (
	LayoutGrid Layout = "grid"
	LayoutList Layout = "list"
)

var (
	titleColor = color.New(color.Bold, color.FgHiWhite)
	starColor  = color.New(color.FgYellow)
	tagColor   = color.New(color.FgCyan)
	mutedColor = color.New(color.FgHiBlack)
)

// Truncate shortens s to limit runes followed by "..."; shorter input is returned as is.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

// FormatRating shows the average with one decimal, or a placeholder when nobody has rated.
func FormatRating(avg *float64, count int64) string {
	if avg == nil || count == 0 {
		return "No ratings yet"
	}
	return fmt.Sprintf("★ %.1f (%d)", *avg, count)
}

func FormatYear(year *int) string {
	if year == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *year)
}

func FormatEpisodes(episodes *int) string {
	if episodes == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *episodes)
}

// GenreTags returns the first three genre names.
func GenreTags(genres []dto.GenreResponse) []string {
	tags := make([]string, 0, maxCardGenres)
	for _, g := range genres {
		if len(tags) == maxCardGenres {
			break
		}
		tags = append(tags, g.Name)
	}
	return tags
}

func CardDescription(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "No description"
	}
	return Truncate(desc, DescriptionLimit)
}

// RenderCatalog prints one page of anime cards followed by the pagination bar.
func RenderCatalog(w io.Writer, items []dto.AnimeResponse, page, totalPages int, total int64, layout Layout) {
	if len(items) == 0 {
		mutedColor.Fprintln(w, "Nothing found. Try another genre or search term.")
		return
	}

	fmt.Fprintf(w, "%d anime, page %d of %d\n\n", total, page, totalPages)
	for _, a := range items {
		if layout == LayoutList {
			renderListCard(w, a)
		} else {
			renderGridCard(w, a)
		}
	}
	fmt.Fprintln(w)
	RenderPagination(w, page, totalPages)
}

// renderGridCard is the compact form: a header line, the tags and the description.
func renderGridCard(w io.Writer, a dto.AnimeResponse) {
	fmt.Fprintf(w, "%-5s %s  %s  %s ep  %s\n",
		fmt.Sprintf("#%d", a.ID),
		titleColor.Sprint(a.Title),
		mutedColor.Sprint(FormatYear(a.Year)),
		FormatEpisodes(a.Episodes),
		starColor.Sprint(FormatRating(a.AverageRating, a.RatingCount)),
	)
	if tags := GenreTags(a.Genres); len(tags) > 0 {
		fmt.Fprintf(w, "      %s\n", tagColor.Sprint("["+strings.Join(tags, "] [")+"]"))
	}
	fmt.Fprintf(w, "      %s\n\n", mutedColor.Sprint(CardDescription(a.Description)))
}

func renderListCard(w io.Writer, a dto.AnimeResponse) {
	fmt.Fprintf(w, "%s %s\n", mutedColor.Sprintf("#%d", a.ID), titleColor.Sprint(a.Title))
	fmt.Fprintf(w, "  %s  |  %s  |  %s episodes\n",
		starColor.Sprint(FormatRating(a.AverageRating, a.RatingCount)),
		FormatYear(a.Year),
		FormatEpisodes(a.Episodes),
	)
	if tags := GenreTags(a.Genres); len(tags) > 0 {
		fmt.Fprintf(w, "  %s\n", tagColor.Sprint(strings.Join(tags, " · ")))
	}
	fmt.Fprintf(w, "  %s\n", CardDescription(a.Description))
	fmt.Fprintln(w, strings.Repeat("-", 50))
}
