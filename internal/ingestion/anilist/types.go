package anilist

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// PageResponse is the payload of a Page query.
type PageResponse struct {
	Page PageData `json:"Page"`
}

type PageData struct {
	PageInfo PageInfo    `json:"pageInfo"`
	Media    []MediaData `json:"media"`
}

type PageInfo struct {
	Total       int  `json:"total"`
	CurrentPage int  `json:"currentPage"`
	LastPage    int  `json:"lastPage"`
	HasNextPage bool `json:"hasNextPage"`
	PerPage     int  `json:"perPage"`
}

// MediaData is one anime as returned by AniList.
type MediaData struct {
	ID          int        `json:"id"`
	Title       TitleData  `json:"title"`
	Description *string    `json:"description"`
	Episodes    *int       `json:"episodes"`
	SeasonYear  *int       `json:"seasonYear"`
	StartDate   FuzzyDate  `json:"startDate"`
	CoverImage  CoverImage `json:"coverImage"`
	Trailer     *Trailer   `json:"trailer"`
	SiteURL     string     `json:"siteUrl"`
	Genres      []string   `json:"genres"`
}

type TitleData struct {
	English *string `json:"english"`
	Romaji  *string `json:"romaji"`
	Native  *string `json:"native"`
}

type CoverImage struct {
	ExtraLarge *string `json:"extraLarge"`
	Large      *string `json:"large"`
	Medium     *string `json:"medium"`
}

// Trailer points at a video on an external site ("youtube" or "dailymotion").
type Trailer struct {
	ID   string `json:"id"`
	Site string `json:"site"`
}

type FuzzyDate struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`
}

// ExtractedAnime is an AniList media entry mapped onto catalog fields.
type ExtractedAnime struct {
	AniListID   int
	Title       string
	Description string
	ImageURL    string
	VideoURL    string
	Year        *int
	Episodes    *int
	Genres      []string
}

// ExtractAnime maps an AniList media entry onto catalog fields.
func ExtractAnime(m MediaData) (*ExtractedAnime, error) {
	out := &ExtractedAnime{
		AniListID: m.ID,
		Title:     firstNonEmpty(m.Title.English, m.Title.Romaji, m.Title.Native),
		ImageURL:  firstNonEmpty(m.CoverImage.ExtraLarge, m.CoverImage.Large, m.CoverImage.Medium),
		VideoURL:  TrailerURL(m.Trailer),
		Episodes:  m.Episodes,
		Genres:    m.Genres,
	}
	if out.Title == "" {
		return nil, fmt.Errorf("anime %d has no title", m.ID)
	}

	if m.Description != nil {
		out.Description = CleanDescription(*m.Description)
	}
	if out.VideoURL == "" {
		out.VideoURL = m.SiteURL
	}
	if out.VideoURL == "" {
		out.VideoURL = fmt.Sprintf("https://anilist.co/anime/%d", m.ID)
	}

	switch {
	case m.SeasonYear != nil:
		out.Year = m.SeasonYear
	case m.StartDate.Year != nil:
		out.Year = m.StartDate.Year
	}
	return out, nil
}

// TrailerURL turns an AniList trailer reference into a watchable URL.
func TrailerURL(t *Trailer) string {
	if t == nil || t.ID == "" {
		return ""
	}
	switch strings.ToLower(t.Site) {
	case "youtube":
		return "https://www.youtube.com/watch?v=" + t.ID
	case "dailymotion":
		return "https://www.dailymotion.com/video/" + t.ID
	default:
		return ""
	}
}

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// CleanDescription removes HTML tags and decodes entities.
func CleanDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "<br>", "\n")
	cleaned := htmlTag.ReplaceAllString(desc, "")
	cleaned = html.UnescapeString(cleaned)
	return strings.TrimSpace(cleaned)
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			return strings.TrimSpace(*v)
		}
	}
	return ""
}
