package dto

import (
	"time"

	"animehub/internal/microservices/http-api/models"
)

// Sort keys accepted by GET /api/anime
const (
	SortTitle    = "title"
	SortYear     = "year"
	SortEpisodes = "episodes"
	SortRating   = "rating"
	SortNewest   = "newest"
)

// Paging defaults for catalog listings
const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

// AnimeFilter carries the optional catalog filters of GET /api/anime.
// GenreID and GenreName are mutually exclusive; the handler sets one of them.
type AnimeFilter struct {
	Page      int
	Limit     int
	GenreID   *int64
	GenreName string
	MinRating *float64
	Sort      string
	Search    string
}

// Offset returns the row offset for the requested page. Check PastEnd first:
// the product overflows for pages far beyond the result set.
func (f AnimeFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// PastEnd reports whether the requested page starts after the last of total rows.
// It compares page numbers, so it never overflows.
func (f AnimeFilter) PastEnd(total int64) bool {
	if f.Limit < 1 {
		return true
	}
	limit := int64(f.Limit)
	pages := (total + limit - 1) / limit
	return int64(f.Page) > pages
}

// CreateAnimeDTO used for POST /api/admin/anime
type CreateAnimeDTO struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	ImageURL    string  `json:"image_url" binding:"required,url"`
	VideoURL    string  `json:"video_url" binding:"required,url"`
	Year        *int    `json:"year,omitempty" binding:"omitempty,min=1900,max=2100"`
	Episodes    *int    `json:"episodes,omitempty" binding:"omitempty,min=1"`
	GenreIDs    []int64 `json:"genre_ids,omitempty" binding:"omitempty,dive,gt=0"`
}

// AnimeResponse DTO for responses
type AnimeResponse struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"image_url"`
	VideoURL      string          `json:"video_url"`
	Year          *int            `json:"year"`
	Episodes      *int            `json:"episodes"`
	AverageRating *float64        `json:"average_rating"`
	RatingCount   int64           `json:"rating_count"`
	Genres        []GenreResponse `json:"genres"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AnimeListResponse is the paginated catalog page
type AnimeListResponse struct {
	Items []AnimeResponse `json:"items"`
	Total int64           `json:"total"`
}

// Converters
func (d CreateAnimeDTO) ToModel() models.Anime {
	return models.Anime{
		Title:       d.Title,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		VideoURL:    d.VideoURL,
		Year:        d.Year,
		Episodes:    d.Episodes,
	}
}

func FromModelToResponse(m models.AnimeWithStats) AnimeResponse {
	genres := make([]GenreResponse, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, GenreFromModel(g))
	}
	return AnimeResponse{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		ImageURL:      m.ImageURL,
		VideoURL:      m.VideoURL,
		Year:          m.Year,
		Episodes:      m.Episodes,
		AverageRating: m.AverageRating,
		RatingCount:   m.RatingCount,
		Genres:        genres,
		CreatedAt:     m.CreatedAt,
	}
}

func NewAnimeListResponse(list []models.AnimeWithStats, total int64) AnimeListResponse {
	items := make([]AnimeResponse, 0, len(list))
	for _, m := range list {
		items = append(items, FromModelToResponse(m))
	}
	return AnimeListResponse{Items: items, Total: total}
}
