package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/repository"
)

type AnimeService interface {
	List(ctx context.Context, filter dto.AnimeFilter) (*dto.AnimeListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.AnimeResponse, error)
	Create(ctx context.Context, req dto.CreateAnimeDTO) (*dto.AnimeResponse, error)
}

type animeService struct {
	repo repository.AnimeRepository
}

func NewAnimeService(repo repository.AnimeRepository) AnimeService {
	return &animeService{repo: repo}
}

var validSorts = map[string]bool{
	dto.SortTitle:    true,
	dto.SortYear:     true,
	dto.SortEpisodes: true,
	dto.SortRating:   true,
	dto.SortNewest:   true,
}

// normalizeFilter applies paging defaults and rejects unknown sorts and
// out-of-range rating thresholds.
func normalizeFilter(f dto.AnimeFilter) (dto.AnimeFilter, error) {
	if f.Page < 1 {
		f.Page = dto.DefaultPage
	}
	if f.Limit < 1 || f.Limit > dto.MaxLimit {
		f.Limit = dto.DefaultLimit
	}

	f.Sort = strings.ToLower(strings.TrimSpace(f.Sort))
	if f.Sort == "" {
		f.Sort = dto.SortTitle
	}
	if !validSorts[f.Sort] {
		return f, validationError("unknown sort %q", f.Sort)
	}

	if f.MinRating != nil && (math.IsNaN(*f.MinRating) || *f.MinRating < 0 || *f.MinRating > 5) {
		return f, validationError("minRating must be between 0 and 5")
	}
	return f, nil
}

func (s *animeService) List(ctx context.Context, filter dto.AnimeFilter) (*dto.AnimeListResponse, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	list, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := dto.NewAnimeListResponse(list, total)
	return &resp, nil
}

func (s *animeService) GetByID(ctx context.Context, id int64) (*dto.AnimeResponse, error) {
	anime, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAnimeNotFound
	}
	if err != nil {
		return nil, err
	}

	resp := dto.FromModelToResponse(*anime)
	return &resp, nil
}

// Create stores the anime and its genre links atomically.
func (s *animeService) Create(ctx context.Context, req dto.CreateAnimeDTO) (*dto.AnimeResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	req.VideoURL = strings.TrimSpace(req.VideoURL)

	switch {
	case req.Title == "":
		return nil, validationError("title is required")
	case req.Description == "":
		return nil, validationError("description is required")
	case req.ImageURL == "":
		return nil, validationError("image_url is required")
	case req.VideoURL == "":
		return nil, validationError("video_url is required")
	}

	anime := req.ToModel()
	err := s.repo.Create(ctx, &anime, uniqueIDs(req.GenreIDs))
	if errors.Is(err, repository.ErrUnknownGenre) {
		return nil, validationError("unknown genre id")
	}
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, anime.ID)
}

func uniqueIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
