package service

import (
	"context"
	"errors"
	"strings"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"
)

type GenreService interface {
	GetAll(ctx context.Context) ([]dto.GenreResponse, error)
	Create(ctx context.Context, req dto.CreateGenreDTO) (*dto.GenreResponse, error)
	Delete(ctx context.Context, id int64) error
}

type genreService struct {
	repo repository.GenreRepository
}

func NewGenreService(repo repository.GenreRepository) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) GetAll(ctx context.Context) ([]dto.GenreResponse, error) {
	genres, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GenreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, dto.GenreFromModel(g))
	}
	return out, nil
}

func (s *genreService) Create(ctx context.Context, req dto.CreateGenreDTO) (*dto.GenreResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("name is required")
	}

	genre := &models.Genre{Name: name}
	err := s.repo.Create(ctx, genre)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrGenreExists
	}
	if err != nil {
		return nil, err
	}

	resp := dto.GenreFromModel(*genre)
	return &resp, nil
}

// Delete removes the genre and its anime links; a missing genre is not an error.
func (s *genreService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
