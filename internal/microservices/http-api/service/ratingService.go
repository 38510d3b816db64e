package service

import (
	"context"
	"errors"

	"animehub/internal/metrics"
	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"
)

type RatingService interface {
	// Rate records the visitor's score and returns the refreshed aggregate.
	Rate(ctx context.Context, animeID int64, visitorID string, score int) (*dto.RateResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	animeRepo  repository.AnimeRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, animeRepo repository.AnimeRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		animeRepo:  animeRepo,
	}
}

func (s *ratingService) Rate(ctx context.Context, animeID int64, visitorID string, score int) (*dto.RateResponse, error) {
	if score < 1 || score > 5 {
		return nil, validationError("rating must be between 1 and 5")
	}
	if visitorID == "" {
		return nil, validationError("missing visitor id")
	}

	ok, err := s.animeRepo.Exists(ctx, animeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAnimeNotFound
	}

	// the unique (anime_id, user_ip) index decides concurrent submissions
	inserted, err := s.ratingRepo.Insert(ctx, &models.Rating{
		AnimeID: animeID,
		UserIP:  visitorID,
		Rating:  score,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAnimeNotFound
	}
	if err != nil {
		return nil, err
	}
	if !inserted {
		metrics.Ratings.WithLabelValues("duplicate").Inc()
		return nil, ErrAlreadyRated
	}
	metrics.Ratings.WithLabelValues("accepted").Inc()

	summary, err := s.ratingRepo.Summary(ctx, animeID)
	if err != nil {
		return nil, err
	}
	return &dto.RateResponse{
		Success:       true,
		AverageRating: summary.AverageRating,
		RatingCount:   summary.RatingCount,
	}, nil
}
