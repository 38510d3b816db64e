package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"animehub/internal/microservices/http-api/models"
)

func TestRatingService_Rate_Success(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	animeRepo := new(MockAnimeRepository)
	svc := NewRatingService(ratingRepo, animeRepo)
	ctx := context.Background()

	animeRepo.On("Exists", ctx, int64(1)).Return(true, nil)
	ratingRepo.On("Insert", ctx, mock.MatchedBy(func(r *models.Rating) bool {
		return r.AnimeID == 1 && r.UserIP == "visitor-1" && r.Rating == 4
	})).Return(true, nil)
	ratingRepo.On("Summary", ctx, int64(1)).Return(models.RatingSummary{
		AverageRating: floatPtr(4.5),
		RatingCount:   2,
	}, nil)

	resp, err := svc.Rate(ctx, 1, "visitor-1", 4)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 4.5, *resp.AverageRating)
	assert.Equal(t, int64(2), resp.RatingCount)
}

func TestRatingService_Rate_Duplicate(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	animeRepo := new(MockAnimeRepository)
	svc := NewRatingService(ratingRepo, animeRepo)
	ctx := context.Background()

	animeRepo.On("Exists", ctx, int64(1)).Return(true, nil)
	ratingRepo.On("Insert", ctx, mock.Anything).Return(false, nil)

	_, err := svc.Rate(ctx, 1, "visitor-1", 5)

	assert.ErrorIs(t, err, ErrAlreadyRated)
	ratingRepo.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything)
}

func TestRatingService_Rate_OutOfRange(t *testing.T) {
	svc := NewRatingService(new(MockRatingRepository), new(MockAnimeRepository))

	for _, score := range []int{-1, 0, 6, 10} {
		_, err := svc.Rate(context.Background(), 1, "visitor-1", score)
		assert.ErrorIs(t, err, ErrValidation, "score %d", score)
	}
}

func TestRatingService_Rate_UnknownAnime(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	animeRepo := new(MockAnimeRepository)
	svc := NewRatingService(ratingRepo, animeRepo)
	ctx := context.Background()

	animeRepo.On("Exists", ctx, int64(77)).Return(false, nil)

	_, err := svc.Rate(ctx, 77, "visitor-1", 3)
	assert.ErrorIs(t, err, ErrAnimeNotFound)
	ratingRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestRatingService_Rate_MissingVisitor(t *testing.T) {
	svc := NewRatingService(new(MockRatingRepository), new(MockAnimeRepository))

	_, err := svc.Rate(context.Background(), 1, "", 3)
	assert.ErrorIs(t, err, ErrValidation)
}
