package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"animehub/database"
	"animehub/internal/microservices/http-api/models"
)

type RatingRepository interface {
	// Insert stores the rating unless the visitor already rated the anime,
	// in which case inserted is false and nothing changes.
	Insert(ctx context.Context, rating *models.Rating) (inserted bool, err error)
	Summary(ctx context.Context, animeID int64) (models.RatingSummary, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Insert(ctx context.Context, rating *models.Rating) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "anime_id"}, {Name: "user_ip"}},
		DoNothing: true,
	}).Create(rating)
	if database.IsForeignKeyViolation(res.Error) {
		return false, ErrNotFound
	}
	if res.Error != nil {
		return false, fmt.Errorf("insert rating: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *ratingRepository) Summary(ctx context.Context, animeID int64) (models.RatingSummary, error) {
	var summary models.RatingSummary
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("AVG(rating)::float8 AS average_rating, COUNT(*) AS rating_count").
		Where("anime_id = ?", animeID).
		Scan(&summary).Error; err != nil {
		return summary, fmt.Errorf("summarize ratings: %w", err)
	}
	return summary, nil
}
