package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"animehub/database"
	"animehub/internal/microservices/http-api/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByAnime(ctx context.Context, animeID int64) ([]models.Comment, error)
	ListRecent(ctx context.Context, limit int) ([]models.RecentComment, error)
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Create(comment).Error
	if database.IsForeignKeyViolation(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// ListByAnime returns the comments of one anime, newest first.
func (r *commentRepository) ListByAnime(ctx context.Context, animeID int64) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.WithContext(ctx).
		Where("anime_id = ?", animeID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (r *commentRepository) ListRecent(ctx context.Context, limit int) ([]models.RecentComment, error) {
	comments := []models.RecentComment{}
	if err := r.db.WithContext(ctx).
		Table("comments AS c").
		Select("c.*, a.title AS anime_title").
		Joins("JOIN anime a ON a.id = c.anime_id").
		Order("c.created_at DESC, c.id DESC").
		Limit(limit).
		Scan(&comments).Error; err != nil {
		return nil, fmt.Errorf("list recent comments: %w", err)
	}
	return comments, nil
}

// Delete is idempotent; a missing comment is not an error.
func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
