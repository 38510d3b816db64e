package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"animehub/database"
	"animehub/internal/microservices/http-api/models"
)

type GenreRepository interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	Create(ctx context.Context, genre *models.Genre) error
	Delete(ctx context.Context, id int64) error
	// EnsureByNames returns the genres with the given names, inserting the missing ones.
	EnsureByNames(ctx context.Context, names []string) ([]models.Genre, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) GetAll(ctx context.Context) ([]models.Genre, error) {
	genres := []models.Genre{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	err := r.db.WithContext(ctx).Create(genre).Error
	if database.IsUniqueViolation(err, "") {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

// Delete removes the genre and, through the cascade, its anime links.
// Deleting a missing genre is not an error.
func (r *genreRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Genre{}, id).Error; err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	return nil
}

func (r *genreRepository) EnsureByNames(ctx context.Context, names []string) ([]models.Genre, error) {
	unique := genreNames(names)
	if len(unique) == 0 {
		return []models.Genre{}, nil
	}

	rows := make([]models.Genre, 0, len(unique))
	for _, n := range unique {
		rows = append(rows, models.Genre{Name: n})
	}

	var genres []models.Genre
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&rows).Error; err != nil {
			return fmt.Errorf("upsert genres: %w", err)
		}
		if err := tx.Where("name IN ?", unique).Order("name ASC").Find(&genres).Error; err != nil {
			return fmt.Errorf("load genres: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return genres, nil
}

// genreNames trims, de-duplicates and sorts names so concurrent upserts of
// overlapping sets lock the unique index in the same order.
func genreNames(names []string) []string {
	unique := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		unique = append(unique, n)
	}
	slices.Sort(unique)
	return unique
}
