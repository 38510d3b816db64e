package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"animehub/database"
	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/models"
)

type AnimeRepository interface {
	List(ctx context.Context, filter dto.AnimeFilter) ([]models.AnimeWithStats, int64, error)
	GetByID(ctx context.Context, id int64) (*models.AnimeWithStats, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, a *models.Anime, genreIDs []int64) error
	// CreateImported inserts an anime keyed by its AniList id; an existing row is left
	// untouched and reported with created=false.
	CreateImported(ctx context.Context, a *models.Anime, genreIDs []int64) (created bool, err error)
}

type animeRepository struct {
	db *gorm.DB
}

func NewAnimeRepository(db *gorm.DB) AnimeRepository {
	return &animeRepository{db: db}
}

const animeStatsSelect = "a.*, AVG(r.rating)::float8 AS average_rating, COUNT(r.id) AS rating_count"

var orderBySort = map[string]string{
	dto.SortTitle:    "a.title ASC, a.id ASC",
	dto.SortYear:     "a.year DESC NULLS LAST, a.title ASC, a.id ASC",
	dto.SortEpisodes: "a.episodes DESC NULLS LAST, a.title ASC, a.id ASC",
	dto.SortRating:   "average_rating DESC NULLS LAST, rating_count DESC, a.title ASC, a.id ASC",
	dto.SortNewest:   "a.created_at DESC, a.id DESC",
}

// withStats selects anime rows joined with their rating aggregate.
func (r *animeRepository) withStats(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("anime AS a").
		Select(animeStatsSelect).
		Joins("LEFT JOIN ratings r ON r.anime_id = a.id").
		Group("a.id")
}

// filtered applies the optional catalog filters. Genre filtering goes through
// anime_genres with EXISTS so an anime never appears twice.
func (r *animeRepository) filtered(ctx context.Context, f dto.AnimeFilter) *gorm.DB {
	q := r.withStats(ctx)

	if f.GenreID != nil {
		q = q.Where("EXISTS (SELECT 1 FROM anime_genres ag WHERE ag.anime_id = a.id AND ag.genre_id = ?)", *f.GenreID)
	} else if name := strings.TrimSpace(f.GenreName); name != "" {
		q = q.Where(`EXISTS (SELECT 1 FROM anime_genres ag JOIN genres g ON g.id = ag.genre_id
			WHERE ag.anime_id = a.id AND LOWER(g.name) = LOWER(?))`, name)
	}

	if search := strings.TrimSpace(f.Search); search != "" {
		p := "%" + escapeLike(search) + "%"
		q = q.Where("(a.title ILIKE ? OR a.description ILIKE ?)", p, p)
	}

	// unrated anime count as 0 so any positive threshold excludes them
	if f.MinRating != nil {
		q = q.Having("COALESCE(AVG(r.rating), 0) >= ?", *f.MinRating)
	}
	return q
}

func (r *animeRepository) List(ctx context.Context, f dto.AnimeFilter) ([]models.AnimeWithStats, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Table("(?) AS filtered", r.filtered(ctx, f)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count anime: %w", err)
	}

	list := make([]models.AnimeWithStats, 0, f.Limit)
	if f.PastEnd(total) {
		return list, total, nil
	}

	order, ok := orderBySort[f.Sort]
	if !ok {
		order = orderBySort[dto.SortTitle]
	}
	if err := r.filtered(ctx, f).
		Order(order).
		Limit(f.Limit).
		Offset(f.Offset()).
		Scan(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list anime: %w", err)
	}

	if err := r.attachGenres(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *animeRepository) GetByID(ctx context.Context, id int64) (*models.AnimeWithStats, error) {
	var row models.AnimeWithStats
	res := r.withStats(ctx).Where("a.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, fmt.Errorf("get anime: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	list := []models.AnimeWithStats{row}
	if err := r.attachGenres(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *animeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Anime{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check anime: %w", err)
	}
	return count > 0, nil
}

func (r *animeRepository) Create(ctx context.Context, a *models.Anime, genreIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureGenresExist(tx, genreIDs); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(a).Error; err != nil {
			return fmt.Errorf("create anime: %w", err)
		}
		return linkGenres(tx, a.ID, genreIDs)
	})
}

func (r *animeRepository) CreateImported(ctx context.Context, a *models.Anime, genreIDs []int64) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "anilist_id"}},
			DoNothing: true,
		}).Omit(clause.Associations).Create(a)
		if res.Error != nil {
			return fmt.Errorf("import anime: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}
		created = true
		return linkGenres(tx, a.ID, genreIDs)
	})
	return created, err
}

// attachGenres loads the genres of every anime in list with one query.
func (r *animeRepository) attachGenres(ctx context.Context, list []models.AnimeWithStats) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(list))
	index := make(map[int64]int, len(list))
	for i := range list {
		ids = append(ids, list[i].ID)
		index[list[i].ID] = i
		list[i].Genres = []models.Genre{}
	}

	var rows []struct {
		AnimeID int64
		ID      int64
		Name    string
	}
	if err := r.db.WithContext(ctx).
		Table("anime_genres AS ag").
		Select("ag.anime_id, g.id, g.name").
		Joins("JOIN genres g ON g.id = ag.genre_id").
		Where("ag.anime_id IN ?", ids).
		Order("g.name ASC").
		Scan(&rows).Error; err != nil {
		return fmt.Errorf("load anime genres: %w", err)
	}

	for _, row := range rows {
		i := index[row.AnimeID]
		list[i].Genres = append(list[i].Genres, models.Genre{ID: row.ID, Name: row.Name})
	}
	return nil
}

func ensureGenresExist(tx *gorm.DB, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(&models.Genre{}).Where("id IN ?", genreIDs).Count(&count).Error; err != nil {
		return fmt.Errorf("check genres: %w", err)
	}
	if count != int64(len(genreIDs)) {
		return ErrUnknownGenre
	}
	return nil
}

func linkGenres(tx *gorm.DB, animeID int64, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}
	links := make([]models.AnimeGenre, 0, len(genreIDs))
	for _, id := range genreIDs {
		links = append(links, models.AnimeGenre{AnimeID: animeID, GenreID: id})
	}
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	if database.IsForeignKeyViolation(err) {
		return ErrUnknownGenre
	}
	if err != nil {
		return fmt.Errorf("link genres: %w", err)
	}
	return nil
}

// escapeLike makes % and _ in user input match literally under ILIKE.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
