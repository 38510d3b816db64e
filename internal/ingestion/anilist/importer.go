package anilist

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"animehub/internal/metrics"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"
)

// Source yields pages of popular anime. *Client satisfies it.
type Source interface {
	GetPopularAnime(ctx context.Context, page, perPage int) (*PageResponse, error)
}

// Stats summarises one import run.
type Stats struct {
	Fetched int64
	Created int64
	Skipped int64
	Failed  int64
}

func (s Stats) String() string {
	return fmt.Sprintf("fetched=%d created=%d skipped=%d failed=%d", s.Fetched, s.Created, s.Skipped, s.Failed)
}

// Importer copies AniList anime into the catalog. Rows already imported
// (same anilist_id) are left untouched.
type Importer struct {
	source  Source
	anime   repository.AnimeRepository
	genres  repository.GenreRepository
	workers int
	logger  *zap.Logger
}

func NewImporter(source Source, anime repository.AnimeRepository, genres repository.GenreRepository, workers int, logger *zap.Logger) *Importer {
	return &Importer{
		source:  source,
		anime:   anime,
		genres:  genres,
		workers: workers,
		logger:  logger,
	}
}

// Run fetches up to pages pages of perPage items and imports them through a worker pool.
// A failed page fetch stops the run; failed items are counted and skipped.
func (im *Importer) Run(ctx context.Context, pages, perPage int) (Stats, error) {
	var fetched, created, skipped, failed atomic.Int64

	pool := NewWorkerPool(ctx, im.workers, im.logger)
	pool.Start()

	var runErr error
	for page := 1; page <= pages; page++ {
		resp, err := im.source.GetPopularAnime(ctx, page, perPage)
		if err != nil {
			runErr = err
			break
		}

		im.logger.Info("fetched anilist page",
			zap.Int("page", page),
			zap.Int("items", len(resp.Page.Media)),
		)

		for _, media := range resp.Page.Media {
			media := media
			fetched.Add(1)
			submitted := pool.Submit(func(ctx context.Context) error {
				ok, err := im.importOne(ctx, media)
				switch {
				case err != nil:
					failed.Add(1)
					metrics.ImportItems.WithLabelValues("failed").Inc()
					return fmt.Errorf("anilist %d: %w", media.ID, err)
				case ok:
					created.Add(1)
					metrics.ImportItems.WithLabelValues("created").Inc()
				default:
					skipped.Add(1)
					metrics.ImportItems.WithLabelValues("skipped").Inc()
				}
				return nil
			})
			if !submitted {
				runErr = ctx.Err()
				break
			}
		}

		if runErr != nil || !resp.Page.PageInfo.HasNextPage {
			break
		}
	}

	pool.Wait()

	stats := Stats{
		Fetched: fetched.Load(),
		Created: created.Load(),
		Skipped: skipped.Load(),
		Failed:  failed.Load(),
	}
	if runErr == nil {
		runErr = ctx.Err()
	}
	return stats, runErr
}

func (im *Importer) importOne(ctx context.Context, media MediaData) (bool, error) {
	extracted, err := ExtractAnime(media)
	if err != nil {
		return false, err
	}

	var genreIDs []int64
	if len(extracted.Genres) > 0 {
		genres, err := im.genres.EnsureByNames(ctx, extracted.Genres)
		if err != nil {
			return false, fmt.Errorf("ensure genres: %w", err)
		}
		genreIDs = make([]int64, 0, len(genres))
		for _, g := range genres {
			genreIDs = append(genreIDs, g.ID)
		}
	}

	anilistID := extracted.AniListID
	return im.anime.CreateImported(ctx, &models.Anime{
		Title:       extracted.Title,
		Description: extracted.Description,
		ImageURL:    extracted.ImageURL,
		VideoURL:    extracted.VideoURL,
		Year:        extracted.Year,
		Episodes:    extracted.Episodes,
		AniListID:   &anilistID,
	}, genreIDs)
}
