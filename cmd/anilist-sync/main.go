package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"animehub/database"
	"animehub/internal/config"
	"animehub/internal/ingestion/anilist"
	"animehub/internal/logger"
	"animehub/internal/microservices/http-api/repository"
)

func main() {
	var (
		pages   int
		perPage int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "anilist-sync",
		Short: "Import popular anime from AniList into the catalog",
		Long: `Fetches anime from the AniList GraphQL API ordered by popularity and inserts
them into the catalog. Anime imported earlier are left untouched.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pages < 1 || perPage < 1 || perPage > 50 {
				return errors.New("--pages must be positive and --per-page between 1 and 50")
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			zl, err := logger.New(cfg)
			if err != nil {
				return err
			}
			defer zl.Sync()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := database.ConnectDB(cfg, zl)
			if err != nil {
				return err
			}
			defer db.Close()

			importer := anilist.NewImporter(
				anilist.NewClient(cfg.AniListAPIURL, zl),
				repository.NewAnimeRepository(db.Gorm),
				repository.NewGenreRepository(db.Gorm),
				workers,
				zl,
			)

			zl.Info("starting anilist import",
				zap.Int("pages", pages),
				zap.Int("per_page", perPage),
				zap.Int("workers", workers),
			)
			stats, err := importer.Run(ctx, pages, perPage)
			zl.Info("anilist import finished",
				zap.Int64("fetched", stats.Fetched),
				zap.Int64("created", stats.Created),
				zap.Int64("skipped", stats.Skipped),
				zap.Int64("failed", stats.Failed),
			)
			cmd.Println(stats.String())
			if errors.Is(err, context.Canceled) {
				zl.Warn("import cancelled")
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 3, "number of pages to fetch")
	cmd.Flags().IntVar(&perPage, "per-page", 50, "anime per page (max 50)")
	cmd.Flags().IntVar(&workers, "workers", 5, "concurrent database writers")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
