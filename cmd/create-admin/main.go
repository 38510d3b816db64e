package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"animehub/database"
	"animehub/internal/config"
	"animehub/internal/logger"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"
	"animehub/internal/middleware/auth"
)

const minPasswordLength = 8

func main() {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account or reset its password",
		Long: `Stores a bcrypt hash for the given admin. Running it again for an existing
username replaces the password. Without --password the password is read from stdin.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			username = strings.TrimSpace(username)
			if username == "" {
				return errors.New("--username is required")
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if len(password) < minPasswordLength {
				return fmt.Errorf("password must be at least %d characters", minPasswordLength)
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

			db, err := database.ConnectDB(cfg, zl)
			if err != nil {
				return err
			}
			defer db.Close()

			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			admin := &models.Admin{Username: username, PasswordHash: hash}
			if err := repository.NewAdminRepository(db.Gorm).Upsert(ctx, admin); err != nil {
				return err
			}

			zl.Info("admin saved", zap.String("username", username))
			fmt.Fprintf(cmd.OutOrStdout(), "admin %q saved\n", username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "admin username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password (prompted when empty)")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
