package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"animehub/cmd/cli/authentication"
	"animehub/cmd/cli/command/client"
	"animehub/cmd/cli/view"
	"animehub/internal/microservices/http-api/dto"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administration commands",
	Long:  `Log in as an administrator to add anime and moderate genres and comments.`,
}

var loginAdminCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as an administrator",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			p, err := prompt(cmd, "Password: ")
			if err != nil {
				return err
			}
			password = p
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		c := client.NewAdminClient(apiURL(), "")
		resp, err := c.Login(ctx, username, password)
		if client.IsStatus(err, http.StatusTooManyRequests) {
			return errors.New("too many login attempts, try again later")
		}
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		if err := authentication.StoreToken(&authentication.StoredCredentials{
			Token:     resp.Token,
			Username:  username,
			ExpiresAt: time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
		}); err != nil {
			return fmt.Errorf("cannot store token: %w", err)
		}

		success(cmd, "Logged in as %s (session expires in %s)", username, time.Duration(resp.ExpiresIn)*time.Second)
		return nil
	},
}

var logoutAdminCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored admin token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authentication.DeleteToken(); err != nil {
			return err
		}
		success(cmd, "Logged out.")
		return nil
	},
}

var statusAdminCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the stored admin token is still valid",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := adminClient()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		resp, err := c.Verify(ctx)
		if err != nil {
			return handleAdminError(err)
		}
		success(cmd, "Logged in as %s (admin #%d)", resp.Username, resp.AdminID)
		return nil
	},
}

var addAnimeAdminCmd = &cobra.Command{
	Use:   "add-anime",
	Short: "Add an anime to the catalog",
	Example: `  animehub admin add-anime --title "Cowboy Bebop" --description "Space bounty hunters" \
    --image-url https://example.com/bebop.jpg --video-url https://example.com/bebop.mp4 \
    --year 1998 --episodes 26 --genre-ids 1,4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		req := dto.CreateAnimeDTO{}
		req.Title, _ = f.GetString("title")
		req.Description, _ = f.GetString("description")
		req.ImageURL, _ = f.GetString("image-url")
		req.VideoURL, _ = f.GetString("video-url")
		req.GenreIDs, _ = f.GetInt64Slice("genre-ids")
		if f.Changed("year") {
			year, _ := f.GetInt("year")
			req.Year = &year
		}
		if f.Changed("episodes") {
			episodes, _ := f.GetInt("episodes")
			req.Episodes = &episodes
		}

		c, err := adminClient()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		anime, err := c.CreateAnime(ctx, req)
		if err != nil {
			return handleAdminError(err)
		}
		success(cmd, "Anime created: #%d %s", anime.ID, anime.Title)
		return nil
	},
}

var genresAdminCmd = &cobra.Command{
	Use:   "genres",
	Short: "Manage genres",
}

var listGenresAdminCmd = &cobra.Command{
	Use:   "list",
	Short: "List genres",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext(cmd)
		defer cancel()

		genres, err := publicClient().ListGenres(ctx)
		if err != nil {
			return fmt.Errorf("failed to get genres: %w", err)
		}
		view.RenderGenres(cmd.OutOrStdout(), genres)
		return nil
	},
}

var addGenreAdminCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a genre",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		c, err := adminClient()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		genre, err := c.CreateGenre(ctx, name)
		if client.IsStatus(err, http.StatusConflict) {
			return fmt.Errorf("genre %q already exists", name)
		}
		if err != nil {
			return handleAdminError(err)
		}
		success(cmd, "Genre created: #%d %s", genre.ID, genre.Name)
		return nil
	},
}

var deleteGenreAdminCmd = &cobra.Command{
	Use:   "delete [genre-id]",
	Short: "Delete a genre and unlink it from every anime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "genre")
		if err != nil {
			return err
		}
		if ok, err := confirm(cmd, fmt.Sprintf("Delete genre %d?", id)); err != nil || !ok {
			return err
		}

		c, err := adminClient()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		if err := c.DeleteGenre(ctx, id); err != nil {
			return handleAdminError(err)
		}
		success(cmd, "Genre %d deleted.", id)
		return nil
	},
}

var commentsAdminCmd = &cobra.Command{
	Use:   "comments",
	Short: "Moderate comments",
}

var recentCommentsAdminCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the latest comments",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := adminClient()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		comments, err := c.RecentComments(ctx)
		if err != nil {
			return handleAdminError(err)
		}
		view.RenderRecentComments(cmd.OutOrStdout(), comments)
		return nil
	},
}

var deleteCommentAdminCmd = &cobra.Command{
	Use:   "delete [comment-id]",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "comment")
		if err != nil {
			return err
		}
		if ok, err := confirm(cmd, fmt.Sprintf("Delete comment %d?", id)); err != nil || !ok {
			return err
		}

		c, err := adminClient()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		if err := c.DeleteComment(ctx, id); err != nil {
			return handleAdminError(err)
		}
		success(cmd, "Comment %d deleted.", id)
		return nil
	},
}

func init() {
	adminCmd.AddCommand(loginAdminCmd, logoutAdminCmd, statusAdminCmd, addAnimeAdminCmd, genresAdminCmd, commentsAdminCmd)
	genresAdminCmd.AddCommand(listGenresAdminCmd, addGenreAdminCmd, deleteGenreAdminCmd)
	commentsAdminCmd.AddCommand(recentCommentsAdminCmd, deleteCommentAdminCmd)

	loginAdminCmd.Flags().StringP("username", "u", "", "admin username")
	loginAdminCmd.Flags().StringP("password", "p", "", "admin password (prompted when empty)")
	loginAdminCmd.MarkFlagRequired("username")

	f := addAnimeAdminCmd.Flags()
	f.String("title", "", "title")
	f.String("description", "", "description")
	f.String("image-url", "", "cover image URL")
	f.String("video-url", "", "video URL")
	f.Int("year", 0, "release year")
	f.Int("episodes", 0, "number of episodes")
	f.Int64Slice("genre-ids", nil, "genre ids, comma separated")
	for _, name := range []string{"title", "description", "image-url", "video-url"} {
		addAnimeAdminCmd.MarkFlagRequired(name)
	}

	for _, c := range []*cobra.Command{deleteGenreAdminCmd, deleteCommentAdminCmd} {
		c.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	}
}

// adminClient returns a client holding the stored token.
func adminClient() (*client.AdminClient, error) {
	creds, err := authentication.GetToken()
	if err != nil {
		return nil, err
	}
	return client.NewAdminClient(apiURL(), creds.Token), nil
}

// handleAdminError drops a token the server no longer accepts.
func handleAdminError(err error) error {
	if client.IsStatus(err, http.StatusUnauthorized) {
		_ = authentication.DeleteToken()
		return fmt.Errorf("session is no longer valid (%v), please run 'animehub admin login'", err)
	}
	return err
}

func confirm(cmd *cobra.Command, question string) (bool, error) {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true, nil
	}
	answer, err := prompt(cmd, question+" [y/N] ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return false, nil
	}
	return true, nil
}

func prompt(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
