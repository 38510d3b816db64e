package command

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"animehub/cmd/cli/command/client"
	"animehub/cmd/cli/view"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch, rate and comment on an anime",
}

var showWatchCmd = &cobra.Command{
	Use:   "show [anime-id]",
	Short: "Show an anime with its video link and comments",
	Long:  `Show an anime with its video link and comments. Without an id the catalog home page is shown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext(cmd)
		defer cancel()

		c := publicClient()
		defer rememberVisitor(c)

		if len(args) == 0 {
			return printHome(ctx, cmd.OutOrStdout(), c)
		}

		id, err := parseID(args[0], "anime")
		if err != nil {
			return err
		}

		anime, err := c.GetAnime(ctx, id)
		if client.IsStatus(err, http.StatusNotFound) {
			return fmt.Errorf("anime %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("failed to get anime: %w", err)
		}

		comments, err := c.ListComments(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get comments: %w", err)
		}

		view.RenderDetail(cmd.OutOrStdout(), anime, comments)
		return nil
	},
}

var rateWatchCmd = &cobra.Command{
	Use:   "rate [anime-id] [1-5]",
	Short: "Rate an anime from 1 to 5 stars",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "anime")
		if err != nil {
			return err
		}
		score, err := strconv.Atoi(args[1])
		if err != nil || score < 1 || score > 5 {
			return errors.New("rating must be a whole number from 1 to 5")
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		c := publicClient()
		defer rememberVisitor(c)

		resp, err := c.Rate(ctx, id, score)
		if client.IsStatus(err, http.StatusConflict) {
			return errors.New("you have already rated this anime")
		}
		if err != nil {
			return fmt.Errorf("failed to rate: %w", err)
		}

		success(cmd, "Thanks for rating!")
		fmt.Fprintln(cmd.OutOrStdout(), view.FormatRating(resp.AverageRating, resp.RatingCount))
		return nil
	},
}

var commentWatchCmd = &cobra.Command{
	Use:   "comment [anime-id]",
	Short: "Post a comment on an anime",
	Example: `  animehub watch comment 1 --text "Great!" --name Bob
  animehub watch comment 1 --text "Anonymous thoughts"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "anime")
		if err != nil {
			return err
		}
		text, _ := cmd.Flags().GetString("text")
		name, _ := cmd.Flags().GetString("name")
		if strings.TrimSpace(text) == "" {
			return errors.New("comment text is required")
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		c := publicClient()
		defer rememberVisitor(c)

		if _, err := c.PostComment(ctx, id, strings.TrimSpace(name), text); err != nil {
			return fmt.Errorf("failed to post comment: %w", err)
		}
		success(cmd, "Comment posted!")

		comments, err := c.ListComments(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get comments: %w", err)
		}
		view.RenderComments(cmd.OutOrStdout(), comments)
		return nil
	},
}

func init() {
	watchCmd.AddCommand(showWatchCmd, rateWatchCmd, commentWatchCmd)

	commentWatchCmd.Flags().StringP("text", "t", "", "comment text")
	commentWatchCmd.Flags().StringP("name", "n", "", "display name (anonymous when empty)")
	commentWatchCmd.MarkFlagRequired("text")
}
