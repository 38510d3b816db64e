package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"animehub/internal/microservices/http-api/dto"
)

const anonymous = "Anonymous"

// CommentAuthor returns the display name of a comment.
func CommentAuthor(username *string) string {
	if username == nil || strings.TrimSpace(*username) == "" {
		return anonymous
	}
	return *username
}

// RenderDetail prints the watch page of one anime with its comments.
func RenderDetail(w io.Writer, a *dto.AnimeResponse, comments []dto.CommentResponse) {
	titleColor.Fprintln(w, a.Title)
	fmt.Fprintf(w, "%s  |  %s  |  %s episodes\n",
		starColor.Sprint(FormatRating(a.AverageRating, a.RatingCount)),
		FormatYear(a.Year),
		FormatEpisodes(a.Episodes),
	)
	if len(a.Genres) > 0 {
		names := make([]string, 0, len(a.Genres))
		for _, g := range a.Genres {
			names = append(names, g.Name)
		}
		tagColor.Fprintln(w, strings.Join(names, " · "))
	}
	fmt.Fprintln(w)

	desc := strings.TrimSpace(a.Description)
	if desc == "" {
		desc = "No description"
	}
	fmt.Fprintln(w, desc)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Watch: %s\n", color.New(color.Underline).Sprint(a.VideoURL))
	fmt.Fprintln(w)

	RenderComments(w, comments)
}

// RenderComments prints comments in the order given (the API returns newest first).
func RenderComments(w io.Writer, comments []dto.CommentResponse) {
	fmt.Fprintf(w, "Comments (%d)\n", len(comments))
	if len(comments) == 0 {
		mutedColor.Fprintln(w, "  No comments yet. Be the first!")
		return
	}
	for _, c := range comments {
		fmt.Fprintf(w, "  %s %s\n", tagColor.Sprint(CommentAuthor(c.Username)), mutedColor.Sprint(c.CreatedAt.Local().Format("2006-01-02 15:04")))
		fmt.Fprintf(w, "    %s\n", c.Text)
	}
}

// RenderRecentComments prints the moderation list.
func RenderRecentComments(w io.Writer, comments []dto.RecentCommentResponse) {
	if len(comments) == 0 {
		mutedColor.Fprintln(w, "No comments.")
		return
	}
	for _, c := range comments {
		fmt.Fprintf(w, "%s %s on %s %s\n",
			mutedColor.Sprintf("#%d", c.ID),
			tagColor.Sprint(CommentAuthor(c.Username)),
			titleColor.Sprint(c.AnimeTitle),
			mutedColor.Sprint(c.CreatedAt.Local().Format("2006-01-02 15:04")),
		)
		fmt.Fprintf(w, "    %s\n", Truncate(c.Text, DescriptionLimit))
	}
}

// RenderGenres prints genres as "id  name" rows.
func RenderGenres(w io.Writer, genres []dto.GenreResponse) {
	if len(genres) == 0 {
		mutedColor.Fprintln(w, "No genres.")
		return
	}
	for _, g := range genres {
		fmt.Fprintf(w, "%4d  %s\n", g.ID, g.Name)
	}
}
