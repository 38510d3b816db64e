package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"animehub/cmd/cli/command/client"
	clidto "animehub/cmd/cli/dto"
	"animehub/cmd/cli/view"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the anime catalog",
	Long:  `Browse the catalog: list anime with filters, sorting and pagination, and list genres.`,
}

var listCatalogCmd = &cobra.Command{
	Use:   "list",
	Short: "List anime",
	Example: `  animehub catalog list --genre Action --sort rating
  animehub catalog list --search "space" --min-rating 4 --view list
  animehub catalog list -i`,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, layout, err := catalogQueryFromFlags(cmd)
		if err != nil {
			return err
		}

		c := publicClient()
		defer rememberVisitor(c)

		interactive, _ := cmd.Flags().GetBool("interactive")
		if !interactive {
			_, err := showCatalogPage(cmd, c, q, layout)
			return err
		}
		return browseCatalog(cmd, c, q, layout)
	},
}

var genresCatalogCmd = &cobra.Command{
	Use:   "genres",
	Short: "List all genres",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext(cmd)
		defer cancel()

		c := publicClient()
		defer rememberVisitor(c)

		genres, err := c.ListGenres(ctx)
		if err != nil {
			return fmt.Errorf("failed to get genres: %w", err)
		}
		view.RenderGenres(cmd.OutOrStdout(), genres)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(listCatalogCmd, genresCatalogCmd)
	addCatalogFlags(listCatalogCmd)
}

func addCatalogFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("page", clidto.DefaultPage, "page number")
	f.Int("limit", clidto.DefaultLimit, fmt.Sprintf("anime per page (1-%d)", clidto.MaxLimit))
	f.String("genre", "", "genre name or id")
	f.Float64("min-rating", 0, "minimum average rating (0-5)")
	f.String("sort", "", "title, year, episodes, rating or newest")
	f.String("search", "", "text to look for in titles and descriptions")
	f.String("view", string(view.LayoutGrid), "grid or list")
	f.BoolP("interactive", "i", false, "browse page by page")
}

func catalogQueryFromFlags(cmd *cobra.Command) (clidto.CatalogQuery, view.Layout, error) {
	f := cmd.Flags()
	q := clidto.NewCatalogQuery()

	genre, _ := f.GetString("genre")
	search, _ := f.GetString("search")
	sort, _ := f.GetString("sort")
	q = q.WithGenre(genre).WithSearch(search).WithSort(sort)

	if f.Changed("min-rating") {
		min, _ := f.GetFloat64("min-rating")
		q = q.WithMinRating(&min)
	}

	page, _ := f.GetInt("page")
	q = q.WithPage(page)
	limit, _ := f.GetInt("limit")
	if limit < 1 || limit > clidto.MaxLimit {
		return q, "", fmt.Errorf("limit must be between 1 and %d", clidto.MaxLimit)
	}
	q.Limit = limit

	layoutFlag, _ := f.GetString("view")
	layout := view.Layout(strings.ToLower(layoutFlag))
	if layout != view.LayoutGrid && layout != view.LayoutList {
		return q, "", fmt.Errorf("unknown view %q, use grid or list", layoutFlag)
	}
	return q, layout, nil
}

func showCatalogPage(cmd *cobra.Command, c *client.PublicClient, q clidto.CatalogQuery, layout view.Layout) (clidto.Pagination, error) {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	resp, err := c.ListAnime(ctx, q)
	if err != nil {
		return clidto.Pagination{}, fmt.Errorf("failed to get anime: %w", err)
	}

	p := clidto.NewPagination(q.Page, q.Limit, resp.Total)
	view.RenderCatalog(cmd.OutOrStdout(), resp.Items, p.Page, p.TotalPages, p.Total, layout)
	return p, nil
}

const browseHelp = `[n]ext  [p]rev  <number> go to page  g <genre>  s <search>  o <sort>  r <min rating>  c clear  q quit`

// browseCatalog re-fetches a full page after every command read from stdin.
func browseCatalog(cmd *cobra.Command, c *client.PublicClient, q clidto.CatalogQuery, layout view.Layout) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for {
		p, err := showCatalogPage(cmd, c, q, layout)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, browseHelp)
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			return in.Err()
		}

		next, quit, err := applyBrowseCommand(q, p, in.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if quit {
			return nil
		}
		q = next
	}
}

// applyBrowseCommand turns one line of input into the next query.
func applyBrowseCommand(q clidto.CatalogQuery, p clidto.Pagination, line string) (clidto.CatalogQuery, bool, error) {
	line = strings.TrimSpace(line)
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "q", "quit", "exit":
		return q, true, nil
	case "", "n", "next":
		if verb == "" || !p.HasNext() {
			return q, false, nil
		}
		return q.WithPage(q.Page + 1), false, nil
	case "p", "prev":
		if !p.HasPrev() {
			return q, false, nil
		}
		return q.WithPage(q.Page - 1), false, nil
	case "g", "genre":
		return q.WithGenre(arg), false, nil
	case "s", "search":
		return q.WithSearch(arg), false, nil
	case "o", "sort":
		return q.WithSort(arg), false, nil
	case "r", "rating":
		if arg == "" {
			return q.WithMinRating(nil), false, nil
		}
		min, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return q, false, fmt.Errorf("minimum rating must be a number")
		}
		return q.WithMinRating(&min), false, nil
	case "c", "clear":
		fresh := clidto.NewCatalogQuery()
		fresh.Limit = q.Limit
		return fresh, false, nil
	}

	if page, err := strconv.Atoi(verb); err == nil {
		if page < 1 || (p.TotalPages > 0 && page > p.TotalPages) {
			return q, false, fmt.Errorf("page must be between 1 and %d", p.TotalPages)
		}
		return q.WithPage(page), false, nil
	}
	return q, false, fmt.Errorf("unknown command %q", verb)
}

// printHome shows the first catalog page; used when no anime is selected.
func printHome(ctx context.Context, w io.Writer, c *client.PublicClient) error {
	q := clidto.NewCatalogQuery()
	resp, err := c.ListAnime(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to get anime: %w", err)
	}
	p := clidto.NewPagination(q.Page, q.Limit, resp.Total)
	view.RenderCatalog(w, resp.Items, p.Page, p.TotalPages, p.Total, view.LayoutGrid)
	return nil
}
