package client

import (
	"context"
	"fmt"
	"net/http"

	clidto "animehub/cmd/cli/dto"
	"animehub/internal/microservices/http-api/dto"
)

// PublicClient calls the anonymous catalog endpoints.
type PublicClient struct {
	*HTTPClient
}

func NewPublicClient(apiURL, visitorID string) *PublicClient {
	c := NewHTTPClient(apiURL)
	c.SetVisitorID(visitorID)
	return &PublicClient{HTTPClient: c}
}

func (c *PublicClient) ListAnime(ctx context.Context, q clidto.CatalogQuery) (*dto.AnimeListResponse, error) {
	var out dto.AnimeListResponse
	if err := c.do(ctx, http.MethodGet, "/api/anime", q.Values(), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *PublicClient) GetAnime(ctx context.Context, id int64) (*dto.AnimeResponse, error) {
	var out dto.AnimeResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/anime/%d", id), nil, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *PublicClient) ListComments(ctx context.Context, animeID int64) ([]dto.CommentResponse, error) {
	var out []dto.CommentResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/anime/%d/comments", animeID), nil, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostComment sends a comment; an empty username posts anonymously.
func (c *PublicClient) PostComment(ctx context.Context, animeID int64, username, text string) (*dto.CommentResponse, error) {
	req := dto.CreateCommentDTO{Text: text}
	if username != "" {
		req.Username = &username
	}
	var out dto.CreateCommentResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/anime/%d/comments", animeID), nil, "", req, &out); err != nil {
		return nil, err
	}
	return &out.Comment, nil
}

func (c *PublicClient) Rate(ctx context.Context, animeID int64, score int) (*dto.RateResponse, error) {
	var out dto.RateResponse
	req := dto.CreateRatingDTO{Rating: dto.Score(score)}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/anime/%d/rate", animeID), nil, "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *PublicClient) ListGenres(ctx context.Context) ([]dto.GenreResponse, error) {
	var out []dto.GenreResponse
	if err := c.do(ctx, http.MethodGet, "/api/genres", nil, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
