package client

import (
	"context"
	"fmt"
	"net/http"

	"animehub/internal/microservices/http-api/dto"
)

// AdminClient calls the /api/admin endpoints with the token it holds.
type AdminClient struct {
	http  *HTTPClient
	token string
}

func NewAdminClient(apiURL, token string) *AdminClient {
	return &AdminClient{http: NewHTTPClient(apiURL), token: token}
}

func (c *AdminClient) Token() string { return c.token }

// Login exchanges credentials for a token and keeps it for later calls.
func (c *AdminClient) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	req := dto.LoginRequest{Username: username, Password: password}
	if err := c.http.do(ctx, http.MethodPost, "/api/admin/login", nil, "", req, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

func (c *AdminClient) Verify(ctx context.Context) (*dto.VerifyResponse, error) {
	var out dto.VerifyResponse
	if err := c.authed(ctx, http.MethodGet, "/api/admin/verify", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AdminClient) CreateAnime(ctx context.Context, req dto.CreateAnimeDTO) (*dto.AnimeResponse, error) {
	var out dto.AnimeResponse
	if err := c.authed(ctx, http.MethodPost, "/api/admin/anime", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AdminClient) CreateGenre(ctx context.Context, name string) (*dto.GenreResponse, error) {
	var out dto.GenreResponse
	if err := c.authed(ctx, http.MethodPost, "/api/admin/genres", dto.CreateGenreDTO{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AdminClient) DeleteGenre(ctx context.Context, id int64) error {
	return c.authed(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/genres/%d", id), nil, nil)
}

func (c *AdminClient) RecentComments(ctx context.Context) ([]dto.RecentCommentResponse, error) {
	var out []dto.RecentCommentResponse
	if err := c.authed(ctx, http.MethodGet, "/api/admin/comments/recent", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AdminClient) DeleteComment(ctx context.Context, id int64) error {
	return c.authed(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/comments/%d", id), nil, nil)
}

func (c *AdminClient) authed(ctx context.Context, method, path string, body, out interface{}) error {
	if c.token == "" {
		return &APIError{StatusCode: http.StatusUnauthorized, Message: "not logged in"}
	}
	return c.http.do(ctx, method, path, nil, c.token, body, out)
}
