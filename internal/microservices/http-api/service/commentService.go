package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"animehub/internal/metrics"
	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"
)

type CommentService interface {
	ListByAnime(ctx context.Context, animeID int64) ([]dto.CommentResponse, error)
	Create(ctx context.Context, animeID int64, req dto.CreateCommentDTO) (*dto.CommentResponse, error)
	ListRecent(ctx context.Context) ([]dto.RecentCommentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	animeRepo   repository.AnimeRepository
}

func NewCommentService(commentRepo repository.CommentRepository, animeRepo repository.AnimeRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		animeRepo:   animeRepo,
	}
}

// ListByAnime returns the comments of an anime, newest first.
func (s *commentService) ListByAnime(ctx context.Context, animeID int64) ([]dto.CommentResponse, error) {
	if err := s.ensureAnime(ctx, animeID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByAnime(ctx, animeID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, dto.FromModelToCommentResponse(&comments[i]))
	}
	return out, nil
}

func (s *commentService) Create(ctx context.Context, animeID int64, req dto.CreateCommentDTO) (*dto.CommentResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, validationError("text is required")
	}
	if utf8.RuneCountInString(text) > dto.MaxCommentLength {
		return nil, validationError("text must be at most %d characters", dto.MaxCommentLength)
	}

	// blank names are stored as NULL and shown as anonymous
	var username *string
	if req.Username != nil {
		name := strings.TrimSpace(*req.Username)
		if utf8.RuneCountInString(name) > dto.MaxUsernameLength {
			return nil, validationError("username must be at most %d characters", dto.MaxUsernameLength)
		}
		if name != "" {
			username = &name
		}
	}

	if err := s.ensureAnime(ctx, animeID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		AnimeID:  animeID,
		Username: username,
		Text:     text,
	}
	err := s.commentRepo.Create(ctx, comment)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAnimeNotFound
	}
	if err != nil {
		return nil, err
	}
	metrics.CommentsCreated.Inc()

	resp := dto.FromModelToCommentResponse(comment)
	return &resp, nil
}

func (s *commentService) ListRecent(ctx context.Context) ([]dto.RecentCommentResponse, error) {
	comments, err := s.commentRepo.ListRecent(ctx, dto.RecentCommentsMax)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RecentCommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, dto.FromModelToRecentCommentResponse(&comments[i]))
	}
	return out, nil
}

// Delete removes a comment; deleting a missing comment succeeds.
func (s *commentService) Delete(ctx context.Context, id int64) error {
	return s.commentRepo.Delete(ctx, id)
}

func (s *commentService) ensureAnime(ctx context.Context, animeID int64) error {
	ok, err := s.animeRepo.Exists(ctx, animeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAnimeNotFound
	}
	return nil
}
