package dto

import (
	"time"

	"animehub/internal/microservices/http-api/models"
)

// Comment limits
const (
	MaxCommentLength  = 2000
	MaxUsernameLength = 50
	RecentCommentsMax = 20
)

// CreateCommentDTO for POST /api/anime/:id/comments
type CreateCommentDTO struct {
	Username *string `json:"username,omitempty"`
	Text     string  `json:"text"`
}

// CommentResponse for returning comment information
type CommentResponse struct {
	ID        int64     `json:"id"`
	AnimeID   int64     `json:"anime_id"`
	Username  *string   `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentCommentResponse is a comment listed on the moderation panel
type RecentCommentResponse struct {
	CommentResponse
	AnimeTitle string `json:"anime_title"`
}

// CreateCommentResponse acknowledges a posted comment
type CreateCommentResponse struct {
	Success bool            `json:"success"`
	Comment CommentResponse `json:"comment"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		AnimeID:   comment.AnimeID,
		Username:  comment.Username,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}

func FromModelToRecentCommentResponse(comment *models.RecentComment) RecentCommentResponse {
	return RecentCommentResponse{
		CommentResponse: FromModelToCommentResponse(&comment.Comment),
		AnimeTitle:      comment.AnimeTitle,
	}
}
