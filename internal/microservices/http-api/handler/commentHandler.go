package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/service"
)

type CommentHandler struct {
	svc service.CommentService
}

func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// RegisterRoutes mounts the public comment routes under /api/anime.
// throttle guards comment creation.
func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup, throttle gin.HandlerFunc) {
	rg.GET("/:id/comments", h.List)
	rg.POST("/:id/comments", throttle, h.Create)
}

func (h *CommentHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/comments/recent", h.Recent)
	rg.DELETE("/comments/:id", h.Delete)
}

func (h *CommentHandler) List(c *gin.Context) {
	animeID, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comments, err := h.svc.ListByAnime(ctx, animeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Create(c *gin.Context) {
	animeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comment, err := h.svc.Create(ctx, animeID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateCommentResponse{Success: true, Comment: *comment})
}

func (h *CommentHandler) Recent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comments, err := h.svc.ListRecent(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Delete serves DELETE /api/admin/comments/:id and succeeds for missing comments.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
