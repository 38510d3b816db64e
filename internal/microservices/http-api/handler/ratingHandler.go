package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/middleware"
	"animehub/internal/microservices/http-api/service"
)

type RatingHandler struct {
	svc service.RatingService
}

func NewRatingHandler(svc service.RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/:id/rate", h.Rate)
}

// Rate serves POST /api/anime/:id/rate. The visitor id set by the identity
// middleware is the rating key; the legacy userIp field is ignored.
func (h *RatingHandler) Rate(c *gin.Context) {
	animeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp, err := h.svc.Rate(ctx, animeID, middleware.VisitorID(c), int(req.Rating))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
