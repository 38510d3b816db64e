package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/service"
)

type AnimeHandler struct {
	svc service.AnimeService
}

func NewAnimeHandler(svc service.AnimeService) *AnimeHandler {
	return &AnimeHandler{svc: svc}
}

func (h *AnimeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
}

func (h *AnimeHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/anime", h.Create)
}

// List serves GET /api/anime?page&limit&genre&minRating&sort&search
func (h *AnimeHandler) List(c *gin.Context) {
	filter, err := parseAnimeFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp, err := h.svc.List(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AnimeHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	anime, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, anime)
}

// Create serves POST /api/admin/anime
func (h *AnimeHandler) Create(c *gin.Context) {
	var in dto.CreateAnimeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	anime, err := h.svc.Create(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, anime)
}

// parseAnimeFilter reads the catalog query. Malformed paging falls back to the
// defaults; a malformed rating threshold is rejected.
func parseAnimeFilter(c *gin.Context) (dto.AnimeFilter, error) {
	f := dto.AnimeFilter{
		Page:   dto.DefaultPage,
		Limit:  dto.DefaultLimit,
		Sort:   c.Query("sort"),
		Search: strings.TrimSpace(c.Query("search")),
	}

	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		f.Page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= dto.MaxLimit {
		f.Limit = l
	}

	if g := strings.TrimSpace(c.Query("genre")); g != "" {
		if id, err := strconv.ParseInt(g, 10, 64); err == nil {
			f.GenreID = &id
		} else {
			f.GenreName = g
		}
	}

	if mr := strings.TrimSpace(c.Query("minRating")); mr != "" {
		v, err := strconv.ParseFloat(mr, 64)
		if err != nil {
			return f, fmt.Errorf("%w: minRating must be a number", service.ErrValidation)
		}
		f.MinRating = &v
	}
	return f, nil
}
