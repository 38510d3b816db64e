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

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login serves POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp, err := h.authService.Login(ctx, c.ClientIP(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Verify serves GET /api/admin/verify behind the auth middleware.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims, ok := middleware.AdminClaims(c)
	if !ok {
		respondError(c, service.ErrInvalidToken)
		return
	}
	c.JSON(http.StatusOK, dto.VerifyResponse{
		Valid:    true,
		AdminID:  claims.AdminID,
		Username: claims.Username,
	})
}
