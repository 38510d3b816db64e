package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"animehub/internal/config"
	"animehub/internal/metrics"
	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/repository"
	"animehub/internal/middleware/auth"
	"animehub/internal/ratelimit"
)

// TokenIssuer is the iss claim of every admin token.
const TokenIssuer = "animehub"

// Claims is the payload of an admin token. The subject holds the admin id.
type Claims struct {
	AdminID  int64  `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService interface {
	// Login checks the credentials of an admin connecting from clientIP and issues a token.
	Login(ctx context.Context, clientIP, username, password string) (*dto.LoginResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	limiter   *ratelimit.Limiter
	logger    *zap.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(
	adminRepo repository.AdminRepository,
	limiter *ratelimit.Limiter,
	cfg *config.Config,
	logger *zap.Logger,
) AuthService {
	return &authService{
		adminRepo: adminRepo,
		limiter:   limiter,
		logger:    logger,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  cfg.AdminTokenTTL,
		now:       time.Now,
	}
}

func (s *authService) Login(ctx context.Context, clientIP, username, password string) (*dto.LoginResponse, error) {
	if ok, retry := s.limiter.CheckLogin(ctx, clientIP); !ok {
		metrics.AdminLogins.WithLabelValues("limited").Inc()
		s.logger.Warn("admin login throttled", zap.String("client_ip", clientIP))
		return nil, &LoginLimitedError{RetryAfter: retry}
	}

	admin, err := s.adminRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		// unknown user costs a bcrypt comparison too
		auth.BurnPasswordCheck(password)
		metrics.AdminLogins.WithLabelValues("failure").Inc()
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := auth.VerifyPassword(admin.PasswordHash, password); err != nil {
		metrics.AdminLogins.WithLabelValues("failure").Inc()
		s.logger.Info("admin login failed", zap.String("username", admin.Username), zap.String("client_ip", clientIP))
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}

	s.limiter.ResetLogin(ctx, clientIP)
	metrics.AdminLogins.WithLabelValues("success").Inc()
	s.logger.Info("admin logged in", zap.Int64("admin_id", admin.ID))

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

func (s *authService) generateToken(adminID int64, username string) (string, error) {
	now := s.now()
	claims := Claims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(adminID, 10),
			Issuer:    TokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken checks signature, algorithm, issuer and expiry.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, ErrExpiredToken
	}
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject != strconv.FormatInt(claims.AdminID, 10) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
