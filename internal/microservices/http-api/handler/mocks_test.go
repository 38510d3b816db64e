package handler_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/handler"
	"animehub/internal/microservices/http-api/middleware"
	"animehub/internal/microservices/http-api/service"
	"animehub/internal/ratelimit"
)

// --- MOCK SERVICES ---

type MockAnimeService struct {
	mock.Mock
}

func (m *MockAnimeService) List(ctx context.Context, filter dto.AnimeFilter) (*dto.AnimeListResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnimeListResponse), args.Error(1)
}

func (m *MockAnimeService) GetByID(ctx context.Context, id int64) (*dto.AnimeResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnimeResponse), args.Error(1)
}

func (m *MockAnimeService) Create(ctx context.Context, req dto.CreateAnimeDTO) (*dto.AnimeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnimeResponse), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListByAnime(ctx context.Context, animeID int64) ([]dto.CommentResponse, error) {
	args := m.Called(ctx, animeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) Create(ctx context.Context, animeID int64, req dto.CreateCommentDTO) (*dto.CommentResponse, error) {
	args := m.Called(ctx, animeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) ListRecent(ctx context.Context) ([]dto.RecentCommentResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RecentCommentResponse), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Rate(ctx context.Context, animeID int64, visitorID string, score int) (*dto.RateResponse, error) {
	args := m.Called(ctx, animeID, visitorID, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RateResponse), args.Error(1)
}

type MockGenreService struct {
	mock.Mock
}

func (m *MockGenreService) GetAll(ctx context.Context) ([]dto.GenreResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.GenreResponse), args.Error(1)
}

func (m *MockGenreService) Create(ctx context.Context, req dto.CreateGenreDTO) (*dto.GenreResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GenreResponse), args.Error(1)
}

func (m *MockGenreService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, clientIP, username, password string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, clientIP, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error { return p.err }

// --- SETUP ---

const adminToken = "valid-admin-token"

type testEnv struct {
	router  *gin.Engine
	anime   *MockAnimeService
	comment *MockCommentService
	rating  *MockRatingService
	genre   *MockGenreService
	auth    *MockAuthService
	signer  *middleware.VisitorSigner
}

func setupRouter() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		anime:   new(MockAnimeService),
		comment: new(MockCommentService),
		rating:  new(MockRatingService),
		genre:   new(MockGenreService),
		auth:    new(MockAuthService),
		signer:  middleware.NewVisitorSigner("test-visitor-secret"),
	}

	env.auth.On("ValidateToken", adminToken).
		Return(&service.Claims{AdminID: 1, Username: "admin"}, nil).Maybe()
	env.auth.On("ValidateToken", mock.MatchedBy(func(s string) bool { return s != adminToken })).
		Return(nil, service.ErrInvalidToken).Maybe()

	env.router = handler.NewRouter(handler.Services{
		Anime:   env.anime,
		Comment: env.comment,
		Rating:  env.rating,
		Genre:   env.genre,
		Auth:    env.auth,
	}, handler.RouterOptions{
		Logger:          zap.NewNop(),
		DB:              fakePinger{},
		Visitors:        env.signer,
		CommentThrottle: ratelimit.NewThrottle(60, 100),
	})
	return env
}

func fixedTime() time.Time {
	return time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
}
