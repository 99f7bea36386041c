package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"interviewlog/config"
	"interviewlog/internal/delivery/http/middleware"
	"interviewlog/internal/delivery/http/router"
	"interviewlog/internal/delivery/http/router/handler"
	"interviewlog/internal/delivery/http/validator"
	"interviewlog/internal/infra/auth"
	"interviewlog/internal/infra/persistence/model"
	"interviewlog/internal/infra/persistence/postgres"
	mockService "interviewlog/internal/mocks/service"
	"interviewlog/internal/usecase/impl"
)

// newTestServer wires the real usecases and repositories over an in-memory
// database behind the production router, so a request travels the same path
// it would in a deployed instance.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.SessionModel{},
		&model.InterviewModel{},
		&model.CommentModel{},
		&model.FavoriteModel{},
	))

	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: time.Hour}}
	cfg.SecretKey.Session = "scenario-session-secret"

	tokenService, err := auth.NewSessionTokenService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	interviewRepo := postgres.NewInterviewRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	txManager := postgres.NewTransactionManager(db)

	userUc := impl.NewUserService(impl.UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})
	interviewUc := impl.NewInterviewService(impl.InterviewServiceParams{
		TxManager:     txManager,
		InterviewRepo: interviewRepo,
		CommentRepo:   commentRepo,
		FavoriteRepo:  favoriteRepo,
		Logger:        logger,
	})
	commentUc := impl.NewCommentService(impl.CommentServiceParams{
		InterviewRepo: interviewRepo,
		CommentRepo:   commentRepo,
		Logger:        logger,
	})
	favoriteUc := impl.NewFavoriteService(impl.FavoriteServiceParams{
		TxManager: txManager,
		Logger:    logger,
	})
	paymentUc := impl.NewPaymentService(impl.PaymentServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Gateway:   mockService.NewMockPaymentGateway(t),
		Config:    cfg,
		Logger:    logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	router.NewRouter(router.RouterParams{
		UserHandler:      handler.NewUserHandler(userUc, logger),
		InterviewHandler: handler.NewInterviewHandler(interviewUc, logger),
		CommentHandler:   handler.NewCommentHandler(commentUc, logger),
		FavoriteHandler:  handler.NewFavoriteHandler(favoriteUc, logger),
		PageHandler:      handler.NewPageHandler(paymentUc, logger),
		AuthMiddleware:   middleware.NewAuthMiddleware(userUc),
	}).RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// Walks a whole user journey through the wire surface: register, log in,
// record interviews, comment, toggle a favorite, delete, log out.
func TestScenario_RegisterThroughDelete(t *testing.T) {
	e := newTestServer(t)

	// Register.
	rec := doJSON(e, http.MethodPost, "/users",
		`{"username":"frank","password":"s3cret-enough","email":"frank@example.com"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Log in and capture the session token.
	rec = doJSON(e, http.MethodPost, "/users/login",
		`{"username":"frank","password":"s3cret-enough"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	decodeData(t, rec, &login)
	require.NotEmpty(t, login.Token)

	// Record three interviews.
	ids := make([]int64, 0, 3)
	for _, company := range []string{"First Corp", "Second Corp", "Third Corp"} {
		rec = doJSON(e, http.MethodPost, "/interviews",
			`{"company_name":"`+company+`","position":"Backend Engineer","rating":8}`, login.Token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var created struct {
			ID int64 `json:"id"`
		}
		decodeData(t, rec, &created)
		ids = append(ids, created.ID)
	}

	// Listing returns newest first.
	rec = doJSON(e, http.MethodGet, "/interviews", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Interviews []struct {
			ID int64 `json:"id"`
		} `json:"interviews"`
	}
	decodeData(t, rec, &listing)
	require.Len(t, listing.Interviews, 3)
	assert.Equal(t, ids[2], listing.Interviews[0].ID)
	assert.Equal(t, ids[1], listing.Interviews[1].ID)
	assert.Equal(t, ids[0], listing.Interviews[2].ID)

	target := "/interviews/" + jsonNumber(ids[0])

	// Comment on the first interview.
	rec = doJSON(e, http.MethodPost, target+"/comment", `{"content":"thanks for sharing"}`, login.Token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var comment struct {
		Content string `json:"content"`
	}
	decodeData(t, rec, &comment)
	assert.Equal(t, "thanks for sharing", comment.Content)

	// Toggle the favorite: on, off, on again.
	for _, want := range []bool{true, false, true} {
		rec = doJSON(e, http.MethodPost, target+"/favorite", "", login.Token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var toggled struct {
			NowFavorited bool `json:"now_favorited"`
		}
		decodeData(t, rec, &toggled)
		assert.Equal(t, want, toggled.NowFavorited)
	}

	// Detail shows the comment and the favorite state for the viewer.
	rec = doJSON(e, http.MethodGet, target, "", login.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail struct {
		Favorited bool `json:"favorited"`
		Comments  []struct {
			Content        string `json:"content"`
			AuthorUsername string `json:"author_username"`
		} `json:"comments"`
	}
	decodeData(t, rec, &detail)
	assert.True(t, detail.Favorited)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "thanks for sharing", detail.Comments[0].Content)
	assert.Equal(t, "frank", detail.Comments[0].AuthorUsername)

	// Delete the interview; its detail is gone afterwards.
	rec = doJSON(e, http.MethodPost, target+"/delete", "", login.Token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodGet, target, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Log out; the token stops working immediately.
	rec = doJSON(e, http.MethodPost, "/users/logout", "", login.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/interviews",
		`{"company_name":"Late Corp","position":"Backend Engineer","rating":5}`, login.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Mutating someone else's interview is rejected across the wire.
func TestScenario_NonOwnerCannotMutate(t *testing.T) {
	e := newTestServer(t)

	login := func(username string) string {
		rec := doJSON(e, http.MethodPost, "/users",
			`{"username":"`+username+`","password":"s3cret-enough","email":"`+username+`@example.com"}`, "")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = doJSON(e, http.MethodPost, "/users/login",
			`{"username":"`+username+`","password":"s3cret-enough"}`, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var out struct {
			Token string `json:"token"`
		}
		decodeData(t, rec, &out)

		return out.Token
	}

	ownerToken := login("grace")
	otherToken := login("henry")

	rec := doJSON(e, http.MethodPost, "/interviews",
		`{"company_name":"Acme Corp","position":"Backend Engineer","rating":8}`, ownerToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID int64 `json:"id"`
	}
	decodeData(t, rec, &created)
	target := "/interviews/" + jsonNumber(created.ID)

	rec = doJSON(e, http.MethodPost, target,
		`{"company_name":"Hijacked","position":"Backend Engineer","rating":1}`, otherToken)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodPost, target+"/delete", "", otherToken)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
}

func jsonNumber(id int64) string {
	return strconv.FormatInt(id, 10)
}
