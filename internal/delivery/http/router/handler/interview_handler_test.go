package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewlog/internal/delivery/http/middleware"
	"interviewlog/internal/domain/entity"
	"interviewlog/internal/usecase"
)

// fakeInterviewUsecase lets each test plug in just the behavior it needs.
type fakeInterviewUsecase struct {
	create func(ctx context.Context, ownerID uuid.UUID, fields usecase.InterviewFields) (*entity.Interview, error)
	get    func(ctx context.Context, id int64, viewerID uuid.UUID) (*usecase.InterviewDetail, error)
	list   func(ctx context.Context, input usecase.ListInterviewsInput) ([]*entity.Interview, error)
	update func(ctx context.Context, id int64, requesterID uuid.UUID, fields usecase.InterviewFields) (*entity.Interview, error)
	delete func(ctx context.Context, id int64, requesterID uuid.UUID) error
}

func (f *fakeInterviewUsecase) Create(ctx context.Context, ownerID uuid.UUID, fields usecase.InterviewFields) (*entity.Interview, error) {
	return f.create(ctx, ownerID, fields)
}

func (f *fakeInterviewUsecase) Get(ctx context.Context, id int64, viewerID uuid.UUID) (*usecase.InterviewDetail, error) {
	return f.get(ctx, id, viewerID)
}

func (f *fakeInterviewUsecase) List(ctx context.Context, input usecase.ListInterviewsInput) ([]*entity.Interview, error) {
	return f.list(ctx, input)
}

func (f *fakeInterviewUsecase) Update(ctx context.Context, id int64, requesterID uuid.UUID, fields usecase.InterviewFields) (*entity.Interview, error) {
	return f.update(ctx, id, requesterID, fields)
}

func (f *fakeInterviewUsecase) Delete(ctx context.Context, id int64, requesterID uuid.UUID) error {
	return f.delete(ctx, id, requesterID)
}

func TestInterviewHandler_Detail(t *testing.T) {
	viewerID := uuid.New()
	uc := &fakeInterviewUsecase{
		get: func(_ context.Context, id int64, viewer uuid.UUID) (*usecase.InterviewDetail, error) {
			assert.Equal(t, int64(42), id)
			assert.Equal(t, viewerID, viewer)
			return &usecase.InterviewDetail{
				Interview: &entity.Interview{ID: 42, CompanyName: "Acme Corp"},
				Comments:  []*entity.Comment{{ID: 1, Content: "nice"}},
				Favorited: true,
			}, nil
		},
	}
	handler := NewInterviewHandler(uc, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/interviews/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/interviews/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")
	c.Set(middleware.ContextKeyUserID, viewerID)

	require.NoError(t, handler.Detail(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Favorited bool `json:"favorited"`
			Interview struct {
				CompanyName string `json:"company_name"`
			} `json:"interview"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, body.Data.Favorited)
	assert.Equal(t, "Acme Corp", body.Data.Interview.CompanyName)
}

func TestInterviewHandler_Create_SetsLocationHeader(t *testing.T) {
	ownerID := uuid.New()
	uc := &fakeInterviewUsecase{
		create: func(_ context.Context, owner uuid.UUID, fields usecase.InterviewFields) (*entity.Interview, error) {
			assert.Equal(t, ownerID, owner)
			return &entity.Interview{ID: 7, OwnerID: owner, CompanyName: fields.CompanyName}, nil
		},
	}
	handler := NewInterviewHandler(uc, slog.Default())

	e := echo.New()
	payload := `{"company_name":"Acme Corp","position":"Backend Engineer","rating":7}`
	req := httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, ownerID)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/interviews/7", rec.Header().Get("Location"))
}

func TestInterviewHandler_Create_AnonymousRejected(t *testing.T) {
	handler := NewInterviewHandler(&fakeInterviewUsecase{}, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInterviewHandler_List_ClampsPagination(t *testing.T) {
	var captured usecase.ListInterviewsInput
	uc := &fakeInterviewUsecase{
		list: func(_ context.Context, input usecase.ListInterviewsInput) ([]*entity.Interview, error) {
			captured = input
			return nil, nil
		},
	}
	handler := NewInterviewHandler(uc, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/interviews?limit=9999&offset=-3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultListLimit, captured.Limit)
	assert.Equal(t, 0, captured.Offset)
}

func TestInterviewHandler_Detail_BadID(t *testing.T) {
	handler := NewInterviewHandler(&fakeInterviewUsecase{}, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/interviews/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/interviews/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.Detail(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
