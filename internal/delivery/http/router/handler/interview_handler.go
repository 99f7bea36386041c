package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"interviewlog/internal/delivery/http/middleware"
	"interviewlog/internal/delivery/http/response"
	domainerrors "interviewlog/internal/domain/errors"
	"interviewlog/internal/usecase"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	dateLayout       = "2006-01-02"
)

// InterviewHandler holds dependencies for interview record handlers.
type InterviewHandler struct {
	uc     usecase.InterviewUsecase
	logger *slog.Logger
}

// NewInterviewHandler is the constructor for InterviewHandler, injected by Fx.
func NewInterviewHandler(uc usecase.InterviewUsecase, logger *slog.Logger) *InterviewHandler {
	return &InterviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type interviewRequest struct {
	CompanyName   string `json:"company_name" form:"company_name" validate:"required"`
	Position      string `json:"position" form:"position" validate:"required"`
	InterviewDate string `json:"interview_date" form:"interview_date"`
	Review        string `json:"review" form:"review"`
	Rating        int    `json:"rating" form:"rating" validate:"required"`
	Result        string `json:"result" form:"result"`
}

func (req *interviewRequest) toFields() (usecase.InterviewFields, error) {
	fields := usecase.InterviewFields{
		CompanyName: req.CompanyName,
		Position:    req.Position,
		Review:      req.Review,
		Rating:      req.Rating,
		Result:      req.Result,
	}

	if req.InterviewDate != "" {
		date, err := time.Parse(dateLayout, req.InterviewDate)
		if err != nil {
			return fields, domainerrors.NewFieldViolations().Add("interview_date", "日期格式必須為 YYYY-MM-DD")
		}
		fields.InterviewDate = &date
	}

	return fields, nil
}

// List returns interview records newest first.
func (h *InterviewHandler) List(c echo.Context) error {
	limit := queryInt(c, "limit", defaultListLimit)
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	interviews, err := h.uc.List(c.Request().Context(), usecase.ListInterviewsInput{Limit: limit, Offset: offset})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"interviews": interviews,
		"limit":      limit,
		"offset":     offset,
	}, "")
}

// Create records a new interview owned by the caller.
func (h *InterviewHandler) Create(c echo.Context) error {
	ownerID, ok := contextUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "請先登入")
	}

	var req interviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid interview input")
	}

	fields, err := req.toFields()
	if err != nil {
		return errors.WithStack(err)
	}

	interview, err := h.uc.Create(c.Request().Context(), ownerID, fields)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Location", fmt.Sprintf("/interviews/%d", interview.ID))

	return response.Success(c, http.StatusCreated, interview, "Interview recorded")
}

// Detail returns one interview with its comments and the caller's favorite state.
func (h *InterviewHandler) Detail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid interview id")
	}

	viewerID, _ := contextUserID(c)

	detail, err := h.uc.Get(c.Request().Context(), id, viewerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"interview": detail.Interview,
		"comments":  detail.Comments,
		"favorited": detail.Favorited,
	}, "")
}

// EditForm returns the editable fields of an interview, for the owner only.
func (h *InterviewHandler) EditForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid interview id")
	}

	requesterID, ok := contextUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "請先登入")
	}

	detail, err := h.uc.Get(c.Request().Context(), id, requesterID)
	if err != nil {
		return errors.WithStack(err)
	}
	if detail.Interview.OwnerID != requesterID {
		return errors.WithStack(domainerrors.ErrNotOwner.WrapMessage("edit form requested by non-owner"))
	}

	interview := detail.Interview
	form := map[string]any{
		"company_name": interview.CompanyName,
		"position":     interview.Position,
		"review":       interview.Review,
		"rating":       interview.Rating,
		"result":       interview.Result,
	}
	if interview.InterviewDate != nil {
		form["interview_date"] = interview.InterviewDate.Format(dateLayout)
	}

	return response.Success(c, http.StatusOK, form, "")
}

// Update replaces the mutable fields of an interview, for the owner only.
func (h *InterviewHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid interview id")
	}

	requesterID, ok := contextUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "請先登入")
	}

	var req interviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid interview input")
	}

	fields, err := req.toFields()
	if err != nil {
		return errors.WithStack(err)
	}

	interview, err := h.uc.Update(c.Request().Context(), id, requesterID, fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, interview, "Interview updated")
}

// Delete removes an interview and everything attached to it, for the owner only.
func (h *InterviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid interview id")
	}

	requesterID, ok := contextUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "請先登入")
	}

	if err := h.uc.Delete(c.Request().Context(), id, requesterID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Interview deleted"}, "Interview deleted")
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

func contextUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}
