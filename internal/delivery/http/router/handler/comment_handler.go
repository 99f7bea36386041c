package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"interviewlog/internal/delivery/http/response"
	"interviewlog/internal/usecase"
)

// CommentHandler holds dependencies for comment handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

type commentRequest struct {
	Content string `json:"content" form:"content"`
}

// Add attaches a comment to an interview.
func (h *CommentHandler) Add(c echo.Context) error {
	interviewID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid interview id")
	}

	authorID, ok := contextUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "請先登入")
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	comment, err := h.uc.Add(c.Request().Context(), interviewID, authorID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment added")
}
