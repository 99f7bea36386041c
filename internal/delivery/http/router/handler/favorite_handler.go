package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"interviewlog/internal/delivery/http/response"
	"interviewlog/internal/usecase"
)

// FavoriteHandler holds dependencies for the favorite toggle handler.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Toggle flips the caller's favorite mark on an interview.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	interviewID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid interview id")
	}

	userID, ok := contextUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "請先登入")
	}

	state, err := h.uc.Toggle(c.Request().Context(), userID, interviewID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"now_favorited": state.NowFavorited}, "")
}
