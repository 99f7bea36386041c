package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"interviewlog/internal/delivery/http/response"
	"interviewlog/internal/usecase"
)

// Context keys set by the auth middleware for handlers to read.
const (
	ContextKeyUserID       = "userID"
	ContextKeyUser         = "user"
	ContextKeySessionToken = "sessionToken"
)

// SessionCookieName is the cookie the login handler sets; the middleware
// accepts the token from either this cookie or a bearer header.
const SessionCookieName = "session_token"

// AuthMiddleware resolves session tokens into identities. Resolution goes
// through the usecase layer so a logged-out token is rejected even while its
// signature is still valid.
type AuthMiddleware struct {
	userUsecase usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUsecase usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUsecase: userUsecase}
}

// RequireAuth rejects the request with 401 unless a live session resolves.
// The response carries a next hint pointing back at the requested path.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return unauthorized(c, "AUTHENTICATION_REQUIRED", "請先登入")
		}

		identity, err := m.userUsecase.Resolve(c.Request().Context(), token)
		if err != nil {
			return unauthorized(c, "SESSION_INVALID", "無效或已過期的登入階段")
		}

		c.Set(ContextKeyUserID, identity.User.ID)
		c.Set(ContextKeyUser, identity.User)
		c.Set(ContextKeySessionToken, token)

		return next(c)
	}
}

// OptionalAuth resolves an identity when a valid token is present but never
// rejects the request. Anonymous requests proceed with no identity set.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return next(c)
		}

		identity, err := m.userUsecase.Resolve(c.Request().Context(), token)
		if err != nil {
			return next(c)
		}

		c.Set(ContextKeyUserID, identity.User.ID)
		c.Set(ContextKeyUser, identity.User)
		c.Set(ContextKeySessionToken, token)

		return next(c)
	}
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != authHeader {
			return token
		}
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

func unauthorized(c echo.Context, code, message string) error {
	return c.JSON(http.StatusUnauthorized, response.Response{
		Success: false,
		Code:    http.StatusUnauthorized,
		Message: message,
		Data:    map[string]string{"next": c.Request().URL.Path},
		Error: &response.ErrorInfo{
			Code:    code,
			Details: "sign in at /users/sign_in",
		},
	})
}
