package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// sessionResponse is the response for GET /auth/me.
type sessionResponse struct {
	UserID string   `json:"user_id"`
	Name   string   `json:"name,omitempty"`
	Email  string   `json:"email,omitempty"`
	Roles  []string `json:"roles,omitempty"`
}

// Handler exposes session endpoints for the signed-in user.
type Handler struct {
	revocations *TokenRevocationStore
}

func NewHandler(revocations *TokenRevocationStore) *Handler {
	return &Handler{revocations: revocations}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/auth/me", h.Me)
	g.POST("/auth/logout", h.Logout)
}

// Me returns the identity of the signed-in user.
func (h *Handler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, ErrNoIdentity.Error())
	}

	resp := sessionResponse{UserID: id.String()}
	if claims := ClaimsFromContext(ctx); claims != nil {
		resp.Name = claims.Name
		resp.Email = claims.Email
		resp.Roles = claims.Roles
	}

	return c.JSON(http.StatusOK, resp)
}

// Logout revokes the current token so it can no longer be presented.
// Tokens without a JTI claim cannot be revoked individually; logout is
// still acknowledged so clients can drop their local session.
func (h *Handler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, ErrNoIdentity.Error())
	}

	claims := ClaimsFromContext(ctx)
	if claims != nil && claims.ID != "" {
		expiresAt := time.Now().Add(1 * time.Hour)
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}
		h.revocations.RevokeForUser(claims.ID, id.String(), expiresAt)
	}

	return c.NoContent(http.StatusNoContent)
}
