package feedback

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// noticesResponse is the response for GET /feedback.
type noticesResponse struct {
	Count   int      `json:"count"`
	Notices []Notice `json:"notices"`
}

// RegisterRoutes registers the feedback polling endpoints on the group.
func RegisterRoutes(g *echo.Group, ch *Channel) {
	g.GET("/feedback", handleListNotices(ch))
	g.DELETE("/feedback/:id", handleDismissNotice(ch))
}

func handleListNotices(ch *Channel) echo.HandlerFunc {
	return func(c echo.Context) error {
		notices := ch.Active()
		return c.JSON(http.StatusOK, noticesResponse{
			Count:   len(notices),
			Notices: notices,
		})
	}
}

func handleDismissNotice(ch *Channel) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid notice id")
		}
		if !ch.Dismiss(id) {
			return echo.NewHTTPError(http.StatusNotFound, "notice not found")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
