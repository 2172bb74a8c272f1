package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/tarsy-bot/tarsy/ent/alertsession"
	"github.com/tarsy-bot/tarsy/pkg/hooks"
	"github.com/tarsy-bot/tarsy/pkg/models"
)

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	var q listSessionsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, total, err := s.sessions.ListSessions(c.Request().Context(), models.SessionFilter{
		Status:    q.Status,
		AlertType: q.AlertType,
		ChainID:   q.ChainID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return mapServiceError(err)
	}

	out := &SessionListResponse{
		Sessions: make([]SessionSummary, 0, len(sessions)),
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}
	for _, session := range sessions {
		out.Sessions = append(out.Sessions, sessionSummary(session))
	}
	return c.JSON(http.StatusOK, out)
}

// getSessionHandler handles GET /api/v1/sessions/:id. Returns the session
// with its stages and the merged interaction timeline.
func (s *Server) getSessionHandler(c *echo.Context) error {
	detail, err := s.sessions.GetSessionDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sessionDetail(detail))
}

// cancelSessionHandler handles POST /api/v1/sessions/:id/cancel.
//
// A processing session owned by this pod is cancelled through its worker,
// which fails the running stage and finalizes the session asynchronously. A
// pending session is finalized here directly. Terminal sessions conflict.
func (s *Server) cancelSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")

	if s.pool != nil && s.pool.CancelSession(sessionID) {
		return c.JSON(http.StatusAccepted, &CancelResponse{
			SessionID: sessionID,
			Status:    "cancelling",
		})
	}

	session, err := s.sessions.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}

	switch session.Status {
	case alertsession.StatusPending:
		if err := s.sessions.Finalize(c.Request().Context(), sessionID,
			alertsession.StatusFailed, "", "cancelled"); err != nil {
			return mapServiceError(err)
		}
		s.bus.PublishSessionLifecycle(hooks.SessionLifecycleEvent{
			SessionID: sessionID,
			Type:      hooks.LifecycleCancelled,
		})
		return c.JSON(http.StatusOK, &CancelResponse{
			SessionID: sessionID,
			Status:    "cancelled",
		})
	case alertsession.StatusProcessing:
		// Claimed by another pod; this pod cannot reach its context.
		return echo.NewHTTPError(http.StatusConflict,
			"session is processing on another pod")
	default:
		return echo.NewHTTPError(http.StatusConflict,
			"session is not in a cancellable state")
	}
}
