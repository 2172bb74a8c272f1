package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"

	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/hooks"
	"github.com/tarsy-bot/tarsy/pkg/models"
)

// submitAlertHandler handles POST /api/v1/alerts. The session is persisted in
// pending status and picked up by the worker pool; the response returns
// immediately with the session id.
func (s *Server) submitAlertHandler(c *echo.Context) error {
	var req SubmitAlertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.AlertType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "alert_type field is required")
	}

	if req.AlertData == nil {
		req.AlertData = map[string]any{}
	}
	encoded, err := json.Marshal(req.AlertData)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "alert_data is not serializable")
	}
	if len(encoded) > config.MaxAlertDataSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("alert data exceeds maximum size of %d bytes", config.MaxAlertDataSize))
	}

	alertID := req.AlertID
	if alertID == "" {
		alertID = uuid.NewString()
	}

	// The runbook URL travels inside the alert data so the snapshot row is
	// self-contained.
	alertData := make(map[string]any, len(req.AlertData)+1)
	for k, v := range req.AlertData {
		alertData[k] = v
	}
	if req.Runbook != "" {
		alertData["runbook"] = req.Runbook
	}

	sessionID := uuid.NewString()

	chainID, chain, err := s.cfg.ChainRegistry.GetChainForAlertType(req.AlertType)
	if err != nil {
		var unknownType *config.UnknownAlertTypeError
		if errors.As(err, &unknownType) {
			return s.rejectUnknownAlertType(c, sessionID, alertID, alertData, req.AlertType, unknownType)
		}
		return mapServiceError(err)
	}

	snapshot, err := chainSnapshot(chain)
	if err != nil {
		return mapServiceError(err)
	}
	session, err := s.sessions.CreateSession(c.Request().Context(), models.CreateSessionInput{
		SessionID:       sessionID,
		AlertID:         alertID,
		AlertType:       req.AlertType,
		AlertData:       alertData,
		ChainID:         chainID,
		ChainDefinition: snapshot,
	})
	if err != nil {
		return mapServiceError(err)
	}

	s.bus.PublishSessionLifecycle(hooks.SessionLifecycleEvent{
		SessionID: session.ID,
		Type:      hooks.LifecycleSessionCreated,
		Detail:    chainID,
	})

	return c.JSON(http.StatusAccepted, &SubmitAlertResponse{
		AlertID:   alertID,
		SessionID: session.ID,
		Status:    "accepted",
	})
}

// rejectUnknownAlertType persists an immediately failed session for an alert
// type no chain handles. No stage rows are created and the session never
// enters the queue, but operators can audit what was submitted and why it
// was rejected.
func (s *Server) rejectUnknownAlertType(c *echo.Context, sessionID, alertID string, alertData map[string]any, alertType string, cause *config.UnknownAlertTypeError) error {
	session, err := s.sessions.CreateFailedSession(c.Request().Context(), models.CreateSessionInput{
		SessionID: sessionID,
		AlertID:   alertID,
		AlertType: alertType,
		AlertData: alertData,
	}, cause.Error())
	if err != nil {
		return mapServiceError(err)
	}

	s.bus.PublishSessionLifecycle(hooks.SessionLifecycleEvent{
		SessionID: session.ID,
		Type:      hooks.LifecycleFailed,
		Detail:    cause.Error(),
	})

	return c.JSON(http.StatusBadRequest, &SubmitAlertResponse{
		AlertID:   alertID,
		SessionID: session.ID,
		Status:    "failed",
		Error:     cause.Error(),
	})
}

// alertTypesHandler handles GET /api/v1/alert-types.
func (s *Server) alertTypesHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, &AlertTypesResponse{
		AlertTypes: s.cfg.ChainRegistry.KnownAlertTypes(),
	})
}

// chainSnapshot freezes the chain definition as a plain JSON map. Sessions
// replay this snapshot at execution time, so later configuration changes
// never affect accepted alerts.
func chainSnapshot(chain *config.ChainConfig) (map[string]any, error) {
	encoded, err := json.Marshal(chain)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot chain: %w", err)
	}
	var snapshot map[string]any
	if err := json.Unmarshal(encoded, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to snapshot chain: %w", err)
	}
	return snapshot, nil
}
