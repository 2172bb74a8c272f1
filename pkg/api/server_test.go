package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-bot/tarsy/ent/alertsession"
	"github.com/tarsy-bot/tarsy/pkg/config"
	"github.com/tarsy-bot/tarsy/pkg/hooks"
	"github.com/tarsy-bot/tarsy/pkg/models"
	"github.com/tarsy-bot/tarsy/pkg/services"
	testdb "github.com/tarsy-bot/tarsy/test/database"
)

func newTestServer(t *testing.T) (*Server, *services.SessionService) {
	t.Helper()
	db := testdb.NewTestClient(t)
	sessions := services.NewSessionService(db.Client, services.NewClocks())

	chains, err := config.NewChainRegistry(map[string]config.ChainConfig{
		"kubernetes-agent-chain": {
			AlertTypes: []string{"kubernetes", "NamespaceTerminating"},
			Stages: []config.StageConfig{
				{Name: "analysis", Agent: "KubernetesAgent"},
			},
		},
	})
	require.NoError(t, err)

	cfg := &config.Config{
		Settings:      &config.Settings{},
		ChainRegistry: chains,
	}

	bus := hooks.NewBus()
	t.Cleanup(bus.Close)

	return NewServer(cfg, db, sessions, nil, bus, nil), sessions
}

func doRequest(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func createAPITestSession(t *testing.T, sessions *services.SessionService, id string) {
	t.Helper()
	_, err := sessions.CreateSession(context.Background(), models.CreateSessionInput{
		SessionID: id,
		AlertID:   "alert-" + id,
		AlertType: "kubernetes",
		AlertData: map[string]any{"namespace": "prod"},
		ChainID:   "kubernetes-agent-chain",
		ChainDefinition: map[string]any{
			"stages": []any{map[string]any{"name": "analysis", "agent": "KubernetesAgent"}},
		},
	})
	require.NoError(t, err)
}

func TestSubmitAlert(t *testing.T) {
	s, sessions := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/alerts", `{
		"alert_type": "NamespaceTerminating",
		"alert_data": {"namespace": "prod", "cluster": "main"},
		"runbook": "https://github.com/acme/runbooks/blob/main/namespace.md"
	}`)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	resp := decodeJSON[SubmitAlertResponse](t, rec)
	assert.Equal(t, "accepted", resp.Status)
	assert.NotEmpty(t, resp.AlertID)
	require.NotEmpty(t, resp.SessionID)

	session, err := sessions.GetSession(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, alertsession.StatusPending, session.Status)
	assert.Equal(t, "kubernetes-agent-chain", session.ChainID)
	assert.Equal(t, "prod", session.AlertData["namespace"])
	// The runbook URL travels inside the alert data.
	assert.Equal(t, "https://github.com/acme/runbooks/blob/main/namespace.md", session.AlertData["runbook"])

	stages, ok := session.ChainDefinition["stages"].([]any)
	require.True(t, ok)
	assert.Len(t, stages, 1)
}

func TestSubmitAlertRejections(t *testing.T) {
	s, sessions := newTestServer(t)

	t.Run("missing alert_type", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/v1/alerts", `{"alert_data": {}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "alert_type")
	})

	t.Run("unknown alert type", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/v1/alerts", `{"alert_type": "DiskPressure", "alert_data": {"node": "worker-3"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeJSON[SubmitAlertResponse](t, rec)
		assert.Equal(t, "failed", resp.Status)
		assert.Contains(t, resp.Error, "DiskPressure")
		require.NotEmpty(t, resp.SessionID)

		// The rejection leaves an auditable failed session behind.
		session, err := sessions.GetSession(context.Background(), resp.SessionID)
		require.NoError(t, err)
		assert.Equal(t, alertsession.StatusFailed, session.Status)
		require.NotNil(t, session.ErrorMessage)
		assert.Contains(t, *session.ErrorMessage, "DiskPressure")
		assert.Contains(t, *session.ErrorMessage, "kubernetes")
		require.NotNil(t, session.CompletedAtUs)
		assert.Equal(t, "worker-3", session.AlertData["node"])
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/v1/alerts", `{"alert_type": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversize alert data", func(t *testing.T) {
		payload := `{"alert_type": "kubernetes", "alert_data": {"dump": "` +
			strings.Repeat("x", config.MaxAlertDataSize) + `"}}`
		rec := doRequest(t, s, http.MethodPost, "/api/v1/alerts", payload)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestAlertTypes(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/alert-types", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[AlertTypesResponse](t, rec)
	assert.Contains(t, resp.AlertTypes, "kubernetes")
	assert.Contains(t, resp.AlertTypes, "NamespaceTerminating")
}

func TestListSessions(t *testing.T) {
	s, sessions := newTestServer(t)
	ctx := context.Background()

	for _, id := range []string{"s1", "s2", "s3"} {
		createAPITestSession(t, sessions, id)
	}
	require.NoError(t, sessions.Finalize(ctx, "s2", alertsession.StatusFailed, "", "boom"))

	t.Run("all sessions newest first", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/sessions", "")
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeJSON[SessionListResponse](t, rec)
		assert.Equal(t, 3, resp.Total)
		require.Len(t, resp.Sessions, 3)
		assert.Equal(t, "s3", resp.Sessions[0].SessionID)
	})

	t.Run("status filter", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/sessions?status=failed", "")
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeJSON[SessionListResponse](t, rec)
		assert.Equal(t, 1, resp.Total)
		require.Len(t, resp.Sessions, 1)
		assert.Equal(t, "s2", resp.Sessions[0].SessionID)
		assert.Equal(t, "boom", resp.Sessions[0].ErrorMessage)
	})

	t.Run("pagination", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/sessions?limit=2&offset=2", "")
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeJSON[SessionListResponse](t, rec)
		assert.Equal(t, 3, resp.Total)
		assert.Len(t, resp.Sessions, 1)
		assert.Equal(t, 2, resp.Limit)
	})
}

func TestGetSession(t *testing.T) {
	s, sessions := newTestServer(t)
	ctx := context.Background()

	createAPITestSession(t, sessions, "s1")
	require.NoError(t, sessions.Finalize(ctx, "s1", alertsession.StatusCompleted, "root cause found", ""))

	rec := doRequest(t, s, http.MethodGet, "/api/v1/sessions/s1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[SessionDetailResponse](t, rec)
	assert.Equal(t, "s1", resp.SessionID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "root cause found", resp.FinalAnalysis)
	assert.Equal(t, "prod", resp.AlertData["namespace"])
	assert.NotNil(t, resp.Stages)
	assert.NotNil(t, resp.Timeline)

	t.Run("unknown session", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/sessions/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCancelSessionEndpoint(t *testing.T) {
	s, sessions := newTestServer(t)

	createAPITestSession(t, sessions, "s1")

	rec := doRequest(t, s, http.MethodPost, "/api/v1/sessions/s1/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[CancelResponse](t, rec)
	assert.Equal(t, "cancelled", resp.Status)

	session, err := sessions.GetSession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, alertsession.StatusFailed, session.Status)
	require.NotNil(t, session.ErrorMessage)
	assert.Equal(t, "cancelled", *session.ErrorMessage)

	t.Run("terminal session conflicts", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/v1/sessions/s1/cancel", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/v1/sessions/nope/cancel", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[HealthResponse](t, rec)
	assert.Equal(t, "healthy", resp.Status)
	require.NotNil(t, resp.Database)
}

func TestWebSocketUnavailableWithoutManager(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/ws", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
