package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-bot/tarsy/ent/alertsession"
	"github.com/tarsy-bot/tarsy/pkg/models"
	"github.com/tarsy-bot/tarsy/pkg/services"
	"github.com/tarsy-bot/tarsy/test/util"
)

func TestCleanupLoop(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sessions := services.NewSessionService(client, services.NewClocks())
	ctx := context.Background()

	for _, id := range []string{"expired", "fresh"} {
		_, err := sessions.CreateSession(ctx, models.CreateSessionInput{
			SessionID: id,
			AlertID:   "alert-" + id,
			AlertType: "kubernetes",
			ChainID:   "test-chain",
			ChainDefinition: map[string]any{
				"stages": []any{map[string]any{"name": "analysis", "agent": "KubernetesAgent"}},
			},
		})
		require.NoError(t, err)
		require.NoError(t, sessions.Finalize(ctx, id, alertsession.StatusCompleted, "done", ""))
	}

	oldUs := time.Now().AddDate(0, 0, -30).UnixMicro()
	_, err := client.AlertSession.UpdateOneID("expired").SetCompletedAtUs(oldUs).Save(ctx)
	require.NoError(t, err)

	// The loop runs once at startup, so a long interval still cleans up
	// immediately.
	svc := NewService(sessions, 7, time.Hour)
	svc.Start(ctx)
	defer svc.Stop()

	require.Eventually(t, func() bool {
		_, err := sessions.GetSession(ctx, "expired")
		return err != nil
	}, 5*time.Second, 10*time.Millisecond)

	_, err = sessions.GetSession(ctx, "fresh")
	assert.NoError(t, err)
}

func TestStopWithoutStart(t *testing.T) {
	svc := NewService(nil, 7, 0)
	svc.Stop()
	assert.Equal(t, DefaultInterval, svc.interval)
}
