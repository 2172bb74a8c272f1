// Package database provides a ready-to-use database client for integration
// tests.
package database

import (
	"testing"

	"github.com/tarsy-bot/tarsy/pkg/database"
	"github.com/tarsy-bot/tarsy/test/util"
)

// NewTestClient creates a database client backed by an isolated test schema.
// In CI it connects to the external PostgreSQL service container
// (CI_DATABASE_URL); locally it uses a shared testcontainer. Cleanup is
// registered with the test.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
