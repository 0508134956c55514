package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, storeError := NewStore(":memory:")
	require.NoError(t, storeError)
	t.Cleanup(func() { store.Close() })
	return store
}

// TestAddProfileAppliesPostgresDefaults verifies that a postgres profile with
// no explicit port, user, or database receives the kind defaults.
func TestAddProfileAppliesPostgresDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, addError := store.AddProfile(ctx, ConnectionProfile{Kind: KindPostgres, Password: "secret"})
	require.NoError(t, addError)

	storedProfiles, listError := store.ListProfiles(ctx, "")
	require.NoError(t, listError)
	require.Len(t, storedProfiles, 1)

	assert.Equal(t, KindPostgres, storedProfiles[0].Kind)
	assert.Equal(t, "localhost", storedProfiles[0].Host)
	assert.Equal(t, 5432, storedProfiles[0].Port)
	assert.Equal(t, "postgres", storedProfiles[0].User)
	assert.Equal(t, "postgres", storedProfiles[0].DatabaseName)
	assert.Equal(t, "secret", storedProfiles[0].Password)
}

// TestListProfilesKindFilter verifies listing restricted to one connection kind.
func TestListProfilesKindFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, addError := store.AddProfile(ctx, ConnectionProfile{Kind: KindPostgres, Password: "p"})
	require.NoError(t, addError)
	_, addError = store.AddProfile(ctx, ConnectionProfile{Kind: KindMySQL, Password: "m"})
	require.NoError(t, addError)

	mysqlProfiles, listError := store.ListProfiles(ctx, KindMySQL)
	require.NoError(t, listError)
	require.Len(t, mysqlProfiles, 1)
	assert.Equal(t, KindMySQL, mysqlProfiles[0].Kind)
	assert.Equal(t, 3306, mysqlProfiles[0].Port)
	assert.Equal(t, "mysql", mysqlProfiles[0].DatabaseName)

	allProfiles, listAllError := store.ListProfiles(ctx, "")
	require.NoError(t, listAllError)
	assert.Len(t, allProfiles, 2)
}

// TestUpdateProfileFullFieldMatch verifies that update matches the original
// row by full field equality and replaces its values.
func TestUpdateProfileFullFieldMatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, addError := store.AddProfile(ctx, ConnectionProfile{Kind: KindMSSQL, Password: "s"})
	require.NoError(t, addError)

	storedProfiles, listError := store.ListProfiles(ctx, "")
	require.NoError(t, listError)
	require.Len(t, storedProfiles, 1)
	original := storedProfiles[0]
	assert.Equal(t, 1433, original.Port)
	assert.Equal(t, "master", original.DatabaseName)

	updated := original
	updated.Host = "db.internal"
	require.NoError(t, store.UpdateProfile(ctx, original, updated))

	refreshedProfiles, refreshError := store.ListProfiles(ctx, "")
	require.NoError(t, refreshError)
	require.Len(t, refreshedProfiles, 1)
	assert.Equal(t, "db.internal", refreshedProfiles[0].Host)

	// The original values no longer match any row.
	assert.Error(t, store.UpdateProfile(ctx, original, updated))
}

// TestDeleteProfile verifies removal by full field equality.
func TestDeleteProfile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, addError := store.AddProfile(ctx, ConnectionProfile{Kind: KindMongoDB, Password: "s"})
	require.NoError(t, addError)

	storedProfiles, listError := store.ListProfiles(ctx, "")
	require.NoError(t, listError)
	require.Len(t, storedProfiles, 1)
	assert.Equal(t, 27017, storedProfiles[0].Port)
	assert.Equal(t, "admin", storedProfiles[0].User)

	require.NoError(t, store.DeleteProfile(ctx, storedProfiles[0]))

	remainingProfiles, remainingError := store.ListProfiles(ctx, "")
	require.NoError(t, remainingError)
	assert.Empty(t, remainingProfiles)

	assert.Error(t, store.DeleteProfile(ctx, storedProfiles[0]))
}

// TestParseConnectionKind verifies kind validation and normalization.
func TestParseConnectionKind(t *testing.T) {
	parsedKind, parseError := ParseConnectionKind(" Postgres ")
	require.NoError(t, parseError)
	assert.Equal(t, KindPostgres, parsedKind)

	_, parseError = ParseConnectionKind("oracle")
	assert.Error(t, parseError)
}

// TestConnectionInfoRendering verifies the key-value and URI renderings.
func TestConnectionInfoRendering(t *testing.T) {
	connectionProfile := ConnectionProfile{Kind: KindMongoDB, Password: "pw"}
	connectionProfile.ApplyDefaults()

	assert.Equal(t, "host=localhost port=27017 dbname=admin user=admin password=pw", connectionProfile.ConnectionInfo())
	assert.Equal(t, "mongodb://admin:pw@localhost:27017/admin", connectionProfile.URI())
}
