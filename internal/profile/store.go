package profile

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

const (
	sqliteDriverName       = "sqlite3"
	inMemoryDatabasePath   = ":memory:"
	busyTimeoutPragma      = "PRAGMA busy_timeout=5000"
	journalModePragma      = "PRAGMA journal_mode=WAL"
	profileNotFoundMessage = "no profile matches the given values"

	insertProfileStatement = `INSERT INTO database_hosts (conn_type, host, port, dbname, user, password)
VALUES (?, ?, ?, ?, ?, ?)`
	selectAllProfilesQuery = `SELECT id, conn_type, host, port, dbname, user, password
FROM database_hosts ORDER BY id`
	selectProfilesByKindQuery = `SELECT id, conn_type, host, port, dbname, user, password
FROM database_hosts WHERE conn_type = ? ORDER BY id`
	updateProfileStatement = `UPDATE database_hosts SET conn_type = ?, host = ?, port = ?, dbname = ?, user = ?, password = ?
WHERE conn_type = ? AND host = ? AND port = ? AND dbname = ? AND user = ? AND password = ?`
	deleteProfileStatement = `DELETE FROM database_hosts
WHERE conn_type = ? AND host = ? AND port = ? AND dbname = ? AND user = ? AND password = ?`
)

// Store wraps the embedded SQLite table holding connection profiles. It
// assumes single-process, single-user access.
type Store struct {
	databaseHandle *sql.DB
	databasePath   string
}

// NewStore opens (creating if needed) the profile database at databasePath
// and ensures the schema exists.
func NewStore(databasePath string) (*Store, error) {
	if databasePath != inMemoryDatabasePath {
		parentDirectory := filepath.Dir(databasePath)
		if makeDirectoryError := os.MkdirAll(parentDirectory, 0o755); makeDirectoryError != nil {
			return nil, fmt.Errorf("create profile database directory: %w", makeDirectoryError)
		}
	}

	databaseHandle, openError := sql.Open(sqliteDriverName, databasePath)
	if openError != nil {
		return nil, fmt.Errorf("open profile database: %w", openError)
	}

	for _, pragma := range []string{busyTimeoutPragma, journalModePragma} {
		if _, pragmaError := databaseHandle.Exec(pragma); pragmaError != nil {
			databaseHandle.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, pragmaError)
		}
	}

	if _, schemaError := databaseHandle.Exec(schemaSQL); schemaError != nil {
		databaseHandle.Close()
		return nil, fmt.Errorf("initialize profile schema: %w", schemaError)
	}

	return &Store{databaseHandle: databaseHandle, databasePath: databasePath}, nil
}

// Close releases the underlying database connection.
func (store *Store) Close() error {
	if store.databaseHandle != nil {
		return store.databaseHandle.Close()
	}
	return nil
}

// AddProfile inserts a profile after applying kind defaults and returns its
// row identifier.
func (store *Store) AddProfile(executionContext context.Context, connectionProfile ConnectionProfile) (int64, error) {
	connectionProfile.ApplyDefaults()
	insertResult, insertError := store.databaseHandle.ExecContext(executionContext, insertProfileStatement,
		string(connectionProfile.Kind), connectionProfile.Host, connectionProfile.Port,
		connectionProfile.DatabaseName, connectionProfile.User, connectionProfile.Password)
	if insertError != nil {
		return 0, fmt.Errorf("insert connection profile: %w", insertError)
	}
	return insertResult.LastInsertId()
}

// ListProfiles returns all stored profiles in insertion order, optionally
// restricted to one connection kind.
func (store *Store) ListProfiles(executionContext context.Context, kindFilter ConnectionKind) ([]ConnectionProfile, error) {
	var profileRows *sql.Rows
	var queryError error
	if kindFilter == "" {
		profileRows, queryError = store.databaseHandle.QueryContext(executionContext, selectAllProfilesQuery)
	} else {
		profileRows, queryError = store.databaseHandle.QueryContext(executionContext, selectProfilesByKindQuery, string(kindFilter))
	}
	if queryError != nil {
		return nil, fmt.Errorf("list connection profiles: %w", queryError)
	}
	defer profileRows.Close()

	profiles := make([]ConnectionProfile, 0)
	for profileRows.Next() {
		var connectionProfile ConnectionProfile
		var kindValue string
		if scanError := profileRows.Scan(&connectionProfile.ID, &kindValue, &connectionProfile.Host,
			&connectionProfile.Port, &connectionProfile.DatabaseName, &connectionProfile.User,
			&connectionProfile.Password); scanError != nil {
			return nil, fmt.Errorf("scan connection profile: %w", scanError)
		}
		connectionProfile.Kind = ConnectionKind(kindValue)
		profiles = append(profiles, connectionProfile)
	}
	if rowsError := profileRows.Err(); rowsError != nil {
		return nil, fmt.Errorf("iterate connection profiles: %w", rowsError)
	}
	return profiles, nil
}

// UpdateProfile replaces the row matching every field of original with the
// values from updated. Matching is full-field equality.
func (store *Store) UpdateProfile(executionContext context.Context, original ConnectionProfile, updated ConnectionProfile) error {
	updated.ApplyDefaults()
	updateResult, updateError := store.databaseHandle.ExecContext(executionContext, updateProfileStatement,
		string(updated.Kind), updated.Host, updated.Port, updated.DatabaseName, updated.User, updated.Password,
		string(original.Kind), original.Host, original.Port, original.DatabaseName, original.User, original.Password)
	if updateError != nil {
		return fmt.Errorf("update connection profile: %w", updateError)
	}
	return requireAffectedRows(updateResult)
}

// DeleteProfile removes the row matching every field of the profile.
func (store *Store) DeleteProfile(executionContext context.Context, connectionProfile ConnectionProfile) error {
	deleteResult, deleteError := store.databaseHandle.ExecContext(executionContext, deleteProfileStatement,
		string(connectionProfile.Kind), connectionProfile.Host, connectionProfile.Port,
		connectionProfile.DatabaseName, connectionProfile.User, connectionProfile.Password)
	if deleteError != nil {
		return fmt.Errorf("delete connection profile: %w", deleteError)
	}
	return requireAffectedRows(deleteResult)
}

func requireAffectedRows(result sql.Result) error {
	affectedRows, affectedError := result.RowsAffected()
	if affectedError != nil {
		return affectedError
	}
	if affectedRows == 0 {
		return fmt.Errorf("%s", profileNotFoundMessage)
	}
	return nil
}
