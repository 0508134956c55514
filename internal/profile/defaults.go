// Package profile stores named database connection parameter sets in an
// embedded SQLite table and applies per-kind defaults before persistence.
package profile

import (
	"fmt"
	"sort"
	"strings"
)

// ConnectionKind tags a profile with the database engine it targets.
type ConnectionKind string

const (
	KindPostgres ConnectionKind = "postgres"
	KindMySQL    ConnectionKind = "mysql"
	KindMSSQL    ConnectionKind = "mssql"
	KindMongoDB  ConnectionKind = "mongodb"
	KindSQLite   ConnectionKind = "sqlite"
)

// KindDefaults holds the values applied when a profile omits them.
type KindDefaults struct {
	Port         int
	User         string
	DatabaseName string
}

var kindDefaultsTable = map[ConnectionKind]KindDefaults{
	KindPostgres: {Port: 5432, User: "postgres", DatabaseName: "postgres"},
	KindMySQL:    {Port: 3306, User: "mysql", DatabaseName: "mysql"},
	KindMSSQL:    {Port: 1433, User: "sa", DatabaseName: "master"},
	KindMongoDB:  {Port: 27017, User: "admin", DatabaseName: "admin"},
}

const (
	defaultHost            = "localhost"
	unknownKindErrorFormat = "unknown connection type %q (supported: %s)"
)

// SupportedKinds returns the accepted connection kinds in sorted order.
func SupportedKinds() []ConnectionKind {
	kinds := []ConnectionKind{KindPostgres, KindMySQL, KindMSSQL, KindMongoDB, KindSQLite}
	sort.Slice(kinds, func(left, right int) bool { return kinds[left] < kinds[right] })
	return kinds
}

// ParseConnectionKind validates a user-supplied kind name.
func ParseConnectionKind(value string) (ConnectionKind, error) {
	candidate := ConnectionKind(strings.ToLower(strings.TrimSpace(value)))
	for _, supportedKind := range SupportedKinds() {
		if candidate == supportedKind {
			return candidate, nil
		}
	}
	kindNames := make([]string, 0)
	for _, supportedKind := range SupportedKinds() {
		kindNames = append(kindNames, string(supportedKind))
	}
	return "", fmt.Errorf(unknownKindErrorFormat, value, strings.Join(kindNames, ", "))
}

// DefaultsFor returns the default values for a kind. SQLite profiles carry a
// file path instead of network parameters and have no defaults.
func DefaultsFor(kind ConnectionKind) (KindDefaults, bool) {
	defaults, known := kindDefaultsTable[kind]
	return defaults, known
}

// ConnectionProfile is one stored set of connection parameters.
type ConnectionProfile struct {
	ID           int64          `json:"id" yaml:"id"`
	Kind         ConnectionKind `json:"conn_type" yaml:"conn_type"`
	Host         string         `json:"host" yaml:"host"`
	Port         int            `json:"port" yaml:"port"`
	DatabaseName string         `json:"dbname" yaml:"dbname"`
	User         string         `json:"user" yaml:"user"`
	Password     string         `json:"password" yaml:"password"`
}

// ApplyDefaults fills the zero-valued fields from the kind's defaults table.
func (connectionProfile *ConnectionProfile) ApplyDefaults() {
	if connectionProfile.Host == "" {
		connectionProfile.Host = defaultHost
	}
	defaults, known := kindDefaultsTable[connectionProfile.Kind]
	if !known {
		return
	}
	if connectionProfile.Port == 0 {
		connectionProfile.Port = defaults.Port
	}
	if connectionProfile.User == "" {
		connectionProfile.User = defaults.User
	}
	if connectionProfile.DatabaseName == "" {
		connectionProfile.DatabaseName = defaults.DatabaseName
	}
}

// ConnectionInfo renders the profile as a key-value connection string.
func (connectionProfile ConnectionProfile) ConnectionInfo() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s",
		connectionProfile.Host, connectionProfile.Port, connectionProfile.DatabaseName,
		connectionProfile.User, connectionProfile.Password)
}

// URI renders the profile as a mongodb connection URI. Only meaningful for
// the mongodb kind.
func (connectionProfile ConnectionProfile) URI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%d/%s",
		connectionProfile.User, connectionProfile.Password, connectionProfile.Host,
		connectionProfile.Port, connectionProfile.DatabaseName)
}
