package storage

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/acampos-dev/secondbrain/internal/storage/postgres"
	"github.com/acampos-dev/secondbrain/internal/storage/sqlite"
)

// NewSQLiteStore creates a SQLite-backed provider, expanding a leading "~"
// in the path to the user's home directory.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(ExpandPath(path))
}

// NewPostgresStore creates a Postgres-backed provider for the given
// connection string.
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}

// IsPostgresURL reports whether the config value is a Postgres connection string.
func IsPostgresURL(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a Postgres connection string carries
// a password inline. Embedded credentials are rejected; the keyring, the
// environment, or .pgpass should hold them instead.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// ExpandPath expands a leading "~/" to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
