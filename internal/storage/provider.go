package storage

import (
	"net/url"

	"github.com/Jyoti0525/habitflow/internal/storage/postgres"
	"github.com/Jyoti0525/habitflow/internal/storage/sqlite"
)

func NewSQLiteProvider(configPath string) Provider {
	return sqlite.NewSQLiteStore(configPath)
}

func NewPostgresProvider(connStr string) Provider {
	return postgres.NewPostgresStore(connStr)
}

// HasEmbeddedCredentials reports whether a connection string carries an
// inline password. Such strings are rejected before any connection is
// attempted so the password never reaches the logs.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}
