package database

import (
	"fmt"
	"net"
	"net/url"
)

// MigrationSource is the golang-migrate source directory for the driver.
func (c Config) MigrationSource() string {
	return "file://migrations/" + c.Driver
}

// MigrationURL is the golang-migrate database URL for the driver. SQLite
// databases are created by SetupDatabase and have no migration set.
func (c Config) MigrationURL() (string, error) {
	switch c.Driver {
	case DRIVER_MYSQL:
		return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s?multiStatements=true",
			c.User, c.Password, c.Host, c.Port, c.Name), nil
	case DRIVER_POSTGRES:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     net.JoinHostPort(c.Host, c.Port),
			Path:     "/" + c.Name,
			RawQuery: "sslmode=disable",
		}
		return u.String(), nil
	default:
		return "", fmt.Errorf("no migrations for database driver %q", c.Driver)
	}
}
