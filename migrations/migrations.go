// Package migrations embeds the goose migrations for every supported store.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// FS returns the migration files for the given database driver.
func FS(driver string) (fs.FS, error) {
	switch driver {
	case "postgres", "sqlite":
		return fs.Sub(files, driver)
	}
	return nil, fmt.Errorf("migrations: unknown driver %q", driver)
}
