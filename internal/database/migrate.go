package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const migrationsDirName = "migrations"

// FindMigrationsDir walks up from start, then from the running binary,
// looking for a migrations directory.
func FindMigrationsDir(start string) (string, error) {
	var candidates []string
	current := start
	for i := 0; i < 6; i++ {
		candidates = append(candidates, filepath.Join(current, migrationsDirName))
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		candidates = append(candidates,
			filepath.Join(exeDir, migrationsDirName),
			filepath.Join(exeDir, "..", migrationsDirName),
			filepath.Join(exeDir, "..", "..", migrationsDirName),
		)
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			return filepath.Abs(candidate)
		}
	}
	return "", errors.New("migrations directory not found")
}

// Migrate applies every pending migration (up) or rolls all of them back
// (down). Having nothing to do is not an error.
func Migrate(dbURL, dir string, up bool) error {
	m, err := migrate.New("file://"+filepath.ToSlash(dir), dbURL)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer m.Close()

	if up {
		err = m.Up()
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
