package lib

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

type Migration struct {
	Name    string
	UpSQL   string
	DownSQL string
}

// HistoryMigrations returns the migrations that create the evaluation history
// schema, oldest first.
func HistoryMigrations() ([]*Migration, error) {
	return ReadMigrations(migrationFiles, "migrations")
}

// ReadMigrations loads "<name>.up.sql" and "<name>.down.sql" pairs from dir,
// sorted by name.
func ReadMigrations(fsys fs.FS, dir string) ([]*Migration, error) {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	migrations := map[string]*Migration{}

	withMigration := func(name string) *Migration {
		m, ok := migrations[name]
		if !ok {
			m = &Migration{
				Name: name,
			}
			migrations[name] = m
		}
		return m
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}
		bytes, err := fs.ReadFile(fsys, path.Join(dir, file.Name()))
		if err != nil {
			return nil, err
		}

		name, isUp := parseMigrationFileName(file.Name())
		migration := withMigration(name)
		if isUp {
			migration.UpSQL = string(bytes)
		} else {
			migration.DownSQL = string(bytes)
		}
	}

	// Sort keys lexicographically
	keys := []string{}
	for k := range migrations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := []*Migration{}
	for _, k := range keys {
		result = append(result, migrations[k])
	}
	return result, nil
}

func parseMigrationFileName(fileName string) (string, bool) {
	return getMigrationName(fileName), getUpness(fileName)
}

func getMigrationName(fileName string) string {
	dotParts := strings.Split(fileName, ".")
	return dotParts[0]
}

func getUpness(fileName string) bool {
	return !strings.HasSuffix(fileName, ".down.sql")
}

// OpenDB opens a Postgres connection pool and checks that it is reachable.
func OpenDB(ctx context.Context, connectionString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	return db, nil
}

// RunMigrations applies every migration not yet recorded in the migrations
// table, each in its own transaction.
func RunMigrations(ctx context.Context, db *sql.DB, migrations []*Migration) error {
	if err := requireMigrationsTable(ctx, db); err != nil {
		return err
	}

	applied, err := appliedMigrations(ctx, db)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if applied[migration.Name] {
			continue
		}
		err = execMigration(ctx, db, migration.Name, migration.UpSQL, true)
		if err != nil {
			return err
		}
	}
	return nil
}

// RevertMigrations runs the down script of every applied migration, newest
// first.
func RevertMigrations(ctx context.Context, db *sql.DB, migrations []*Migration) error {
	if err := requireMigrationsTable(ctx, db); err != nil {
		return err
	}

	applied, err := appliedMigrations(ctx, db)
	if err != nil {
		return err
	}

	for i := len(migrations) - 1; i >= 0; i-- {
		migration := migrations[i]
		if !applied[migration.Name] {
			continue
		}
		err = execMigration(ctx, db, migration.Name, migration.DownSQL, false)
		if err != nil {
			return err
		}
	}
	return nil
}

func requireMigrationsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx,
		"CREATE TABLE IF NOT EXISTS migrations (name TEXT PRIMARY KEY, at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now())")
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to list applied migrations: %w", err)
	}
	defer rows.Close()

	applied := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		applied[name] = true
	}
	return applied, rows.Err()
}

func execMigration(ctx context.Context, db *sql.DB, name string, script string, up bool) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("migration %s failed: %w", name, err)
	}
	if up {
		_, err = tx.ExecContext(ctx, "INSERT INTO migrations (name) VALUES ($1)", name)
	} else {
		_, err = tx.ExecContext(ctx, "DELETE FROM migrations WHERE name = $1", name)
	}
	if err != nil {
		return fmt.Errorf("failed to record migration %s: %w", name, err)
	}
	return tx.Commit()
}
