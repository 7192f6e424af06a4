package repository

import (
	"context"
	"fmt"
	"strings"

	"zipcode-jp/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tableName = "zip_codes"

// Repository implements zip code storage on PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

var selectColumns = strings.Join(models.FieldNames(), ",\n\t\t\t")

// Migrate creates the zip_codes table and its indexes if they do not exist
func (r *Repository) Migrate(ctx context.Context) error {
	columns := make([]string, 0, models.FieldCount)
	for _, name := range models.FieldNames() {
		columns = append(columns, name+" TEXT NOT NULL")
	}

	query := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %[1]s (
		id BIGSERIAL PRIMARY KEY,
		%[2]s
	);
	CREATE INDEX IF NOT EXISTS %[1]s_zip_code_idx ON %[1]s (zip_code);
	CREATE INDEX IF NOT EXISTS %[1]s_prefix_idx ON %[1]s (left(zip_code, %[3]d));
	`, tableName, strings.Join(columns, ",\n\t\t"), models.PrefixLength)

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("repository: failed to migrate: %w", err)
	}
	return nil
}

// ReplaceAll swaps the stored records for records in a single transaction
func (r *Repository) ReplaceAll(ctx context.Context, records []models.Record) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE "+tableName+" RESTART IDENTITY"); err != nil {
		return fmt.Errorf("repository: failed to truncate: %w", err)
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{tableName},
		models.FieldNames(),
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			values := make([]any, models.FieldCount)
			for j, v := range records[i] {
				values[j] = v
			}
			return values, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("repository: failed to copy records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit: %w", err)
	}
	return nil
}

// Count returns the number of stored records
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM "+tableName).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count records: %w", err)
	}
	return count, nil
}

// FindByZipCode returns the records published under a 7-digit zip code
func (r *Repository) FindByZipCode(ctx context.Context, zipCode string) ([]models.ZipCode, error) {
	sql := `
		SELECT
			` + selectColumns + `
		FROM ` + tableName + `
		WHERE zip_code = $1
		ORDER BY id
	`
	return r.query(ctx, sql, zipCode)
}

// FindByPrefix returns the records whose zip code starts with prefix
func (r *Repository) FindByPrefix(ctx context.Context, prefix string) ([]models.ZipCode, error) {
	sql := fmt.Sprintf(`
		SELECT
			%s
		FROM %s
		WHERE left(zip_code, %d) = $1
		ORDER BY id
	`, selectColumns, tableName, models.PrefixLength)
	return r.query(ctx, sql, prefix)
}

func (r *Repository) query(ctx context.Context, sql string, args ...any) ([]models.ZipCode, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute query: %w", err)
	}
	defer rows.Close()

	zipCodes := []models.ZipCode{}
	for rows.Next() {
		var rec models.Record
		dest := make([]any, models.FieldCount)
		for i := range rec {
			dest[i] = &rec[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("repository: failed to scan zip code: %w", err)
		}
		zipCodes = append(zipCodes, rec.ZipCode())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return zipCodes, nil
}
