package repository

import (
	"context"
	"fmt"

	"room-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TableData is a slice of a table with its column order preserved.
type TableData struct {
	Columns []string
	Rows    []database.Row
}

type ExplorerRepository interface {
	ListTables(ctx context.Context) ([]string, error)
	// FetchRows reads up to limit rows of table. The caller must have
	// checked table against ListTables.
	FetchRows(ctx context.Context, table string, limit int) (*TableData, error)
}

type explorerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewExplorerRepository(db database.PgxIface, log *zap.Logger) ExplorerRepository {
	return &explorerRepository{
		db:  db,
		log: log.With(zap.String("repository", "explorer")),
	}
}

func (r *explorerRepository) ListTables(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema()
		  AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := database.Read(ctx, r.db, query)
	if err != nil {
		r.log.Error("Failed to list tables", zap.Error(err))
		return nil, fmt.Errorf("list tables: %w", err)
	}

	tables := make([]string, 0, len(rows))
	for _, row := range rows {
		if name, ok := row["table_name"].(string); ok {
			tables = append(tables, name)
		}
	}
	return tables, nil
}

func (r *explorerRepository) FetchRows(ctx context.Context, table string, limit int) (*TableData, error) {
	query := fmt.Sprintf("SELECT * FROM %s LIMIT $1", pgx.Identifier{table}.Sanitize())

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to read table", zap.Error(err), zap.String("table", table))
		return nil, fmt.Errorf("read table %s: %w", table, err)
	}

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	data, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		r.log.Error("Failed to scan table rows", zap.Error(err), zap.String("table", table))
		return nil, fmt.Errorf("scan table %s: %w", table, err)
	}

	return &TableData{Columns: columns, Rows: data}, nil
}
