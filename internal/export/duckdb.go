package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

// DuckDB loads tidy tables into a DuckDB database.
type DuckDB struct {
	db   *sql.DB
	path string
}

// OpenDuckDB opens (or creates) a DuckDB database. An empty path means
// in-memory.
func OpenDuckDB(ctx context.Context, path string) (*DuckDB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging duckdb: %w", err)
	}
	return &DuckDB{db: db, path: path}, nil
}

// Close closes the database connection.
func (d *DuckDB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Query runs a single read statement. The caller owns the rows.
func (d *DuckDB) Query(ctx context.Context, stmt string) (*sql.Rows, error) {
	if d.db == nil {
		return nil, fmt.Errorf("duckdb connection not established")
	}
	//nolint:rowserrcheck // rows.Err() is the caller's to check after iteration
	rows, err := d.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	return rows, nil
}

// Load replaces table name with the contents of the frame. Column
// types follow the frame's series types; missing values become SQL
// NULL.
func (d *DuckDB) Load(ctx context.Context, df dataframe.DataFrame, name string) error {
	if d.db == nil {
		return fmt.Errorf("duckdb connection not established")
	}
	if df.Err != nil {
		return df.Err
	}

	names := df.Names()
	types := df.Types()

	colDefs := make([]string, len(names))
	for j, col := range names {
		colDefs[j] = quoteIdent(col) + " " + sqlType(types[j])
	}

	table := quoteIdent(name)
	if _, err := d.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return fmt.Errorf("dropping %s: %w", name, err)
	}
	createStmt := fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(colDefs, ", "))
	if _, err := d.db.ExecContext(ctx, createStmt); err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(names)), ",")
	insertStmt := fmt.Sprintf("INSERT INTO %s VALUES (%s)", table, placeholders)

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting insert transaction: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	cols := make([]series.Series, len(names))
	for j, col := range names {
		cols[j] = df.Col(col)
	}

	args := make([]any, len(names))
	for i := 0; i < df.Nrow(); i++ {
		for j := range names {
			e := cols[j].Elem(i)
			switch {
			case e.IsNA():
				args[j] = nil
			case types[j] == series.Float:
				args[j] = e.Float()
			case types[j] == series.Int:
				v, err := e.Int()
				if err != nil {
					_ = tx.Rollback()
					return fmt.Errorf("row %d column %s: %w", i, names[j], err)
				}
				args[j] = v
			default:
				args[j] = e.String()
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func sqlType(t series.Type) string {
	switch t {
	case series.Float:
		return "DOUBLE"
	case series.Int:
		return "INTEGER"
	case series.Bool:
		return "BOOLEAN"
	default:
		return "VARCHAR"
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
