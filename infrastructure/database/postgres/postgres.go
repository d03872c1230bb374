package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/consigtech/proposal-tracker-api/infrastructure/database"
	"github.com/consigtech/proposal-tracker-api/internal/config"
	_ "github.com/lib/pq"
)

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
	seed database.Seed,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	conn := &Connection{DB: db}
	if err := conn.bootstrap(seed); err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao preparar o esquema: %w", err)
	}

	return conn, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *Connection) Dialect() database.Dialect {
	return dialect{}
}

type dialect struct{}

func (dialect) Name() string { return "postgres" }

func (dialect) Placeholder() squirrel.PlaceholderFormat { return squirrel.Dollar }

func (dialect) DateExpr(column string) string {
	return fmt.Sprintf("DATE(%s AT TIME ZONE 'America/Sao_Paulo')", column)
}

func (dialect) OrderByDateDesc(column string) string {
	return column + " DESC"
}

func (dialect) TimestampText(column string) string {
	return fmt.Sprintf("TO_CHAR(%s, 'YYYY-MM-DD HH24:MI:SS')", column)
}
