// Package sqlite implementa a porta de armazenamento sobre o arquivo local.
// É o backend usado quando DATABASE_URL está vazia; as mesmas queries dos
// repositórios rodam aqui com o dialeto trocado.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/consigtech/proposal-tracker-api/infrastructure/database"
	"github.com/consigtech/proposal-tracker-api/internal/config"
	_ "github.com/mattn/go-sqlite3"
)

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
	seed database.Seed,
) (*Connection, error) {
	db, err := sql.Open("sqlite3", cfg.SQLitePath+"?_journal_mode=WAL")
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

func (dialect) Name() string { return "sqlite" }

func (dialect) Placeholder() squirrel.PlaceholderFormat { return squirrel.Question }

// Os timestamps são gravados como texto já na hora de parede de São Paulo,
// então o truncamento local dispensa conversão de fuso.
func (dialect) DateExpr(column string) string {
	return fmt.Sprintf("date(%s)", column)
}

func (dialect) OrderByDateDesc(column string) string {
	return fmt.Sprintf("datetime(%s) DESC", column)
}

func (dialect) TimestampText(column string) string {
	return column
}
