// Package database define a porta de armazenamento da aplicação. O backend
// é escolhido uma única vez na inicialização; cada implementação carrega o
// próprio dialeto (placeholders e truncamento de data) e nunca há
// ramificação por backend dentro das queries.
package database

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
)

type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// Dialect expõe as duas diferenças reais entre os backends: o token
// posicional de parâmetro e a expressão de truncamento de data ciente de
// fuso horário.
type Dialect interface {
	Name() string
	Placeholder() squirrel.PlaceholderFormat
	// DateExpr retorna a expressão SQL que reduz a coluna de timestamp à
	// data local de São Paulo.
	DateExpr(column string) string
	// OrderByDateDesc retorna a cláusula de ordenação decrescente pela
	// coluna de timestamp.
	OrderByDateDesc(column string) string
	// TimestampText projeta a coluna de timestamp na forma textual fixa
	// "YYYY-MM-DD HH:MM:SS", independente do backend.
	TimestampText(column string) string
}

type Conn interface {
	Queryer
	Ping(ctx context.Context) error
	Close() error
	Dialect() Dialect
}

// Seed é a credencial do admin inicial, gravada quando a tabela de
// usuários está vazia.
type Seed struct {
	AdminName         string
	AdminPasswordHash string
}
