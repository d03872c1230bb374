package sqlite

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/consigtech/proposal-tracker-api/infrastructure/database"
)

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT UNIQUE NOT NULL,
		senha TEXT NOT NULL,
		role TEXT DEFAULT 'user'
	)`,
	`CREATE TABLE IF NOT EXISTS propostas (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		data TEXT,
		consultor TEXT,
		fonte TEXT,
		banco TEXT,
		senha_digitada TEXT,
		tabela TEXT,
		nome_cliente TEXT,
		cpf TEXT,
		valor_equivalente REAL,
		valor_original REAL,
		observacao TEXT,
		telefone TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS metas_globais (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		valor REAL
	)`,
	`CREATE TABLE IF NOT EXISTS metas_individuais (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		consultor TEXT UNIQUE,
		meta REAL
	)`,
	`CREATE TABLE IF NOT EXISTS meta_dia (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		valor REAL
	)`,
}

var additiveColumns = []struct {
	name    string
	sqlType string
}{
	{"produto", "TEXT"},
	{"valor_parcela", "REAL"},
	{"quantidade_parcelas", "INTEGER"},
	{"data_pagamento_prevista", "TEXT"},
}

func (c *Connection) bootstrap(seed database.Seed) error {
	for _, stmt := range createStatements {
		if _, err := c.DB.Exec(stmt); err != nil {
			return err
		}
	}

	existing, err := c.tableColumns("propostas")
	if err != nil {
		return err
	}

	for _, col := range additiveColumns {
		if existing[col.name] {
			continue
		}

		logrus.Infof("Adicionando coluna '%s' em propostas", col.name)
		stmt := fmt.Sprintf("ALTER TABLE propostas ADD COLUMN %s %s", col.name, col.sqlType)
		if _, err := c.DB.Exec(stmt); err != nil {
			return err
		}
	}

	return c.seedAdmin(seed)
}

func (c *Connection) tableColumns(table string) (map[string]bool, error) {
	rows, err := c.DB.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue interface{}
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return nil, err
		}
		columns[name] = true
	}

	return columns, rows.Err()
}

func (c *Connection) seedAdmin(seed database.Seed) error {
	var total int
	if err := c.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&total); err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	logrus.Infof("Semeando usuário administrador inicial '%s'", seed.AdminName)
	_, err := c.DB.Exec(
		"INSERT INTO users (nome, senha, role) VALUES (?, ?, 'admin')",
		seed.AdminName, seed.AdminPasswordHash,
	)
	return err
}
