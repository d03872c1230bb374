package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/consigtech/proposal-tracker-api/infrastructure/database"
)

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		nome TEXT UNIQUE NOT NULL,
		senha TEXT NOT NULL,
		role TEXT DEFAULT 'user'
	)`,
	`CREATE TABLE IF NOT EXISTS propostas (
		id SERIAL PRIMARY KEY,
		data TIMESTAMP,
		consultor TEXT,
		fonte TEXT,
		banco TEXT,
		senha_digitada TEXT,
		tabela TEXT,
		nome_cliente TEXT,
		cpf TEXT,
		valor_equivalente NUMERIC(12,2),
		valor_original NUMERIC(12,2),
		observacao TEXT,
		telefone TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS metas_globais (
		id SERIAL PRIMARY KEY,
		valor NUMERIC(12,2)
	)`,
	`CREATE TABLE IF NOT EXISTS metas_individuais (
		id SERIAL PRIMARY KEY,
		consultor TEXT UNIQUE,
		meta NUMERIC(12,2)
	)`,
	`CREATE TABLE IF NOT EXISTS meta_dia (
		id SERIAL PRIMARY KEY,
		valor NUMERIC(12,2)
	)`,
}

// Colunas adicionadas depois do esquema original. Evolução sempre aditiva,
// nunca destrutiva.
var additiveColumns = []struct {
	name    string
	sqlType string
}{
	{"produto", "TEXT"},
	{"valor_parcela", "NUMERIC(12,2)"},
	{"quantidade_parcelas", "INTEGER"},
	{"data_pagamento_prevista", "TEXT"},
}

func (c *Connection) bootstrap(seed database.Seed) error {
	for _, stmt := range createStatements {
		if _, err := c.DB.Exec(stmt); err != nil {
			return err
		}
	}

	for _, col := range additiveColumns {
		exists, err := c.columnExists("propostas", col.name)
		if err != nil {
			return err
		}
		if exists {
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

func (c *Connection) columnExists(table, column string) (bool, error) {
	var name string
	err := c.DB.QueryRow(
		`SELECT column_name FROM information_schema.columns
		 WHERE table_name = $1 AND column_name = $2`,
		table, column,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
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
		"INSERT INTO users (nome, senha, role) VALUES ($1, $2, 'admin')",
		seed.AdminName, seed.AdminPasswordHash,
	)
	return err
}
