package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/consigtech/proposal-tracker-api/infrastructure/database"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
)

const (
	globalGoalsTable     = "metas_globais"
	dailyGoalsTable      = "meta_dia"
	consultantGoalsTable = "metas_individuais"
)

type GoalRepository interface {
	// SetGlobalGoal substitui a meta global vigente. A escrita é
	// destrutiva: o histórico anterior é descartado.
	SetGlobalGoal(value float64) error
	SetDailyGoal(value float64) error
	UpsertConsultantGoal(consultant string, value float64) error
	GetGlobalGoal() (float64, error)
	GetDailyGoal() (float64, error)
	// GetConsultantGoal retorna nil quando o consultor não tem meta
	// individual definida.
	GetConsultantGoal(consultant string) (*domain.ConsultantGoal, error)
	ListConsultantGoals() ([]domain.ConsultantGoal, error)
}

type goalRepository struct {
	conn database.Conn
}

func NewGoalRepository(conn database.Conn) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) SetGlobalGoal(value float64) error {
	return r.replaceSingleton(globalGoalsTable, value)
}

func (r *goalRepository) SetDailyGoal(value float64) error {
	return r.replaceSingleton(dailyGoalsTable, value)
}

// As tabelas singleton guardam a meta na coluna "valor"; apenas
// metas_individuais usa a coluna "meta".
func (r *goalRepository) replaceSingleton(table string, value float64) error {
	deleteQuery, _, err := squirrel.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(deleteQuery); err != nil {
		return fmt.Errorf("erro ao limpar %s: %w", table, err)
	}

	insertQuery, args, err := squirrel.
		Insert(table).
		Columns("valor").
		Values(value).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(insertQuery, args...); err != nil {
		return fmt.Errorf("erro ao gravar meta em %s: %w", table, err)
	}

	return nil
}

func (r *goalRepository) UpsertConsultantGoal(consultant string, value float64) error {
	query, args, err := squirrel.
		Insert(consultantGoalsTable).
		Columns("consultor", "meta").
		Values(consultant, value).
		Suffix("ON CONFLICT (consultor) DO UPDATE SET meta = EXCLUDED.meta").
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar meta individual: %w", err)
	}

	return nil
}

func (r *goalRepository) GetGlobalGoal() (float64, error) {
	return r.latestSingleton(globalGoalsTable)
}

func (r *goalRepository) GetDailyGoal() (float64, error) {
	return r.latestSingleton(dailyGoalsTable)
}

func (r *goalRepository) latestSingleton(table string) (float64, error) {
	query, _, err := squirrel.
		Select("valor").
		From(table).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value float64
	if err := r.conn.QueryRow(query).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao ler meta de %s: %w", table, err)
	}

	return value, nil
}

func (r *goalRepository) GetConsultantGoal(consultant string) (*domain.ConsultantGoal, error) {
	query, args, err := squirrel.
		Select("id", "consultor", "meta").
		From(consultantGoalsTable).
		Where(squirrel.Eq{"consultor": consultant}).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal := &domain.ConsultantGoal{}
	err = r.conn.QueryRow(query, args...).
		Scan(&goal.ID, &goal.Consultant, &goal.Value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler meta individual: %w", err)
	}

	return goal, nil
}

func (r *goalRepository) ListConsultantGoals() ([]domain.ConsultantGoal, error) {
	query, _, err := squirrel.
		Select("id", "consultor", "meta").
		From(consultantGoalsTable).
		OrderBy("consultor").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar metas individuais: %w", err)
	}
	defer rows.Close()

	goals := make([]domain.ConsultantGoal, 0)
	for rows.Next() {
		var goal domain.ConsultantGoal
		if err := rows.Scan(&goal.ID, &goal.Consultant, &goal.Value); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta individual: %w", err)
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}
