package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/consigtech/proposal-tracker-api/infrastructure/database"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
)

const usersTable = "users"

type UserRepository interface {
	Create(user *domain.User) error
	Update(user *domain.UpdateUserRequest) error
	Delete(id int) error
	GetByID(id int) (*domain.User, error)
	GetByName(name string) (*domain.User, error)
	List() ([]*domain.User, error)
	// ListConsultantNames retorna os nomes de todos os usuários não-admin,
	// em ordem alfabética.
	ListConsultantNames() ([]string, error)
	UpdatePasswordByName(name, passwordHash string) (bool, error)
}

type userRepository struct {
	conn database.Conn
}

func NewUserRepository(conn database.Conn) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) Create(user *domain.User) error {
	query, args, err := squirrel.
		Insert(usersTable).
		Columns("nome", "senha", "role").
		Values(user.Name, user.PasswordHash, user.Role).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return nil
}

func (r *userRepository) Update(user *domain.UpdateUserRequest) error {
	builder := squirrel.Update(usersTable)

	if user.Name != nil {
		builder = builder.Set("nome", *user.Name)
	}
	if user.Password != nil {
		builder = builder.Set("senha", *user.Password)
	}
	if user.Role != nil {
		builder = builder.Set("role", *user.Role)
	}

	query, args, err := builder.
		Where(squirrel.Eq{"id": user.ID}).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}

	return nil
}

func (r *userRepository) Delete(id int) error {
	query, args, err := squirrel.
		Delete(usersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir usuário: %w", err)
	}

	return nil
}

func (r *userRepository) GetByID(id int) (*domain.User, error) {
	return r.getBy(squirrel.Eq{"id": id})
}

func (r *userRepository) GetByName(name string) (*domain.User, error) {
	return r.getBy(squirrel.Eq{"nome": name})
}

func (r *userRepository) getBy(cond squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id", "nome", "senha", "role").
		From(usersTable).
		Where(cond).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user := &domain.User{}
	err = r.conn.QueryRow(query, args...).
		Scan(&user.ID, &user.Name, &user.PasswordHash, &user.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) List() ([]*domain.User, error) {
	query, _, err := squirrel.
		Select("id", "nome", "role").
		From(usersTable).
		OrderBy("nome").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Role); err != nil {
			return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) ListConsultantNames() ([]string, error) {
	query, args, err := squirrel.
		Select("nome").
		From(usersTable).
		Where(squirrel.NotEq{"role": domain.RoleAdmin}).
		OrderBy("nome").
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar consultores: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("erro ao escanear nome: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func (r *userRepository) UpdatePasswordByName(name, passwordHash string) (bool, error) {
	query, args, err := squirrel.
		Update(usersTable).
		Set("senha", passwordHash).
		Where(squirrel.Eq{"nome": name}).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao redefinir senha: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	return affected > 0, nil
}
