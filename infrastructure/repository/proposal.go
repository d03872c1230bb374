// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/consigtech/proposal-tracker-api/infrastructure/database"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
)

const proposalsTable = "propostas"

type ProposalRepository interface {
	Create(proposal *domain.Proposal) (*domain.Proposal, error)
	Update(proposal *domain.Proposal) error
	// Delete remove por id; id inexistente é um no-op, não um erro.
	Delete(id int) error
	GetByID(id int) (*domain.Proposal, error)

	SearchPage(filter domain.ReportFilter, window domain.Window, page int) ([]*domain.Proposal, error)
	SearchAll(filter domain.ReportFilter, window domain.Window) ([]*domain.Proposal, error)
	Count(filter domain.ReportFilter, window domain.Window) (int, error)
	// Totals soma as duas colunas de valor sobre o conjunto filtrado
	// inteiro, não apenas a página corrente.
	Totals(filter domain.ReportFilter, window domain.Window) (equivalent, original float64, err error)

	DistinctConsultants() ([]string, error)
	ListByConsultant(consultant string, window domain.Window) ([]*domain.Proposal, error)

	WindowTotals(window domain.Window) (equivalent, original float64, count int, err error)
	TopConsultants(window domain.Window, limit int) ([]*domain.TopConsultant, error)
	BankBreakdown(window domain.Window) ([]*domain.BankSummary, error)
	// SourceStatusRows agrupa por (fonte, observação) dentro das fontes
	// conhecidas; window nula cobre todo o histórico.
	SourceStatusRows(window *domain.Window) ([]*SourceStatusRow, error)
	SumEquivalentOnDate(date string) (float64, error)

	ConsultantSumsOnDate(date string) (map[string]*ConsultantSums, error)
	ConsultantEquivalentTotals() (map[string]float64, error)
	ConsultantRanking(window domain.Window) ([]*domain.ConsultantRankingItem, error)
}

// SourceStatusRow é uma linha crua do agrupamento fonte × observação,
// antes da normalização de status.
type SourceStatusRow struct {
	Source          string
	Observation     string
	Count           int
	EquivalentValue float64
	OriginalValue   float64
}

type ConsultantSums struct {
	Equivalent float64
	Original   float64
}

type proposalRepository struct {
	conn database.Conn
}

func NewProposalRepository(conn database.Conn) ProposalRepository {
	return &proposalRepository{
		conn: conn,
	}
}

func (r *proposalRepository) columns() []string {
	return []string{
		"id",
		r.conn.Dialect().TimestampText("data"),
		"consultor", "fonte", "banco", "senha_digitada", "tabela",
		"nome_cliente", "cpf", "valor_equivalente", "valor_original",
		"observacao", "telefone", "produto", "valor_parcela",
		"quantidade_parcelas", "data_pagamento_prevista",
	}
}

func (r *proposalRepository) Create(proposal *domain.Proposal) (*domain.Proposal, error) {
	query, args, err := squirrel.
		Insert(proposalsTable).
		Columns(
			"data", "consultor", "fonte", "banco", "senha_digitada", "tabela",
			"nome_cliente", "cpf", "valor_equivalente", "valor_original",
			"observacao", "telefone", "produto", "valor_parcela",
			"quantidade_parcelas", "data_pagamento_prevista",
		).
		Values(
			proposal.Date, proposal.Consultant, proposal.Source, proposal.Bank,
			proposal.TypedPassword, proposal.PlanTable, proposal.ClientName,
			proposal.CPF, proposal.EquivalentValue, proposal.OriginalValue,
			proposal.Observation, proposal.Phone, proposal.Product,
			proposal.InstallmentValue, proposal.InstallmentCount,
			proposal.ExpectedPaymentDate,
		).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir proposta: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		proposal.ID = int(id)
	}

	return proposal, nil
}

func (r *proposalRepository) Update(proposal *domain.Proposal) error {
	query, args, err := squirrel.
		Update(proposalsTable).
		Set("data", proposal.Date).
		Set("fonte", proposal.Source).
		Set("banco", proposal.Bank).
		Set("senha_digitada", proposal.TypedPassword).
		Set("produto", proposal.Product).
		Set("tabela", proposal.PlanTable).
		Set("nome_cliente", proposal.ClientName).
		Set("cpf", proposal.CPF).
		Set("valor_equivalente", proposal.EquivalentValue).
		Set("valor_original", proposal.OriginalValue).
		Set("valor_parcela", proposal.InstallmentValue).
		Set("quantidade_parcelas", proposal.InstallmentCount).
		Set("observacao", proposal.Observation).
		Set("telefone", proposal.Phone).
		Set("data_pagamento_prevista", proposal.ExpectedPaymentDate).
		Where(squirrel.Eq{"id": proposal.ID}).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar proposta: %w", err)
	}

	return nil
}

func (r *proposalRepository) Delete(id int) error {
	query, args, err := squirrel.
		Delete(proposalsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir proposta: %w", err)
	}

	return nil
}

func (r *proposalRepository) GetByID(id int) (*domain.Proposal, error) {
	query, args, err := squirrel.
		Select(r.columns()...).
		From(proposalsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	proposal, err := scanProposalRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear proposta: %w", err)
	}

	return proposal, nil
}

func (r *proposalRepository) SearchPage(filter domain.ReportFilter, window domain.Window, page int) ([]*domain.Proposal, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * domain.ReportPageSize

	query, args, err := squirrel.
		Select(r.columns()...).
		From(proposalsTable).
		Where(reportPredicate(filter, window)).
		OrderBy(r.conn.Dialect().OrderByDateDesc("data")).
		Limit(uint64(domain.ReportPageSize)).
		Offset(uint64(offset)).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryProposals(query, args)
}

func (r *proposalRepository) SearchAll(filter domain.ReportFilter, window domain.Window) ([]*domain.Proposal, error) {
	query, args, err := squirrel.
		Select(r.columns()...).
		From(proposalsTable).
		Where(reportPredicate(filter, window)).
		OrderBy(r.conn.Dialect().OrderByDateDesc("data")).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryProposals(query, args)
}

func (r *proposalRepository) Count(filter domain.ReportFilter, window domain.Window) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(proposalsTable).
		Where(reportPredicate(filter, window)).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar propostas: %w", err)
	}

	return total, nil
}

func (r *proposalRepository) Totals(filter domain.ReportFilter, window domain.Window) (float64, float64, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(valor_equivalente), 0)",
			"COALESCE(SUM(valor_original), 0)",
		).
		From(proposalsTable).
		Where(reportPredicate(filter, window)).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var equivalent, original float64
	if err := r.conn.QueryRow(query, args...).Scan(&equivalent, &original); err != nil {
		return 0, 0, fmt.Errorf("erro ao somar propostas: %w", err)
	}

	return equivalent, original, nil
}

func (r *proposalRepository) DistinctConsultants() ([]string, error) {
	query, _, err := squirrel.
		Select("DISTINCT consultor").
		From(proposalsTable).
		Where(squirrel.Expr("consultor IS NOT NULL")).
		Where(squirrel.Expr(adminExclusion)).
		OrderBy("consultor").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar consultores: %w", err)
	}
	defer rows.Close()

	consultants := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("erro ao escanear consultor: %w", err)
		}
		consultants = append(consultants, name)
	}

	return consultants, rows.Err()
}

func (r *proposalRepository) ListByConsultant(consultant string, window domain.Window) ([]*domain.Proposal, error) {
	query, args, err := squirrel.
		Select(r.columns()...).
		From(proposalsTable).
		Where(squirrel.Eq{"consultor": consultant}).
		Where(dateWindowPredicate(r.conn.Dialect(), window)).
		OrderBy(r.conn.Dialect().OrderByDateDesc("data")).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryProposals(query, args)
}

func (r *proposalRepository) WindowTotals(window domain.Window) (float64, float64, int, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(valor_equivalente), 0)",
			"COALESCE(SUM(valor_original), 0)",
			"COUNT(*)",
		).
		From(proposalsTable).
		Where(dateWindowPredicate(r.conn.Dialect(), window)).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var equivalent, original float64
	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&equivalent, &original, &count); err != nil {
		return 0, 0, 0, fmt.Errorf("erro ao somar o período: %w", err)
	}

	return equivalent, original, count, nil
}

func (r *proposalRepository) TopConsultants(window domain.Window, limit int) ([]*domain.TopConsultant, error) {
	query, args, err := squirrel.
		Select("consultor", "COALESCE(SUM(valor_equivalente), 0) AS total").
		From(proposalsTable).
		Where(dateWindowPredicate(r.conn.Dialect(), window)).
		Where(squirrel.Expr(adminExclusion)).
		GroupBy("consultor").
		OrderBy("total DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar os melhores consultores: %w", err)
	}
	defer rows.Close()

	top := make([]*domain.TopConsultant, 0, limit)
	for rows.Next() {
		item := &domain.TopConsultant{}
		if err := rows.Scan(&item.Consultant, &item.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear consultor: %w", err)
		}
		top = append(top, item)
	}

	return top, rows.Err()
}

func (r *proposalRepository) BankBreakdown(window domain.Window) ([]*domain.BankSummary, error) {
	query, args, err := squirrel.
		Select(
			"banco",
			"COUNT(*) AS total_propostas",
			"COALESCE(SUM(valor_equivalente), 0) AS total_valor",
		).
		From(proposalsTable).
		Where(dateWindowPredicate(r.conn.Dialect(), window)).
		Where(squirrel.Expr("banco IS NOT NULL AND banco <> ''")).
		GroupBy("banco").
		OrderBy("total_propostas ASC").
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar por banco: %w", err)
	}
	defer rows.Close()

	banks := make([]*domain.BankSummary, 0)
	for rows.Next() {
		item := &domain.BankSummary{}
		if err := rows.Scan(&item.Bank, &item.Count, &item.EquivalentValue); err != nil {
			return nil, fmt.Errorf("erro ao escanear banco: %w", err)
		}
		banks = append(banks, item)
	}

	return banks, rows.Err()
}

func (r *proposalRepository) SourceStatusRows(window *domain.Window) ([]*SourceStatusRow, error) {
	builder := squirrel.
		Select(
			"fonte",
			"COALESCE(observacao, '') AS status",
			"COUNT(*) AS qtd",
			"COALESCE(SUM(valor_equivalente), 0) AS total_eq",
			"COALESCE(SUM(valor_original), 0) AS total_or",
		).
		From(proposalsTable).
		Where(squirrel.Eq{"fonte": domain.KnownSources}).
		GroupBy("fonte", "observacao").
		OrderBy("fonte", "observacao")

	if window != nil {
		builder = builder.Where(dateWindowPredicate(r.conn.Dialect(), *window))
	}

	query, args, err := builder.
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar por fonte: %w", err)
	}
	defer rows.Close()

	result := make([]*SourceStatusRow, 0)
	for rows.Next() {
		row := &SourceStatusRow{}
		if err := rows.Scan(&row.Source, &row.Observation, &row.Count, &row.EquivalentValue, &row.OriginalValue); err != nil {
			return nil, fmt.Errorf("erro ao escanear fonte: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func (r *proposalRepository) SumEquivalentOnDate(date string) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(valor_equivalente), 0)").
		From(proposalsTable).
		Where(squirrel.Expr(r.conn.Dialect().DateExpr("data")+" = ?", date)).
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar o dia: %w", err)
	}

	return total, nil
}

func (r *proposalRepository) ConsultantSumsOnDate(date string) (map[string]*ConsultantSums, error) {
	query, args, err := squirrel.
		Select(
			"consultor",
			"COALESCE(SUM(valor_equivalente), 0) AS total_eq",
			"COALESCE(SUM(valor_original), 0) AS total_or",
		).
		From(proposalsTable).
		Where(squirrel.Expr(r.conn.Dialect().DateExpr("data")+" = ?", date)).
		GroupBy("consultor").
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar o dia por consultor: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]*ConsultantSums)
	for rows.Next() {
		var consultant string
		entry := &ConsultantSums{}
		if err := rows.Scan(&consultant, &entry.Equivalent, &entry.Original); err != nil {
			return nil, fmt.Errorf("erro ao escanear soma do dia: %w", err)
		}
		sums[consultant] = entry
	}

	return sums, rows.Err()
}

func (r *proposalRepository) ConsultantEquivalentTotals() (map[string]float64, error) {
	query, _, err := squirrel.
		Select("consultor", "COALESCE(SUM(valor_equivalente), 0) AS eq_total").
		From(proposalsTable).
		GroupBy("consultor").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar acumulados: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var consultant string
		var total float64
		if err := rows.Scan(&consultant, &total); err != nil {
			return nil, fmt.Errorf("erro ao escanear acumulado: %w", err)
		}
		totals[consultant] = total
	}

	return totals, rows.Err()
}

// ConsultantRanking agrega produção, meta individual e falta por consultor
// na janela. O LEFT JOIN garante linha para consultor sem proposta no
// período; a meta resolvida e a falta são calculadas pelo caso de uso.
func (r *proposalRepository) ConsultantRanking(window domain.Window) ([]*domain.ConsultantRankingItem, error) {
	dateExpr := r.conn.Dialect().DateExpr("p.data")

	query, args, err := squirrel.
		Select(
			"u.nome AS consultor",
			"COALESCE(SUM(p.valor_equivalente), 0) AS total_eq",
			"COALESCE(SUM(p.valor_original), 0) AS total_or",
			"COALESCE(m.meta, 0) AS meta",
		).
		From("users u").
		LeftJoin(
			"propostas p ON u.nome = p.consultor AND "+dateExpr+" BETWEEN ? AND ?",
			window.Start, window.End,
		).
		LeftJoin("metas_individuais m ON u.nome = m.consultor").
		Where(squirrel.NotEq{"u.role": domain.RoleAdmin}).
		GroupBy("u.nome", "m.meta").
		OrderBy("total_eq DESC").
		PlaceholderFormat(r.conn.Dialect().Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar ranking: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.ConsultantRankingItem, 0)
	for rows.Next() {
		item := &domain.ConsultantRankingItem{}
		if err := rows.Scan(&item.Consultant, &item.TotalEquivalent, &item.TotalOriginal, &item.Goal); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha do ranking: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *proposalRepository) queryProposals(query string, args []interface{}) ([]*domain.Proposal, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	proposals := make([]*domain.Proposal, 0)
	for rows.Next() {
		proposal, err := scanProposalRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear proposta: %w", err)
		}
		proposals = append(proposals, proposal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return proposals, nil
}
