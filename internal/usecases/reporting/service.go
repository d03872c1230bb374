// Package reporting monta o relatório paginado de propostas e sua
// exportação em CSV.
package reporting

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/consigtech/proposal-tracker-api/infrastructure/repository"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/consigtech/proposal-tracker-api/pkg/utils"
	"github.com/pkg/errors"
)

type Reporter interface {
	BuildReport(filter domain.ReportFilter) (*domain.ReportResult, error)
	// ExportCSV escreve todas as linhas do conjunto filtrado, sem
	// paginação, com valores no formato brasileiro.
	ExportCSV(filter domain.ReportFilter, w io.Writer) error
}

type Service struct {
	proposalRepo repository.ProposalRepository
	goalRepo     repository.GoalRepository
	now          func() time.Time
}

func NewService(proposalRepo repository.ProposalRepository, goalRepo repository.GoalRepository) Reporter {
	return &Service{
		proposalRepo: proposalRepo,
		goalRepo:     goalRepo,
		now:          time.Now,
	}
}

func (s *Service) BuildReport(filter domain.ReportFilter) (*domain.ReportResult, error) {
	window := ResolveWindow(filter, s.now())

	page := filter.Page
	if page < 1 {
		page = 1
	}

	rows, err := s.proposalRepo.SearchPage(filter, window, page)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a página do relatório")
	}

	totalRows, err := s.proposalRepo.Count(filter, window)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar o relatório")
	}

	totalEquivalent, totalOriginal, err := s.proposalRepo.Totals(filter, window)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao somar o relatório")
	}

	goal, err := s.resolveGoal(filter.Consultant)
	if err != nil {
		return nil, err
	}

	consultants, err := s.proposalRepo.DistinctConsultants()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar consultores do relatório")
	}

	totalPages := (totalRows + domain.ReportPageSize - 1) / domain.ReportPageSize

	return &domain.ReportResult{
		Rows:            rows,
		TotalRows:       totalRows,
		TotalPages:      totalPages,
		Page:            page,
		TotalEquivalent: utils.RoundWithTwoDecimalPlace(totalEquivalent),
		TotalOriginal:   utils.RoundWithTwoDecimalPlace(totalOriginal),
		Goal:            goal,
		GoalGap:         domain.Gap(goal, totalEquivalent),
		WindowLabel:     window.Label,
		Consultants:     consultants,
	}, nil
}

// resolveGoal aplica a regra de fallback: meta individual quando há
// filtro de consultor e ela existe, meta global nos demais casos.
func (s *Service) resolveGoal(consultant string) (float64, error) {
	globalGoal, err := s.goalRepo.GetGlobalGoal()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao ler a meta global")
	}

	consultant = strings.TrimSpace(consultant)
	if consultant == "" || consultant == "-" {
		return globalGoal, nil
	}

	individual, err := s.goalRepo.GetConsultantGoal(consultant)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao ler a meta individual")
	}
	if individual == nil {
		return globalGoal, nil
	}

	return individual.Value, nil
}

var csvHeader = []string{
	"Data", "Consultor", "Fonte", "Banco", "Senha Digitada", "Tabela",
	"Nome do Cliente", "CPF", "Valor Equivalente", "Valor Original",
	"Status", "Telefone", "Produto", "Valor Parcela", "Qtd Parcelas",
	"Data Pagamento Prevista",
}

func (s *Service) ExportCSV(filter domain.ReportFilter, w io.Writer) error {
	window := ResolveWindow(filter, s.now())

	rows, err := s.proposalRepo.SearchAll(filter, window)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar propostas para exportação")
	}

	writer := csv.NewWriter(w)
	writer.Comma = ';'

	if err := writer.Write(csvHeader); err != nil {
		return errors.Wrap(err, "erro ao escrever o cabeçalho do CSV")
	}

	for _, p := range rows {
		record := []string{
			p.Date,
			p.Consultant,
			p.Source,
			p.Bank,
			p.TypedPassword,
			p.PlanTable,
			p.ClientName,
			p.CPF,
			utils.FormatBRL(p.EquivalentValue),
			utils.FormatBRL(p.OriginalValue),
			p.Observation,
			p.Phone,
			p.Product,
			utils.FormatBRL(p.InstallmentValue),
			strconv.Itoa(p.InstallmentCount),
			p.ExpectedPaymentDate,
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "erro ao finalizar o CSV")
}
