// Package dashboarding consolida as visões agregadas: resumo do período,
// matriz por fonte e painel individual do consultor.
package dashboarding

import (
	"strings"
	"time"
	"unicode"

	"github.com/consigtech/proposal-tracker-api/infrastructure/repository"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/reporting"
	"github.com/consigtech/proposal-tracker-api/pkg/utils"
	"github.com/pkg/errors"
)

const topConsultantsLimit = 3

type Dashboarder interface {
	// Summary aceita um sentinela de período ou um par explícito de
	// datas, que tem precedência.
	Summary(period, startDate, endDate string) (*domain.DashboardSummary, error)
	// SourcesOverview é a matriz fonte × status de todo o histórico.
	SourcesOverview() (domain.SourceMatrix, error)
	Panel(consultant, period string) (*domain.PanelResult, error)
}

type Service struct {
	proposalRepo repository.ProposalRepository
	userRepo     repository.UserRepository
	goalRepo     repository.GoalRepository
	now          func() time.Time
}

func NewService(
	proposalRepo repository.ProposalRepository,
	userRepo repository.UserRepository,
	goalRepo repository.GoalRepository,
) Dashboarder {
	return &Service{
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
		goalRepo:     goalRepo,
		now:          time.Now,
	}
}

func (s *Service) Summary(period, startDate, endDate string) (*domain.DashboardSummary, error) {
	now := s.now()

	var window domain.Window
	if startDate != "" && endDate != "" {
		window = domain.Window{Start: startDate, End: endDate, Label: "Filtro por período"}
	} else {
		window = reporting.PeriodWindow(period, now)
	}

	totalEq, totalOr, count, err := s.proposalRepo.WindowTotals(window)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao somar o período")
	}

	globalGoal, err := s.goalRepo.GetGlobalGoal()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a meta global")
	}

	top, err := s.proposalRepo.TopConsultants(window, topConsultantsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os melhores consultores")
	}

	banks, err := s.proposalRepo.BankBreakdown(window)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agrupar por banco")
	}

	sourceRows, err := s.proposalRepo.SourceStatusRows(&window)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agrupar por fonte")
	}

	gap := domain.Gap(globalGoal, totalEq)

	// Ticket médio sobre o valor original dos contratos.
	var meanContract float64
	if count > 0 {
		meanContract = totalOr / float64(count)
	}

	return &domain.DashboardSummary{
		TotalEquivalent:   utils.RoundWithTwoDecimalPlace(totalEq),
		TotalOriginal:     utils.RoundWithTwoDecimalPlace(totalOr),
		TotalProposals:    count,
		GlobalGoal:        globalGoal,
		GoalGap:           gap,
		TopConsultants:    top,
		Banks:             banks,
		Sources:           buildSourceMatrix(sourceRows),
		DailyGoalTicket:   utils.RoundWithTwoDecimalPlace(dailyPace(gap, now.In(domain.SaoPaulo()))),
		MeanContractValue: utils.RoundWithTwoDecimalPlace(meanContract),
		Start:             window.Start,
		End:               window.End,
		Period:            window.Label,
	}, nil
}

func (s *Service) SourcesOverview() (domain.SourceMatrix, error) {
	rows, err := s.proposalRepo.SourceStatusRows(nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agrupar por fonte")
	}

	return buildSourceMatrix(rows), nil
}

func (s *Service) Panel(consultant, period string) (*domain.PanelResult, error) {
	window := reporting.PeriodWindow(period, s.now())

	proposals, err := s.proposalRepo.ListByConsultant(consultant, window)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar as propostas do consultor")
	}

	var totalEq, totalOr float64
	for _, p := range proposals {
		totalEq += p.EquivalentValue
		totalOr += p.OriginalValue
	}

	goal, err := s.resolveGoal(consultant)
	if err != nil {
		return nil, err
	}

	consultants, err := s.userRepo.ListConsultantNames()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar consultores")
	}

	return &domain.PanelResult{
		Consultant:      consultant,
		Proposals:       proposals,
		TotalEquivalent: utils.RoundWithTwoDecimalPlace(totalEq),
		TotalOriginal:   utils.RoundWithTwoDecimalPlace(totalOr),
		Goal:            goal,
		GoalGap:         domain.Gap(goal, totalEq),
		Consultants:     consultants,
		Start:           window.Start,
		End:             window.End,
	}, nil
}

func (s *Service) resolveGoal(consultant string) (float64, error) {
	individual, err := s.goalRepo.GetConsultantGoal(consultant)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao ler a meta individual")
	}
	if individual != nil {
		return individual.Value, nil
	}

	globalGoal, err := s.goalRepo.GetGlobalGoal()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao ler a meta global")
	}

	return globalGoal, nil
}

// buildSourceMatrix normaliza as linhas cruas do agrupamento em uma
// matriz fonte -> status, somando células que colidem após a
// normalização do status.
func buildSourceMatrix(rows []*repository.SourceStatusRow) domain.SourceMatrix {
	matrix := make(domain.SourceMatrix, len(domain.KnownSources))
	for _, source := range domain.KnownSources {
		matrix[source] = make(map[string]domain.SourceStatusCell)
	}

	for _, row := range rows {
		statuses, ok := matrix[row.Source]
		if !ok {
			continue
		}

		status := NormalizeStatus(row.Observation)
		cell := statuses[status]
		cell.Count += row.Count
		cell.EquivalentValue = utils.RoundWithTwoDecimalPlace(cell.EquivalentValue + row.EquivalentValue)
		cell.OriginalValue = utils.RoundWithTwoDecimalPlace(cell.OriginalValue + row.OriginalValue)
		statuses[status] = cell
	}

	return matrix
}

// NormalizeStatus padroniza a observação livre como status: espaços
// aparados, iniciais maiúsculas e "Andamento" quando vazio.
func NormalizeStatus(observation string) string {
	trimmed := strings.TrimSpace(observation)
	if trimmed == "" {
		return domain.DefaultStatus
	}

	words := strings.Fields(strings.ToLower(trimmed))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}

// dailyPace divide a falta pelos dias úteis (segunda a sexta) que ainda
// restam no mês depois de hoje. Com o mês encerrado, divide por um.
func dailyPace(gap float64, localNow time.Time) float64 {
	remaining := remainingWeekdays(localNow)
	if remaining < 1 {
		remaining = 1
	}

	return gap / float64(remaining)
}

func remainingWeekdays(localNow time.Time) int {
	lastDay := time.Date(localNow.Year(), localNow.Month(), 1, 0, 0, 0, 0, localNow.Location()).
		AddDate(0, 1, -1)

	count := 0
	for day := localNow.Day() + 1; day <= lastDay.Day(); day++ {
		date := time.Date(localNow.Year(), localNow.Month(), day, 0, 0, 0, 0, localNow.Location())
		if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}

	return count
}
