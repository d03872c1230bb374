// Package ranking calcula o ranking de consultores e o índice do dia
package ranking

import (
	"sort"
	"time"

	"github.com/consigtech/proposal-tracker-api/infrastructure/repository"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/consigtech/proposal-tracker-api/pkg/utils"
	"github.com/pkg/errors"
)

type Ranker interface {
	// ConsultantRanking ordena os consultores por produção na janela.
	// Sem datas explícitas, vale o mês corrente inteiro.
	ConsultantRanking(startDate, endDate string) (*domain.ConsultantRanking, error)
	DailyIndex() (*domain.DailyIndex, error)
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
) Ranker {
	return &Service{
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
		goalRepo:     goalRepo,
		now:          time.Now,
	}
}

func (s *Service) ConsultantRanking(startDate, endDate string) (*domain.ConsultantRanking, error) {
	window := s.resolveWindow(startDate, endDate)

	items, err := s.proposalRepo.ConsultantRanking(window)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar o ranking")
	}

	globalGoal, err := s.goalRepo.GetGlobalGoal()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a meta global")
	}

	for _, item := range items {
		if item.Goal == 0 {
			item.Goal = globalGoal
		}
		item.TotalEquivalent = utils.RoundWithTwoDecimalPlace(item.TotalEquivalent)
		item.TotalOriginal = utils.RoundWithTwoDecimalPlace(item.TotalOriginal)
		item.Gap = domain.Gap(item.Goal, item.TotalEquivalent)
	}

	return &domain.ConsultantRanking{
		Items:     items,
		StartDate: window.Start,
		EndDate:   window.End,
	}, nil
}

func (s *Service) resolveWindow(startDate, endDate string) domain.Window {
	if startDate != "" && endDate != "" {
		return domain.Window{Start: startDate, End: endDate, Label: "Filtro por período"}
	}

	local := s.now().In(domain.SaoPaulo())
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, local.Location())

	// O mês fecha no último dia, não em hoje: propostas com data manual
	// futura continuam contando no ranking.
	return domain.Window{
		Start: start.Format("2006-01-02"),
		End:   start.AddDate(0, 1, -1).Format("2006-01-02"),
		Label: "mes_atual",
	}
}

// DailyIndex cruza a produção de hoje com a falta de cada consultor,
// calculada sobre o acumulado total, não apenas sobre o dia.
func (s *Service) DailyIndex() (*domain.DailyIndex, error) {
	today := s.now().In(domain.SaoPaulo()).Format("2006-01-02")

	consultants, err := s.userRepo.ListConsultantNames()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar consultores")
	}

	todaySums, err := s.proposalRepo.ConsultantSumsOnDate(today)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao somar o dia")
	}

	overallTotals, err := s.proposalRepo.ConsultantEquivalentTotals()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao somar acumulados")
	}

	globalGoal, err := s.goalRepo.GetGlobalGoal()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a meta global")
	}

	dailyGoal, err := s.goalRepo.GetDailyGoal()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a meta do dia")
	}

	rows := make([]*domain.DailyIndexRow, 0, len(consultants))
	var totalEq, totalOr float64

	for _, consultant := range consultants {
		row := &domain.DailyIndexRow{Consultant: consultant}

		if sums, ok := todaySums[consultant]; ok {
			row.TodayEq = utils.RoundWithTwoDecimalPlace(sums.Equivalent)
			row.TodayOr = utils.RoundWithTwoDecimalPlace(sums.Original)
		}
		row.OverallEqTotal = overallTotals[consultant]

		goal := globalGoal
		individual, err := s.goalRepo.GetConsultantGoal(consultant)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler a meta individual")
		}
		if individual != nil {
			goal = individual.Value
		}

		row.Goal = goal
		row.Gap = domain.Gap(goal, row.OverallEqTotal)

		totalEq += row.TodayEq
		totalOr += row.TodayOr
		rows = append(rows, row)
	}

	// Ordena pela produção do dia, do maior para o menor.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TodayEq > rows[j].TodayEq
	})

	return &domain.DailyIndex{
		Rows:         rows,
		TotalEq:      utils.RoundWithTwoDecimalPlace(totalEq),
		TotalOr:      utils.RoundWithTwoDecimalPlace(totalOr),
		DailyGoal:    dailyGoal,
		DailyGoalGap: domain.Gap(dailyGoal, totalEq),
		Date:         today,
	}, nil
}
