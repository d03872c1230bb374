// Package goaling administra as metas global, diária e individuais
package goaling

import (
	"strings"

	"github.com/consigtech/proposal-tracker-api/infrastructure/repository"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/pkg/errors"
)

type GoalManager interface {
	SetGlobalGoal(value float64) error
	SetDailyGoal(value float64) error
	SetConsultantGoal(consultant string, value float64) error
	Overview() (*domain.GoalOverview, error)
}

type Service struct {
	goalRepo repository.GoalRepository
}

func NewService(goalRepo repository.GoalRepository) GoalManager {
	return &Service{
		goalRepo: goalRepo,
	}
}

func (s *Service) SetGlobalGoal(value float64) error {
	if value < 0 {
		return errors.New("meta não pode ser negativa")
	}

	return s.goalRepo.SetGlobalGoal(value)
}

func (s *Service) SetDailyGoal(value float64) error {
	if value < 0 {
		return errors.New("meta não pode ser negativa")
	}

	return s.goalRepo.SetDailyGoal(value)
}

func (s *Service) SetConsultantGoal(consultant string, value float64) error {
	consultant = strings.TrimSpace(consultant)
	if consultant == "" {
		return errors.New("consultor é obrigatório")
	}
	if value < 0 {
		return errors.New("meta não pode ser negativa")
	}

	return s.goalRepo.UpsertConsultantGoal(consultant, value)
}

func (s *Service) Overview() (*domain.GoalOverview, error) {
	globalGoal, err := s.goalRepo.GetGlobalGoal()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a meta global")
	}

	dailyGoal, err := s.goalRepo.GetDailyGoal()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a meta do dia")
	}

	consultantGoals, err := s.goalRepo.ListConsultantGoals()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar metas individuais")
	}

	return &domain.GoalOverview{
		GlobalGoal:      globalGoal,
		DailyGoal:       dailyGoal,
		ConsultantGoals: consultantGoals,
	}, nil
}
