package ranking

import (
	"testing"
	"time"

	"github.com/consigtech/proposal-tracker-api/infrastructure/repository"
	"github.com/consigtech/proposal-tracker-api/infrastructure/repository/mocks"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 20, 12, 0, 0, 0, domain.SaoPaulo())
}

func TestConsultantRankingGoalFallback(t *testing.T) {
	ctrl := gomock.NewController(t)

	proposalRepo := mocks.NewMockProposalRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	proposalRepo.EXPECT().
		ConsultantRanking(gomock.Any()).
		Return([]*domain.ConsultantRankingItem{
			{Consultant: "Maria", TotalEquivalent: 60000, Goal: 80000},
			{Consultant: "João", TotalEquivalent: 40000, Goal: 0},
			{Consultant: "Ana", TotalEquivalent: 0, Goal: 0},
		}, nil)
	goalRepo.EXPECT().
		GetGlobalGoal().
		Return(50000.0, nil)

	service := &Service{
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
		goalRepo:     goalRepo,
		now:          fixedNow,
	}

	result, err := service.ConsultantRanking("", "")
	require.NoError(t, err)
	require.Len(t, result.Items, 3)

	// Meta individual é mantida; zero cai na global.
	assert.Equal(t, 80000.0, result.Items[0].Goal)
	assert.Equal(t, 20000.0, result.Items[0].Gap)

	assert.Equal(t, 50000.0, result.Items[1].Goal)
	assert.Equal(t, 10000.0, result.Items[1].Gap)

	// Consultor sem proposta aparece com a falta cheia.
	assert.Equal(t, 50000.0, result.Items[2].Gap)

	// Janela padrão: o mês corrente inteiro, incluindo datas futuras.
	assert.Equal(t, "2025-03-01", result.StartDate)
	assert.Equal(t, "2025-03-31", result.EndDate)
}

func TestConsultantRankingExplicitWindow(t *testing.T) {
	ctrl := gomock.NewController(t)

	proposalRepo := mocks.NewMockProposalRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	proposalRepo.EXPECT().
		ConsultantRanking(domain.Window{Start: "2025-01-01", End: "2025-01-31", Label: "Filtro por período"}).
		Return([]*domain.ConsultantRankingItem{}, nil)
	goalRepo.EXPECT().
		GetGlobalGoal().
		Return(0.0, nil)

	service := &Service{proposalRepo: proposalRepo, goalRepo: goalRepo, now: fixedNow}

	result, err := service.ConsultantRanking("2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", result.StartDate)
	assert.Equal(t, "2025-01-31", result.EndDate)
}

func TestDailyIndex(t *testing.T) {
	ctrl := gomock.NewController(t)

	proposalRepo := mocks.NewMockProposalRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	userRepo.EXPECT().
		ListConsultantNames().
		Return([]string{"Ana", "João", "Maria"}, nil)
	proposalRepo.EXPECT().
		ConsultantSumsOnDate("2025-03-20").
		Return(map[string]*repository.ConsultantSums{
			"Maria": {Equivalent: 3000, Original: 3500},
			"João":  {Equivalent: 5000, Original: 5200},
		}, nil)
	proposalRepo.EXPECT().
		ConsultantEquivalentTotals().
		Return(map[string]float64{
			"Maria": 45000,
			"João":  20000,
		}, nil)
	goalRepo.EXPECT().GetGlobalGoal().Return(50000.0, nil)
	goalRepo.EXPECT().GetDailyGoal().Return(10000.0, nil)
	goalRepo.EXPECT().GetConsultantGoal("Ana").Return(nil, nil)
	goalRepo.EXPECT().GetConsultantGoal("João").Return(nil, nil)
	goalRepo.EXPECT().GetConsultantGoal("Maria").
		Return(&domain.ConsultantGoal{Consultant: "Maria", Value: 40000}, nil)

	service := &Service{
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
		goalRepo:     goalRepo,
		now:          fixedNow,
	}

	result, err := service.DailyIndex()
	require.NoError(t, err)
	require.Len(t, result.Rows, 3)

	// Ordenado pela produção do dia.
	assert.Equal(t, "João", result.Rows[0].Consultant)
	assert.Equal(t, "Maria", result.Rows[1].Consultant)
	assert.Equal(t, "Ana", result.Rows[2].Consultant)

	// Falta calculada sobre o acumulado, não sobre o dia.
	assert.Equal(t, 30000.0, result.Rows[0].Gap)
	// Meta individual já superada pelo acumulado.
	assert.Equal(t, 0.0, result.Rows[1].Gap)
	assert.Equal(t, 50000.0, result.Rows[2].Gap)

	assert.Equal(t, 8000.0, result.TotalEq)
	assert.Equal(t, 10000.0, result.DailyGoal)
	assert.Equal(t, 2000.0, result.DailyGoalGap)
	assert.Equal(t, "2025-03-20", result.Date)
}
