package dashboarding

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

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "vazio vira Andamento", input: "", expected: "Andamento"},
		{name: "espaços viram Andamento", input: "   ", expected: "Andamento"},
		{name: "minúsculas ganham inicial maiúscula", input: "pago", expected: "Pago"},
		{name: "gritado é normalizado", input: "PAGO", expected: "Pago"},
		{name: "espaços nas bordas são aparados", input: "  em análise  ", expected: "Em Análise"},
		{name: "espaços internos duplicados colapsam", input: "em   análise", expected: "Em Análise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeStatus(tt.input))
		})
	}
}

func TestBuildSourceMatrix(t *testing.T) {
	rows := []*repository.SourceStatusRow{
		{Source: "URA", Observation: "pago", Count: 2, EquivalentValue: 100, OriginalValue: 120},
		{Source: "URA", Observation: "PAGO", Count: 1, EquivalentValue: 50, OriginalValue: 60},
		{Source: "URA", Observation: "", Count: 3, EquivalentValue: 30, OriginalValue: 40},
		{Source: "Discadora", Observation: "Pago", Count: 1, EquivalentValue: 10, OriginalValue: 15},
		{Source: "Fonte Desconhecida", Observation: "Pago", Count: 9, EquivalentValue: 999, OriginalValue: 999},
	}

	matrix := buildSourceMatrix(rows)

	// Toda fonte conhecida aparece, mesmo sem linhas.
	for _, source := range domain.KnownSources {
		assert.Contains(t, matrix, source)
	}
	assert.NotContains(t, matrix, "Fonte Desconhecida")

	// Grafias diferentes do mesmo status somam na mesma célula.
	ura := matrix["URA"]
	assert.Equal(t, 3, ura["Pago"].Count)
	assert.Equal(t, 150.0, ura["Pago"].EquivalentValue)
	assert.Equal(t, 180.0, ura["Pago"].OriginalValue)

	// Observação vazia cai no status padrão.
	assert.Equal(t, 3, ura["Andamento"].Count)

	assert.Equal(t, 1, matrix["Discadora"]["Pago"].Count)
}

func TestRemainingWeekdays(t *testing.T) {
	tests := []struct {
		name     string
		day      int
		expected int
	}{
		// Março de 2025: dia 31 é segunda-feira.
		{name: "meio do mês", day: 20, expected: 7},
		{name: "penúltimo dia útil", day: 28, expected: 1},
		{name: "último dia do mês", day: 31, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2025, time.March, tt.day, 12, 0, 0, 0, domain.SaoPaulo())
			assert.Equal(t, tt.expected, remainingWeekdays(now))
		})
	}
}

func TestDailyPace(t *testing.T) {
	// Último dia do mês: divisor mínimo de um evita divisão por zero.
	endOfMonth := time.Date(2025, time.March, 31, 12, 0, 0, 0, domain.SaoPaulo())
	assert.Equal(t, 5000.0, dailyPace(5000, endOfMonth))

	midMonth := time.Date(2025, time.March, 20, 12, 0, 0, 0, domain.SaoPaulo())
	assert.InDelta(t, 5000.0/7.0, dailyPace(5000, midMonth), 0.001)
}

func TestPanelGoalFallback(t *testing.T) {
	tests := []struct {
		name           string
		individualGoal *domain.ConsultantGoal
		globalGoal     float64
		expectedGoal   float64
	}{
		{
			name:           "meta individual tem precedência",
			individualGoal: &domain.ConsultantGoal{Consultant: "Maria", Value: 40000},
			expectedGoal:   40000,
		},
		{
			name:         "sem meta individual vale a global",
			globalGoal:   90000,
			expectedGoal: 90000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			proposalRepo := mocks.NewMockProposalRepository(ctrl)
			userRepo := mocks.NewMockUserRepository(ctrl)
			goalRepo := mocks.NewMockGoalRepository(ctrl)

			proposalRepo.EXPECT().
				ListByConsultant("Maria", gomock.Any()).
				Return([]*domain.Proposal{
					{EquivalentValue: 10000, OriginalValue: 12000},
					{EquivalentValue: 5000, OriginalValue: 6000},
				}, nil)
			userRepo.EXPECT().
				ListConsultantNames().
				Return([]string{"Maria", "João"}, nil)
			goalRepo.EXPECT().
				GetConsultantGoal("Maria").
				Return(tt.individualGoal, nil)
			if tt.individualGoal == nil {
				goalRepo.EXPECT().
					GetGlobalGoal().
					Return(tt.globalGoal, nil)
			}

			service := &Service{
				proposalRepo: proposalRepo,
				userRepo:     userRepo,
				goalRepo:     goalRepo,
				now:          func() time.Time { return time.Date(2025, time.March, 20, 12, 0, 0, 0, domain.SaoPaulo()) },
			}

			panel, err := service.Panel("Maria", domain.PeriodToday)
			require.NoError(t, err)
			assert.Equal(t, 15000.0, panel.TotalEquivalent)
			assert.Equal(t, 18000.0, panel.TotalOriginal)
			assert.Equal(t, tt.expectedGoal, panel.Goal)
			assert.Equal(t, domain.Gap(tt.expectedGoal, 15000), panel.GoalGap)
		})
	}
}

func TestSummary(t *testing.T) {
	ctrl := gomock.NewController(t)

	proposalRepo := mocks.NewMockProposalRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	proposalRepo.EXPECT().
		WindowTotals(gomock.Any()).
		Return(60000.0, 70000.0, 4, nil)
	goalRepo.EXPECT().
		GetGlobalGoal().
		Return(100000.0, nil)
	proposalRepo.EXPECT().
		TopConsultants(gomock.Any(), 3).
		Return([]*domain.TopConsultant{{Consultant: "Maria", Total: 60000}}, nil)
	proposalRepo.EXPECT().
		BankBreakdown(gomock.Any()).
		Return([]*domain.BankSummary{}, nil)
	proposalRepo.EXPECT().
		SourceStatusRows(gomock.Any()).
		Return([]*repository.SourceStatusRow{}, nil)

	service := &Service{
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
		goalRepo:     goalRepo,
		now:          func() time.Time { return time.Date(2025, time.March, 20, 12, 0, 0, 0, domain.SaoPaulo()) },
	}

	summary, err := service.Summary(domain.PeriodToday, "", "")
	require.NoError(t, err)

	assert.Equal(t, 60000.0, summary.TotalEquivalent)
	assert.Equal(t, 4, summary.TotalProposals)
	assert.Equal(t, 40000.0, summary.GoalGap)
	// 7 dias úteis restantes em março de 2025 depois do dia 20.
	assert.InDelta(t, 40000.0/7.0, summary.DailyGoalTicket, 0.01)
	// Ticket médio sai do valor original: 70000 / 4.
	assert.Equal(t, 17500.0, summary.MeanContractValue)
	assert.Equal(t, "2025-03-20", summary.Start)
}

func TestSummaryExplicitDatesOverridePeriod(t *testing.T) {
	ctrl := gomock.NewController(t)

	proposalRepo := mocks.NewMockProposalRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	window := domain.Window{Start: "2025-01-01", End: "2025-01-31", Label: "Filtro por período"}
	proposalRepo.EXPECT().WindowTotals(window).Return(0.0, 0.0, 0, nil)
	goalRepo.EXPECT().GetGlobalGoal().Return(0.0, nil)
	proposalRepo.EXPECT().TopConsultants(window, 3).Return(nil, nil)
	proposalRepo.EXPECT().BankBreakdown(window).Return(nil, nil)
	proposalRepo.EXPECT().SourceStatusRows(&window).Return(nil, nil)

	service := &Service{
		proposalRepo: proposalRepo,
		goalRepo:     goalRepo,
		now:          func() time.Time { return time.Date(2025, time.March, 20, 12, 0, 0, 0, domain.SaoPaulo()) },
	}

	summary, err := service.Summary(domain.PeriodToday, "2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", summary.Start)
	assert.Equal(t, "2025-01-31", summary.End)
}
