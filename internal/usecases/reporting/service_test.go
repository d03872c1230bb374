package reporting

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/consigtech/proposal-tracker-api/infrastructure/repository/mocks"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 20, 15, 0, 0, 0, domain.SaoPaulo())
}

func TestBuildReportPagination(t *testing.T) {
	tests := []struct {
		name          string
		totalRows     int
		expectedPages int
	}{
		{name: "conjunto vazio tem zero páginas", totalRows: 0, expectedPages: 0},
		{name: "uma linha", totalRows: 1, expectedPages: 1},
		{name: "página cheia", totalRows: 50, expectedPages: 1},
		{name: "página cheia mais um", totalRows: 51, expectedPages: 2},
		{name: "três páginas exatas", totalRows: 150, expectedPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			proposalRepo := mocks.NewMockProposalRepository(ctrl)
			goalRepo := mocks.NewMockGoalRepository(ctrl)

			proposalRepo.EXPECT().
				SearchPage(gomock.Any(), gomock.Any(), 1).
				Return([]*domain.Proposal{}, nil)
			proposalRepo.EXPECT().
				Count(gomock.Any(), gomock.Any()).
				Return(tt.totalRows, nil)
			proposalRepo.EXPECT().
				Totals(gomock.Any(), gomock.Any()).
				Return(0.0, 0.0, nil)
			proposalRepo.EXPECT().
				DistinctConsultants().
				Return([]string{}, nil)
			goalRepo.EXPECT().
				GetGlobalGoal().
				Return(0.0, nil)

			service := &Service{proposalRepo: proposalRepo, goalRepo: goalRepo, now: fixedNow}

			result, err := service.BuildReport(domain.ReportFilter{})
			require.NoError(t, err)
			assert.Equal(t, tt.totalRows, result.TotalRows)
			assert.Equal(t, tt.expectedPages, result.TotalPages)
			assert.Equal(t, 1, result.Page)
		})
	}
}

func TestBuildReportGoalFallback(t *testing.T) {
	tests := []struct {
		name           string
		consultant     string
		individualGoal *domain.ConsultantGoal
		globalGoal     float64
		expectedGoal   float64
	}{
		{
			name:         "sem filtro de consultor usa a meta global",
			consultant:   "",
			globalGoal:   100000,
			expectedGoal: 100000,
		},
		{
			name:         "traço no filtro equivale a sem filtro",
			consultant:   "-",
			globalGoal:   100000,
			expectedGoal: 100000,
		},
		{
			name:           "consultor com meta própria",
			consultant:     "Maria",
			individualGoal: &domain.ConsultantGoal{Consultant: "Maria", Value: 30000},
			globalGoal:     100000,
			expectedGoal:   30000,
		},
		{
			name:         "consultor sem meta própria cai na global",
			consultant:   "Maria",
			globalGoal:   100000,
			expectedGoal: 100000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			proposalRepo := mocks.NewMockProposalRepository(ctrl)
			goalRepo := mocks.NewMockGoalRepository(ctrl)

			proposalRepo.EXPECT().
				SearchPage(gomock.Any(), gomock.Any(), 1).
				Return([]*domain.Proposal{}, nil)
			proposalRepo.EXPECT().
				Count(gomock.Any(), gomock.Any()).
				Return(0, nil)
			proposalRepo.EXPECT().
				Totals(gomock.Any(), gomock.Any()).
				Return(20000.0, 25000.0, nil)
			proposalRepo.EXPECT().
				DistinctConsultants().
				Return([]string{"Maria"}, nil)
			goalRepo.EXPECT().
				GetGlobalGoal().
				Return(tt.globalGoal, nil)

			if trimmed := strings.TrimSpace(tt.consultant); trimmed != "" && trimmed != "-" {
				goalRepo.EXPECT().
					GetConsultantGoal(trimmed).
					Return(tt.individualGoal, nil)
			}

			service := &Service{proposalRepo: proposalRepo, goalRepo: goalRepo, now: fixedNow}

			result, err := service.BuildReport(domain.ReportFilter{Consultant: tt.consultant})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedGoal, result.Goal)
			assert.Equal(t, domain.Gap(tt.expectedGoal, 20000), result.GoalGap)
		})
	}
}

func TestBuildReportGapNeverNegative(t *testing.T) {
	ctrl := gomock.NewController(t)

	proposalRepo := mocks.NewMockProposalRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	proposalRepo.EXPECT().SearchPage(gomock.Any(), gomock.Any(), 1).Return([]*domain.Proposal{}, nil)
	proposalRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	proposalRepo.EXPECT().Totals(gomock.Any(), gomock.Any()).Return(150000.0, 160000.0, nil)
	proposalRepo.EXPECT().DistinctConsultants().Return([]string{}, nil)
	goalRepo.EXPECT().GetGlobalGoal().Return(100000.0, nil)

	service := &Service{proposalRepo: proposalRepo, goalRepo: goalRepo, now: fixedNow}

	result, err := service.BuildReport(domain.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.GoalGap)
}

func TestExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)

	proposalRepo := mocks.NewMockProposalRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	proposalRepo.EXPECT().
		SearchAll(gomock.Any(), gomock.Any()).
		Return([]*domain.Proposal{
			{
				Date:            "2025-03-10 09:30:00",
				Consultant:      "Maria",
				Source:          "URA",
				Bank:            "Banco A",
				ClientName:      "Cliente X",
				CPF:             "12345678900",
				EquivalentValue: 1234.56,
				OriginalValue:   2000,
				Observation:     "Pago",
			},
		}, nil)

	service := &Service{proposalRepo: proposalRepo, goalRepo: goalRepo, now: fixedNow}

	var buf bytes.Buffer
	err := service.ExportCSV(domain.ReportFilter{}, &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Valor Equivalente")
	assert.Contains(t, lines[1], "Maria")
	assert.Contains(t, lines[1], "R$ 1.234,56")
	assert.Contains(t, lines[1], "R$ 2.000,00")
}
