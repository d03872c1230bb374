package goaling

import (
	"testing"

	"github.com/consigtech/proposal-tracker-api/infrastructure/repository/mocks"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSetGoalsRejectNegative(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewService(mocks.NewMockGoalRepository(ctrl))

	assert.Error(t, service.SetGlobalGoal(-1))
	assert.Error(t, service.SetDailyGoal(-0.01))
	assert.Error(t, service.SetConsultantGoal("Maria", -100))
}

func TestSetConsultantGoalRequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewService(mocks.NewMockGoalRepository(ctrl))

	assert.Error(t, service.SetConsultantGoal("", 1000))
	assert.Error(t, service.SetConsultantGoal("   ", 1000))
}

func TestSetConsultantGoalTrimsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	goalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(goalRepo)

	goalRepo.EXPECT().UpsertConsultantGoal("Maria", 50000.0).Return(nil)

	require.NoError(t, service.SetConsultantGoal("  Maria  ", 50000))
}

func TestOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	goalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(goalRepo)

	goalRepo.EXPECT().GetGlobalGoal().Return(80000.0, nil)
	goalRepo.EXPECT().GetDailyGoal().Return(5000.0, nil)
	goalRepo.EXPECT().ListConsultantGoals().Return([]domain.ConsultantGoal{
		{ID: 1, Consultant: "Maria", Value: 60000},
	}, nil)

	overview, err := service.Overview()
	require.NoError(t, err)
	assert.Equal(t, 80000.0, overview.GlobalGoal)
	assert.Equal(t, 5000.0, overview.DailyGoal)
	require.Len(t, overview.ConsultantGoals, 1)
	assert.Equal(t, "Maria", overview.ConsultantGoals[0].Consultant)
}

// Meta zero é válida e significa "sem meta definida".
func TestSetGoalsAcceptZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	goalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(goalRepo)

	goalRepo.EXPECT().SetGlobalGoal(0.0).Return(nil)
	goalRepo.EXPECT().SetDailyGoal(0.0).Return(nil)

	assert.NoError(t, service.SetGlobalGoal(0))
	assert.NoError(t, service.SetDailyGoal(0))
}
