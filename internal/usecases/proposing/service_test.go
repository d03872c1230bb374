package proposing

import (
	"testing"
	"time"

	"github.com/consigtech/proposal-tracker-api/infrastructure/repository/mocks"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/consigtech/proposal-tracker-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

func TestCreateCoercesNumericFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	proposalRepo := mocks.NewMockProposalRepository(ctrl)
	service := NewService(proposalRepo)

	input := &domain.ProposalInput{
		Source:           "INSS",
		Bank:             "Banco Alfa",
		ClientName:       "Cliente Teste",
		EquivalentValue:  "1234,56",
		OriginalValue:    "abc",
		InstallmentValue: "100,00",
		InstallmentCount: "84",
	}

	proposalRepo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(p *domain.Proposal) (*domain.Proposal, error) {
			assert.Equal(t, "Maria", p.Consultant)
			assert.Equal(t, 1234.56, p.EquivalentValue)
			// Valor malformado vira zero, nunca erro.
			assert.Equal(t, 0.0, p.OriginalValue)
			assert.Equal(t, 100.0, p.InstallmentValue)
			assert.Equal(t, 84, p.InstallmentCount)
			p.ID = 1
			return p, nil
		})

	created, err := service.Create("Maria", input)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestCreateResolvesManualDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	proposalRepo := mocks.NewMockProposalRepository(ctrl)
	service := NewService(proposalRepo)

	input := &domain.ProposalInput{ManualDate: "2025-03-15T14:30"}

	proposalRepo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(p *domain.Proposal) (*domain.Proposal, error) {
			assert.Equal(t, "2025-03-15 14:30:00", p.Date)
			return p, nil
		})

	_, err := service.Create("Maria", input)
	require.NoError(t, err)
}

func TestCreateFallsBackToNowOnBadManualDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	proposalRepo := mocks.NewMockProposalRepository(ctrl)
	service := NewService(proposalRepo)

	input := &domain.ProposalInput{ManualDate: "15/03/2025"}

	proposalRepo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(p *domain.Proposal) (*domain.Proposal, error) {
			assert.NotEmpty(t, p.Date)
			assert.NotEqual(t, "15/03/2025", p.Date)
			_, parseErr := time.Parse(domain.TimestampLayout, p.Date)
			assert.NoError(t, parseErr)
			return p, nil
		})

	_, err := service.Create("Maria", input)
	require.NoError(t, err)
}

func TestUpdatePreservesConsultant(t *testing.T) {
	ctrl := gomock.NewController(t)
	proposalRepo := mocks.NewMockProposalRepository(ctrl)
	service := NewService(proposalRepo)

	proposalRepo.EXPECT().GetByID(3).
		Return(&domain.Proposal{ID: 3, Consultant: "João"}, nil)
	proposalRepo.EXPECT().Update(gomock.Any()).
		DoAndReturn(func(p *domain.Proposal) error {
			assert.Equal(t, 3, p.ID)
			// Editar não transfere a proposta de consultor.
			assert.Equal(t, "João", p.Consultant)
			return nil
		})

	err := service.Update(3, &domain.ProposalInput{EquivalentValue: "500,00"})
	require.NoError(t, err)
}

func TestUpdateUnknownProposal(t *testing.T) {
	ctrl := gomock.NewController(t)
	proposalRepo := mocks.NewMockProposalRepository(ctrl)
	service := NewService(proposalRepo)

	proposalRepo.EXPECT().GetByID(99).Return(nil, nil)

	err := service.Update(99, &domain.ProposalInput{})
	assert.ErrorIs(t, err, ErrProposalNotFound)
}

func TestGetUnknownProposal(t *testing.T) {
	ctrl := gomock.NewController(t)
	proposalRepo := mocks.NewMockProposalRepository(ctrl)
	service := NewService(proposalRepo)

	proposalRepo.EXPECT().GetByID(42).Return(nil, nil)

	_, err := service.Get(42)
	assert.ErrorIs(t, err, ErrProposalNotFound)
}
