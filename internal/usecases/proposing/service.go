// Package proposing registra e mantém propostas de venda
package proposing

import (
	"errors"
	"time"

	"github.com/consigtech/proposal-tracker-api/infrastructure/repository"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/consigtech/proposal-tracker-api/pkg/log"
	"github.com/consigtech/proposal-tracker-api/pkg/utils"
)

var ErrProposalNotFound = errors.New("proposta não encontrada")

type Proposer interface {
	// Create grava a proposta em nome do consultor autenticado. Data
	// manual ausente ou malformada vira o instante atual.
	Create(consultant string, input *domain.ProposalInput) (*domain.Proposal, error)
	Update(id int, input *domain.ProposalInput) error
	Delete(id int) error
	Get(id int) (*domain.Proposal, error)
}

type Service struct {
	proposalRepo repository.ProposalRepository
}

func NewService(proposalRepo repository.ProposalRepository) Proposer {
	return &Service{
		proposalRepo: proposalRepo,
	}
}

func (s *Service) Create(consultant string, input *domain.ProposalInput) (*domain.Proposal, error) {
	proposal := fromInput(input)
	proposal.Consultant = consultant

	created, err := s.proposalRepo.Create(proposal)
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"consultor": consultant,
		"valor_eq":  created.EquivalentValue,
	}).Info("Proposta registrada")

	return created, nil
}

func (s *Service) Update(id int, input *domain.ProposalInput) error {
	existing, err := s.proposalRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProposalNotFound
	}

	proposal := fromInput(input)
	proposal.ID = id
	// O consultor original é preservado; edição não transfere a proposta.
	proposal.Consultant = existing.Consultant

	return s.proposalRepo.Update(proposal)
}

func (s *Service) Delete(id int) error {
	return s.proposalRepo.Delete(id)
}

func (s *Service) Get(id int) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, ErrProposalNotFound
	}

	return proposal, nil
}

// fromInput coage o corpo do formulário para a proposta persistível.
// Campos numéricos malformados viram zero, nunca erro.
func fromInput(input *domain.ProposalInput) *domain.Proposal {
	return &domain.Proposal{
		Date:                resolveDate(input.ManualDate),
		Source:              input.Source,
		Bank:                input.Bank,
		TypedPassword:       input.TypedPassword,
		PlanTable:           input.PlanTable,
		ClientName:          input.ClientName,
		CPF:                 input.CPF,
		EquivalentValue:     utils.ParseMoney(input.EquivalentValue),
		OriginalValue:       utils.ParseMoney(input.OriginalValue),
		Observation:         input.Observation,
		Phone:               input.Phone,
		Product:             input.Product,
		InstallmentValue:    utils.ParseMoney(input.InstallmentValue),
		InstallmentCount:    utils.ParseCount(input.InstallmentCount),
		ExpectedPaymentDate: input.ExpectedPaymentDate,
	}
}

func resolveDate(manualDate string) string {
	if manualDate != "" {
		if parsed, err := time.ParseInLocation(domain.ManualDateLayout, manualDate, domain.SaoPaulo()); err == nil {
			return parsed.Format(domain.TimestampLayout)
		}
	}

	return time.Now().In(domain.SaoPaulo()).Format(domain.TimestampLayout)
}
