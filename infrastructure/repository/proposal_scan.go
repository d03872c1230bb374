package repository

import (
	"database/sql"

	"github.com/consigtech/proposal-tracker-api/internal/domain"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProposal lê uma linha com as colunas na ordem de columns(). As
// colunas adicionadas por migração podem vir NULL em bases antigas.
func scanProposal(scanner rowScanner) (*domain.Proposal, error) {
	var (
		proposal         domain.Proposal
		date             sql.NullString
		consultant       sql.NullString
		source           sql.NullString
		bank             sql.NullString
		typedPassword    sql.NullString
		planTable        sql.NullString
		clientName       sql.NullString
		cpf              sql.NullString
		equivalentValue  sql.NullFloat64
		originalValue    sql.NullFloat64
		observation      sql.NullString
		phone            sql.NullString
		product          sql.NullString
		installmentValue sql.NullFloat64
		installmentCount sql.NullInt64
		expectedPayment  sql.NullString
	)

	err := scanner.Scan(
		&proposal.ID,
		&date,
		&consultant,
		&source,
		&bank,
		&typedPassword,
		&planTable,
		&clientName,
		&cpf,
		&equivalentValue,
		&originalValue,
		&observation,
		&phone,
		&product,
		&installmentValue,
		&installmentCount,
		&expectedPayment,
	)
	if err != nil {
		return nil, err
	}

	proposal.Date = date.String
	proposal.Consultant = consultant.String
	proposal.Source = source.String
	proposal.Bank = bank.String
	proposal.TypedPassword = typedPassword.String
	proposal.PlanTable = planTable.String
	proposal.ClientName = clientName.String
	proposal.CPF = cpf.String
	proposal.EquivalentValue = equivalentValue.Float64
	proposal.OriginalValue = originalValue.Float64
	proposal.Observation = observation.String
	proposal.Phone = phone.String
	proposal.Product = product.String
	proposal.InstallmentValue = installmentValue.Float64
	proposal.InstallmentCount = int(installmentCount.Int64)
	proposal.ExpectedPaymentDate = expectedPayment.String

	return &proposal, nil
}

func scanProposalRow(row *sql.Row) (*domain.Proposal, error) {
	return scanProposal(row)
}

func scanProposalRows(rows *sql.Rows) (*domain.Proposal, error) {
	return scanProposal(rows)
}
