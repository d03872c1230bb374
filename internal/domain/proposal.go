// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// TimestampLayout é a forma textual em que a data de uma proposta é
// gravada nos dois backends, sempre em hora de parede de São Paulo.
const TimestampLayout = "2006-01-02 15:04:05"

// ManualDateLayout é o formato aceito do campo data_manual dos formulários.
const ManualDateLayout = "2006-01-02T15:04"

// Fontes conhecidas de captação. Valores fora desta lista são ignorados
// na visão por fonte.
var KnownSources = []string{
	"URA",
	"Disparo/Whatsapp",
	"Disparo/SMS",
	"Indicação",
	"Discadora",
	"Tráfego",
}

type Proposal struct {
	ID                  int     `json:"id"`
	Date                string  `json:"data"`
	Consultant          string  `json:"consultor"`
	Source              string  `json:"fonte"`
	Bank                string  `json:"banco"`
	TypedPassword       string  `json:"senha_digitada"`
	PlanTable           string  `json:"tabela"`
	ClientName          string  `json:"nome_cliente"`
	CPF                 string  `json:"cpf"`
	EquivalentValue     float64 `json:"valor_equivalente"`
	OriginalValue       float64 `json:"valor_original"`
	Observation         string  `json:"observacao"`
	Phone               string  `json:"telefone"`
	Product             string  `json:"produto"`
	InstallmentValue    float64 `json:"valor_parcela"`
	InstallmentCount    int     `json:"quantidade_parcelas"`
	ExpectedPaymentDate string  `json:"data_pagamento_prevista"`
}

// ProposalInput é o corpo de criação/edição de proposta. Valores numéricos
// e data manual malformados são coagidos para o padrão (zero / agora), não
// rejeitados.
type ProposalInput struct {
	ManualDate          string `json:"data_manual"`
	Source              string `json:"fonte"`
	Bank                string `json:"banco"`
	TypedPassword       string `json:"senha_digitada"`
	PlanTable           string `json:"tabela"`
	ClientName          string `json:"nome_cliente"`
	CPF                 string `json:"cpf"`
	EquivalentValue     string `json:"valor_equivalente"`
	OriginalValue       string `json:"valor_original"`
	Observation         string `json:"observacao"`
	Phone               string `json:"telefone"`
	Product             string `json:"produto"`
	InstallmentValue    string `json:"valor_parcela"`
	InstallmentCount    string `json:"quantidade_parcelas"`
	ExpectedPaymentDate string `json:"data_pagamento_prevista"`
}

// SaoPaulo é o fuso de exibição de todas as datas do sistema.
func SaoPaulo() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}
