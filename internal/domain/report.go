package domain

// ReportPageSize é o tamanho fixo de página do relatório de propostas.
const ReportPageSize = 50

// ReportFilter é o conjunto fechado de filtros aceitos pelo relatório.
// Cada campo vira uma cláusula parametrizada; nunca há concatenação de
// valores na query.
type ReportFilter struct {
	Consultant    string `json:"usuario"`
	StartDate     string `json:"data_ini"`
	EndDate       string `json:"data_fim"`
	Month         string `json:"mes"`
	Year          string `json:"ano"`
	Observation   string `json:"observacao"`
	TypedPassword string `json:"senha_digitada"`
	Source        string `json:"fonte"`
	PlanTable     string `json:"tabela"`
	Bank          string `json:"banco"`
	CPF           string `json:"cpf"`
	Page          int    `json:"pagina"`
}

// Window é a janela de tempo resolvida de um filtro, com o rótulo exibido
// ao usuário ("Filtro por período", "Março/2025", ...). Start/End vazios
// significam janela aberta (caso do filtro por CPF).
type Window struct {
	Start string
	End   string
	Label string
}

func (w Window) Open() bool {
	return w.Start == "" && w.End == ""
}

type ReportResult struct {
	Rows            []*Proposal `json:"propostas"`
	TotalRows       int         `json:"total_propostas"`
	TotalPages      int         `json:"total_paginas"`
	Page            int         `json:"pagina"`
	TotalEquivalent float64     `json:"total_equivalente"`
	TotalOriginal   float64     `json:"total_original"`
	Goal            float64     `json:"meta"`
	GoalGap         float64     `json:"falta_para_meta"`
	WindowLabel     string      `json:"periodo"`
	Consultants     []string    `json:"consultores"`
}
