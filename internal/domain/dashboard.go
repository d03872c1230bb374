package domain

// Sentinelas do seletor de período do dashboard e do painel do usuário.
const (
	PeriodToday     = "hoje"
	PeriodLastWeek  = "ultima_semana"
	PeriodLastMonth = "ultimo_mes"
	PeriodAll       = "tudo"
)

// Limites da janela aberta do sentinela "tudo".
const (
	OpenRangeStart = "1900-01-01"
	OpenRangeEnd   = "2100-01-01"
)

// DefaultStatus é o status atribuído a propostas com observação em branco.
const DefaultStatus = "Andamento"

// SourceStatusCell é uma célula da matriz fonte × status.
type SourceStatusCell struct {
	Count           int     `json:"qtd"`
	EquivalentValue float64 `json:"valor_eq"`
	OriginalValue   float64 `json:"valor_or"`
}

// SourceMatrix mapeia fonte -> status -> célula, apenas para as fontes
// conhecidas.
type SourceMatrix map[string]map[string]SourceStatusCell

type BankSummary struct {
	Bank            string  `json:"banco"`
	Count           int     `json:"total_propostas"`
	EquivalentValue float64 `json:"total_valor"`
}

type TopConsultant struct {
	Consultant string  `json:"consultor"`
	Total      float64 `json:"total"`
}

type DashboardSummary struct {
	TotalEquivalent   float64          `json:"total_eq"`
	TotalOriginal     float64          `json:"total_or"`
	TotalProposals    int              `json:"total_propostas"`
	GlobalGoal        float64          `json:"meta_global"`
	GoalGap           float64          `json:"falta_meta"`
	TopConsultants    []*TopConsultant `json:"ranking"`
	Banks             []*BankSummary   `json:"bancos"`
	Sources           SourceMatrix     `json:"fontes"`
	DailyGoalTicket   float64          `json:"ticket_meta_diaria"`
	MeanContractValue float64          `json:"media_diaria_contratos"`
	Start             string           `json:"inicio"`
	End               string           `json:"fim"`
	Period            string           `json:"periodo"`
}

// PanelResult é o painel individual do consultor: propostas da janela e
// falta contra a meta individual.
type PanelResult struct {
	Consultant      string      `json:"consultor_filtro"`
	Proposals       []*Proposal `json:"propostas"`
	TotalEquivalent float64     `json:"total_eq"`
	TotalOriginal   float64     `json:"total_or"`
	Goal            float64     `json:"meta_individual"`
	GoalGap         float64     `json:"falta_meta"`
	Consultants     []string    `json:"consultores"`
	Start           string      `json:"inicio"`
	End             string      `json:"fim"`
}
