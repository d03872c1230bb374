package domain

// ConsultantRankingItem é uma linha do ranking por consultor: somas na
// janela, meta resolvida e falta. Consultores com papel admin nunca
// aparecem aqui.
type ConsultantRankingItem struct {
	Consultant      string  `json:"consultor"`
	TotalEquivalent float64 `json:"total_eq"`
	TotalOriginal   float64 `json:"total_or"`
	Goal            float64 `json:"meta"`
	Gap             float64 `json:"falta"`
}

type ConsultantRanking struct {
	Items     []*ConsultantRankingItem `json:"ranking"`
	StartDate string                   `json:"data_ini"`
	EndDate   string                   `json:"data_fim"`
}

// DailyIndexRow é uma linha do índice do dia: produção de hoje por
// consultor e a falta calculada sobre o acumulado total.
type DailyIndexRow struct {
	Consultant     string  `json:"consultor"`
	TodayEq        float64 `json:"eq_dia"`
	TodayOr        float64 `json:"or_dia"`
	Goal           float64 `json:"meta"`
	Gap            float64 `json:"falta"`
	OverallEqTotal float64 `json:"-"`
}

type DailyIndex struct {
	Rows         []*DailyIndexRow `json:"ranking"`
	TotalEq      float64          `json:"total_eq"`
	TotalOr      float64          `json:"total_or"`
	DailyGoal    float64          `json:"meta_dia"`
	DailyGoalGap float64          `json:"falta_meta_dia"`
	Date         string           `json:"data_atual"`
}
