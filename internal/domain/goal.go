package domain

// ConsultantGoal é a meta individual de um consultor. Semântica de upsert:
// apenas o valor mais recente é recuperável.
type ConsultantGoal struct {
	ID         int     `json:"id"`
	Consultant string  `json:"consultor"`
	Value      float64 `json:"meta"`
}

// GoalOverview agrega as metas vigentes para o painel administrativo.
type GoalOverview struct {
	GlobalGoal      float64          `json:"meta_global"`
	DailyGoal       float64          `json:"meta_dia"`
	ConsultantGoals []ConsultantGoal `json:"metas_individuais"`
}

// Gap calcula quanto falta para uma meta, nunca negativo.
func Gap(goal, achieved float64) float64 {
	if falta := goal - achieved; falta > 0 {
		return falta
	}
	return 0
}
