package utils

import "time"

// ParseDate aceita datas no formato ISO (2006-01-02). String vazia
// retorna a data zero, não um erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
