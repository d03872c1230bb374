package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterFromQuery(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/v1/reports/proposals?usuario=Maria&data_ini=2025-01-01&data_fim=2025-01-31&cpf=123&pagina=3", nil)

	filter := filterFromQuery(r)

	assert.Equal(t, "Maria", filter.Consultant)
	assert.Equal(t, "2025-01-01", filter.StartDate)
	assert.Equal(t, "2025-01-31", filter.EndDate)
	assert.Equal(t, "123", filter.CPF)
	assert.Equal(t, 3, filter.Page)
}

func TestFilterFromQueryDropsMalformedDates(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/v1/reports/proposals?data_ini=31%2F01%2F2025&data_fim=2025-01-31", nil)

	filter := filterFromQuery(r)

	// Data malformada é descartada como se não tivesse sido enviada.
	assert.Empty(t, filter.StartDate)
	assert.Equal(t, "2025-01-31", filter.EndDate)
}

func TestFilterFromQueryDefaultsPage(t *testing.T) {
	for _, raw := range []string{"", "0", "-2", "abc"} {
		r := httptest.NewRequest("GET", "/v1/reports/proposals?pagina="+raw, nil)
		assert.Equal(t, 1, filterFromQuery(r).Page)
	}
}
