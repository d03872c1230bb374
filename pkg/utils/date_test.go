package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-03-20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), *date)
}

func TestParseDateEmpty(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, date.IsZero())
}

func TestParseDateMalformed(t *testing.T) {
	for _, raw := range []string{"20/03/2025", "2025-13-01", "ontem"} {
		_, err := ParseDate(raw)
		assert.Error(t, err, raw)
	}
}
