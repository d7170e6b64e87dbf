package format_test

import (
	"testing"

	"donation-dashboard-service/internal/domain"
	"donation-dashboard-service/internal/format"

	"github.com/stretchr/testify/assert"
)

func TestNumber_PtBR(t *testing.T) {
	testCases := []struct {
		value    float64
		decimals int
		expected string
	}{
		{0, 2, "0,00"},
		{150.5, 2, "150,50"},
		{1234.5, 2, "1.234,50"},
		{1234567.891, 2, "1.234.567,89"},
		{1000, 0, "1.000"},
		{-1234.5, 2, "-1.234,50"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, format.Number(tc.value, tc.decimals))
	}
}

func TestValor_UnitByTipo(t *testing.T) {
	assert.Equal(t, "12.5 kg", format.Valor(domain.TipoAlimentos, 12.5))
	assert.Equal(t, "R$ 150,50", format.Valor(domain.TipoFundos, 150.5))
	assert.Equal(t, "R$ 1.234,00", format.Valor(domain.TipoEvento, 1234))
}
