package statement

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_ItauSignedColumn(t *testing.T) {
	input := strings.Join([]string{
		"data;lançamento;valor",
		"10/05/2024;PIX RECEBIDO JOAO;1.250,00",
		"11/05/2024;PAGTO FORNECEDOR;-588,74",
		"12/05/2024;TARIFA;0,00",
		"SALDO FINAL;;661,26",
	}, "\n")

	rows, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 2, "zero amounts and footer rows are skipped")

	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), rows[0].Data)
	assert.Equal(t, "PIX RECEBIDO JOAO", rows[0].Descricao)
	assert.Equal(t, int64(125000), rows[0].Valor)
	assert.True(t, rows[0].Entrada)

	assert.Equal(t, int64(58874), rows[1].Valor)
	assert.False(t, rows[1].Entrada)
}

func TestParser_Parse_BradescoSplitColumns(t *testing.T) {
	input := strings.Join([]string{
		"Extrato de: Conta Corrente",
		"",
		"Data;Histórico;Crédito (R$);Débito (R$)",
		"05/05/2024;TED RECEBIDA;2.000,00;",
		"06/05/2024;PAGTO BOLETO;;450,10",
	}, "\n")

	rows, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 2)

	assert.True(t, rows[0].Entrada)
	assert.Equal(t, int64(200000), rows[0].Valor)

	assert.False(t, rows[1].Entrada)
	assert.Equal(t, int64(45010), rows[1].Valor)
}

func TestParser_Parse_UnknownFormat(t *testing.T) {
	input := "foo;bar\n1;2\n"

	_, err := NewParser().Parse(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParser_Parse_HeaderOnly(t *testing.T) {
	input := "data;lançamento;valor\n"

	_, err := NewParser().Parse(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestParseValor(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1.234,56", 123456},
		{"-588,74", -58874},
		{"10,00", 1000},
		{"R$ 99,90", 9990},
		{"0,01", 1},
	}

	for _, tt := range tests {
		got, err := parseValor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseValor("abc")
	assert.Error(t, err)
}
