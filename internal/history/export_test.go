package history_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfmartins/revenda/internal/history"
)

func TestWriteCSV(t *testing.T) {
	emissao := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)

	entries := []history.Entry{
		{
			ID:            "tx_1",
			Data:          time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			TipoMovimento: history.MovimentoEntrada,
			Descricao:     "Entrada venda",
			Valor:         100000,
			Status:        history.StatusRealizado,
			Origem:        history.OrigemVenda,
			Parceiro:      "Joao Cliente",
			Conta:         "Conta Principal",
			PedidoRef:     "V-0042",
			Fonte:         history.FonteTransacao,
		},
		{
			ID:            "tit_1",
			Data:          time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC),
			TipoMovimento: history.MovimentoAPagar,
			Descricao:     "Titulo a pagar - Oficina Silva",
			Valor:         50000,
			Status:        history.StatusAtrasado,
			Origem:        history.OrigemDespesaVeiculo,
			Parceiro:      "Oficina Silva",
			Fonte:         history.FonteTitulo,
			Emissao:       &emissao,
			ValorPago:     20000,
			ValorRestante: 30000,
			Parcela:       "1/2",
		},
	}

	var buf bytes.Buffer

	require.NoError(t, history.WriteCSV(&buf, entries))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Data;Tipo;Descricao;Valor;Status;Origem;Parceiro;Conta;Pedido;Parcela", lines[0])
	assert.Equal(t, "10/05/2024;ENTRADA;Entrada venda;1000,00;REALIZADO;VENDA;Joao Cliente;Conta Principal;V-0042;", lines[1])

	// Titles export their open balance, not the face value.
	assert.Equal(t, "05/05/2024;A_PAGAR;Titulo a pagar - Oficina Silva;300,00;ATRASADO;DESPESA_VEICULO;Oficina Silva;;;1/2", lines[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, history.WriteCSV(&buf, nil))
	assert.Equal(t, "Data;Tipo;Descricao;Valor;Status;Origem;Parceiro;Conta;Pedido;Parcela\n", buf.String())
}
