package statement_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gfmartins/revenda/internal/statement"
	"github.com/gfmartins/revenda/internal/transaction"
)

func TestService_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	suggestions := statement.NewMockSuggester(ctrl)
	svc := statement.NewService(suggestions, statement.NewMockTransactionCreator(ctrl))

	input := strings.Join([]string{
		"data;lançamento;valor",
		"10/05/2024;PIX RECEBIDO JOAO SILVA;1.000,00",
		"11/05/2024;TARIFA BANCARIA;-25,00",
	}, "\n")

	suggestions.EXPECT().Suggest(gomock.Any(), "PIX RECEBIDO JOAO SILVA").Return("Sinal venda Gol", nil)
	suggestions.EXPECT().Suggest(gomock.Any(), "TARIFA BANCARIA").Return("", nil)

	rows, err := svc.Preview(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Sinal venda Gol", rows[0].Sugestao)
	assert.Empty(t, rows[1].Sugestao)
}

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := statement.NewMockTransactionCreator(ctrl)
	svc := statement.NewService(statement.NewMockSuggester(ctrl), creator)

	contaID := uuid.New()
	data := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	var captured []transaction.CreateParams

	creator.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
			captured = append(captured, params)
			return &transaction.Transaction{ID: uuid.New()}, nil
		})

	created, err := svc.Import(context.Background(), contaID, []statement.Row{
		{Data: data, Descricao: "Sinal venda Gol", Valor: 100000, Entrada: true},
		{Data: data, Descricao: "Tarifa", Valor: 2500, Entrada: false},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)

	require.Len(t, captured, 2)
	assert.Equal(t, transaction.TipoEntrada, captured[0].Tipo)
	require.NotNil(t, captured[0].ContaID)
	assert.Equal(t, contaID, *captured[0].ContaID)
	assert.Equal(t, transaction.TipoSaida, captured[1].Tipo)
}

func TestService_Import_StopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := statement.NewMockTransactionCreator(ctrl)
	svc := statement.NewService(statement.NewMockSuggester(ctrl), creator)

	creator.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	created, err := svc.Import(context.Background(), uuid.New(), []statement.Row{
		{Descricao: "a", Valor: 100},
		{Descricao: "b", Valor: 200},
	})
	require.Error(t, err)
	assert.Empty(t, created)
}
