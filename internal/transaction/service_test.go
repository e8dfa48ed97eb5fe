package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gfmartins/revenda/internal/transaction"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(m *transaction.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: transaction.CreateParams{
				Valor:     150000,
				Data:      time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
				Tipo:      transaction.TipoEntrada,
				Descricao: "Venda avulsa",
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "ZeroAmount",
			params: transaction.CreateParams{
				Valor: 0,
				Tipo:  transaction.TipoSaida,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "RepoError",
			params: transaction.CreateParams{
				Valor: 500,
				Tipo:  transaction.TipoSaida,
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, transaction.TransacaoManual, got.TipoTransacao)
		})
	}
}

func TestService_Transfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	origem := uuid.New()
	destino := uuid.New()
	data := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		CreateTransfer(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saida, entrada *transaction.Transaction) error {
			saida.ID = uuid.New()
			entrada.ID = uuid.New()
			return nil
		})

	saida, entrada, err := svc.Transfer(context.Background(), transaction.TransferParams{
		ContaOrigemID:  origem,
		ContaDestinoID: destino,
		Valor:          25000,
		Data:           data,
		Descricao:      "Cobertura de caixa",
	})
	require.NoError(t, err)

	assert.Equal(t, transaction.TipoSaida, saida.Tipo)
	assert.Equal(t, transaction.TransacaoTransferenciaOut, saida.TipoTransacao)
	assert.Equal(t, transaction.TipoEntrada, entrada.Tipo)
	assert.Equal(t, transaction.TransacaoTransferenciaIn, entrada.TipoTransacao)

	require.NotNil(t, saida.TransferenciaID)
	require.NotNil(t, entrada.TransferenciaID)
	assert.Equal(t, *saida.TransferenciaID, *entrada.TransferenciaID)

	assert.Equal(t, int64(25000), saida.Valor)
	assert.Equal(t, int64(25000), entrada.Valor)
	assert.Equal(t, &origem, saida.ContaID)
	assert.Equal(t, &destino, entrada.ContaID)
}

func TestService_Transfer_SameAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	conta := uuid.New()

	_, _, err := svc.Transfer(context.Background(), transaction.TransferParams{
		ContaOrigemID:  conta,
		ContaDestinoID: conta,
		Valor:          1000,
	})
	assert.ErrorIs(t, err, transaction.ErrSameAccount)
}

func TestService_Withdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			return nil
		})

	got, err := svc.Withdrawal(context.Background(), transaction.WithdrawalParams{
		ParceiroID: uuid.New(),
		ContaID:    uuid.New(),
		Valor:      300000,
		Data:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Descricao:  "Retirada mensal",
	})
	require.NoError(t, err)

	assert.Equal(t, transaction.TipoSaida, got.Tipo)
	assert.Equal(t, transaction.TransacaoRetiradaSocio, got.TipoTransacao)
}

func TestService_OpeningBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			return nil
		})

	got, err := svc.OpeningBalance(context.Background(), uuid.New(), 1000000, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, transaction.TipoEntrada, got.Tipo)
	assert.Equal(t, transaction.TransacaoSaldoInicial, got.TipoTransacao)
}
