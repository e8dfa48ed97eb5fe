package title_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gfmartins/revenda/internal/title"
	"github.com/gfmartins/revenda/internal/transaction"
)

func TestService_Pay(t *testing.T) {
	tituloID := uuid.New()
	contaID := uuid.New()

	type testCase struct {
		name       string
		existing   *title.Title
		valor      int64
		wantStatus title.Status
		wantTag    transaction.TipoTransacao
		wantTipo   transaction.Tipo
		wantErr    error
	}

	tests := []testCase{
		{
			name: "PartialPaymentOnPayable",
			existing: &title.Title{
				ID:         tituloID,
				Tipo:       title.TipoPagar,
				Status:     title.StatusPendente,
				ValorTotal: 50000,
				ValorPago:  0,
			},
			valor:      20000,
			wantStatus: title.StatusParcial,
			wantTag:    transaction.TransacaoPagamentoTitulo,
			wantTipo:   transaction.TipoSaida,
		},
		{
			name: "FullPaymentOnReceivable",
			existing: &title.Title{
				ID:         tituloID,
				Tipo:       title.TipoReceber,
				Status:     title.StatusParcial,
				ValorTotal: 50000,
				ValorPago:  30000,
			},
			valor:      20000,
			wantStatus: title.StatusPago,
			wantTag:    transaction.TransacaoRecebimentoTitulo,
			wantTipo:   transaction.TipoEntrada,
		},
		{
			name: "OverdueTitleStillPayable",
			existing: &title.Title{
				ID:         tituloID,
				Tipo:       title.TipoPagar,
				Status:     title.StatusAtrasado,
				ValorTotal: 10000,
				ValorPago:  0,
			},
			valor:      10000,
			wantStatus: title.StatusPago,
			wantTag:    transaction.TransacaoPagamentoTitulo,
			wantTipo:   transaction.TipoSaida,
		},
		{
			name: "Overpayment",
			existing: &title.Title{
				ID:         tituloID,
				Tipo:       title.TipoPagar,
				Status:     title.StatusParcial,
				ValorTotal: 50000,
				ValorPago:  40000,
			},
			valor:   20000,
			wantErr: title.ErrOverpayment,
		},
		{
			name: "AlreadyPaid",
			existing: &title.Title{
				ID:         tituloID,
				Tipo:       title.TipoPagar,
				Status:     title.StatusPago,
				ValorTotal: 50000,
				ValorPago:  50000,
			},
			valor:   100,
			wantErr: title.ErrAlreadySettled,
		},
		{
			name:    "ZeroAmount",
			valor:   0,
			wantErr: title.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := title.NewMockRepository(ctrl)
			txs := title.NewMockTransactionCreator(ctrl)
			svc := title.NewService(repo, txs)

			if tt.existing != nil {
				repo.EXPECT().GetTitle(gomock.Any(), tituloID).Return(tt.existing, nil)
			}

			if tt.wantErr == nil {
				txs.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
						assert.Equal(t, tt.valor, params.Valor)
						assert.Equal(t, tt.wantTag, params.TipoTransacao)
						assert.Equal(t, tt.wantTipo, params.Tipo)
						require.NotNil(t, params.TituloID)
						assert.Equal(t, tituloID, *params.TituloID)
						return &transaction.Transaction{ID: uuid.New()}, nil
					})

				repo.EXPECT().
					RegisterPayment(gomock.Any(), tituloID, tt.existing.ValorPago+tt.valor, tt.wantStatus).
					Return(nil)
			}

			got, err := svc.Pay(context.Background(), tituloID, title.PayParams{
				Valor:   tt.valor,
				Data:    time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
				ContaID: &contaID,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, int64(0), got.ValorTotal-got.ValorPago-got.ValorRestante())
		})
	}
}

func TestService_Cancel(t *testing.T) {
	tituloID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := title.NewMockRepository(ctrl)
		svc := title.NewService(repo, title.NewMockTransactionCreator(ctrl))

		repo.EXPECT().GetTitle(gomock.Any(), tituloID).Return(&title.Title{
			ID:         tituloID,
			Status:     title.StatusPendente,
			ValorTotal: 10000,
		}, nil)
		repo.EXPECT().
			UpdateTitle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *title.Title) error {
				assert.Equal(t, title.StatusCancelado, updated.Status)
				return nil
			})

		require.NoError(t, svc.Cancel(context.Background(), tituloID))
	})

	t.Run("HasPayments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := title.NewMockRepository(ctrl)
		svc := title.NewService(repo, title.NewMockTransactionCreator(ctrl))

		repo.EXPECT().GetTitle(gomock.Any(), tituloID).Return(&title.Title{
			ID:         tituloID,
			Status:     title.StatusParcial,
			ValorTotal: 10000,
			ValorPago:  5000,
		}, nil)

		assert.ErrorIs(t, svc.Cancel(context.Background(), tituloID), title.ErrHasPayments)
	})
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := title.NewMockRepository(ctrl)
	svc := title.NewService(repo, title.NewMockTransactionCreator(ctrl))

	repo.EXPECT().CreateTitles(gomock.Any(), gomock.Any()).Return(nil)

	parcela1, parcela2, total := 1, 2, 2
	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	ts, err := svc.CreateBatch(context.Background(), []title.CreateParams{
		{Tipo: title.TipoReceber, ValorTotal: 25000, Vencimento: due, Parcela: &parcela1, TotalParcelas: &total},
		{Tipo: title.TipoReceber, ValorTotal: 25000, Vencimento: due.AddDate(0, 0, 30), Parcela: &parcela2, TotalParcelas: &total},
	})
	require.NoError(t, err)
	require.Len(t, ts, 2)

	for _, created := range ts {
		assert.Equal(t, title.StatusPendente, created.Status)
		assert.Equal(t, int64(0), created.ValorPago)
	}
}
