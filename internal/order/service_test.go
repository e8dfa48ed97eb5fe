package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gfmartins/revenda/internal/order"
	"github.com/gfmartins/revenda/internal/title"
	"github.com/gfmartins/revenda/internal/vehicle"
)

func TestService_Create_SaleInstallments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := order.NewMockRepository(ctrl)
	titles := order.NewMockTitleCreator(ctrl)
	vehicles := order.NewMockVehicleMarker(ctrl)
	svc := order.NewService(repo, titles, vehicles)

	veiculoID := uuid.New()
	parceiroID := uuid.New()
	data := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	primeiroVenc := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *order.Order) error {
			o.ID = uuid.New()
			o.Numero = "V-0001"
			return nil
		})

	var captured []title.CreateParams

	titles.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params []title.CreateParams) ([]*title.Title, error) {
			captured = params
			return make([]*title.Title, len(params)), nil
		})

	vehicles.EXPECT().UpdateStatus(gomock.Any(), veiculoID, vehicle.StatusVendido).Return(nil)

	// 100.00 over 3 installments: 33.33 + 33.33 + 33.34.
	o, err := svc.Create(context.Background(), order.CreateParams{
		Tipo:               order.TipoVenda,
		VeiculoID:          veiculoID,
		ParceiroID:         parceiroID,
		ValorTotal:         10000,
		Parcelas:           3,
		Data:               data,
		PrimeiroVencimento: primeiroVenc,
	})
	require.NoError(t, err)
	assert.Equal(t, "V-0001", o.Numero)

	require.Len(t, captured, 3)

	var sum int64

	for i, p := range captured {
		sum += p.ValorTotal

		assert.Equal(t, title.TipoReceber, p.Tipo)
		require.NotNil(t, p.PedidoID)
		assert.Equal(t, o.ID, *p.PedidoID)
		require.NotNil(t, p.Parcela)
		assert.Equal(t, i+1, *p.Parcela)
		assert.Equal(t, primeiroVenc.AddDate(0, 0, i*30), p.Vencimento)
	}

	assert.Equal(t, int64(10000), sum)
	assert.Equal(t, int64(3333), captured[0].ValorTotal)
	assert.Equal(t, int64(3334), captured[2].ValorTotal)
}

func TestService_Create_PurchaseGeneratesPayables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := order.NewMockRepository(ctrl)
	titles := order.NewMockTitleCreator(ctrl)
	vehicles := order.NewMockVehicleMarker(ctrl)
	svc := order.NewService(repo, titles, vehicles)

	veiculoID := uuid.New()

	repo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *order.Order) error {
			o.ID = uuid.New()
			o.Numero = "C-0007"
			return nil
		})

	titles.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params []title.CreateParams) ([]*title.Title, error) {
			require.Len(t, params, 1)
			assert.Equal(t, title.TipoPagar, params[0].Tipo)
			assert.Equal(t, int64(4500000), params[0].ValorTotal)
			return make([]*title.Title, 1), nil
		})

	vehicles.EXPECT().UpdateStatus(gomock.Any(), veiculoID, vehicle.StatusEmEstoque).Return(nil)

	_, err := svc.Create(context.Background(), order.CreateParams{
		Tipo:               order.TipoCompra,
		VeiculoID:          veiculoID,
		ParceiroID:         uuid.New(),
		ValorTotal:         4500000,
		Parcelas:           1,
		Data:               time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		PrimeiroVencimento: time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := order.NewService(
		order.NewMockRepository(ctrl),
		order.NewMockTitleCreator(ctrl),
		order.NewMockVehicleMarker(ctrl),
	)

	_, err := svc.Create(context.Background(), order.CreateParams{ValorTotal: 0, Parcelas: 1})
	assert.ErrorIs(t, err, order.ErrInvalidAmount)

	_, err = svc.Create(context.Background(), order.CreateParams{ValorTotal: 1000, Parcelas: 0})
	assert.ErrorIs(t, err, order.ErrInvalidParcelas)
}

func TestService_Refs_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := order.NewService(
		order.NewMockRepository(ctrl),
		order.NewMockTitleCreator(ctrl),
		order.NewMockVehicleMarker(ctrl),
	)

	refs, err := svc.Refs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, refs)
}
