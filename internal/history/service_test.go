package history_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gfmartins/revenda/internal/history"
	"github.com/gfmartins/revenda/internal/order"
	"github.com/gfmartins/revenda/internal/title"
	"github.com/gfmartins/revenda/internal/transaction"
)

type fixture struct {
	transactions *history.MockTransactionSource
	titles       *history.MockTitleSource
	orders       *history.MockOrderResolver
	svc          *history.Service
}

func newFixture(t *testing.T, today time.Time) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		transactions: history.NewMockTransactionSource(ctrl),
		titles:       history.NewMockTitleSource(ctrl),
		orders:       history.NewMockOrderResolver(ctrl),
	}
	f.svc = history.NewService(f.transactions, f.titles, f.orders).
		WithClock(func() time.Time { return today })

	return f
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_List_MergesSourcesAndRecomputesOverdue(t *testing.T) {
	today := date(2024, 5, 20)
	f := newFixture(t, today)

	pedidoID := uuid.New()
	parceiroID := uuid.New()

	txs := []*transaction.Transaction{
		{
			ID:            uuid.New(),
			Valor:         100000,
			Data:          date(2024, 5, 10),
			Tipo:          transaction.TipoEntrada,
			TipoTransacao: transaction.TransacaoRecebimentoTitulo,
			Descricao:     "Entrada venda",
			ParceiroID:    &parceiroID,
			ParceiroNome:  "Joao Cliente",
			ContaNome:     "Conta Principal",
			PedidoID:      &pedidoID,
		},
	}

	titles := []*title.Title{
		{
			ID:           uuid.New(),
			Tipo:         title.TipoPagar,
			Status:       title.StatusParcial,
			ValorTotal:   50000,
			ValorPago:    20000,
			Emissao:      date(2024, 4, 5),
			Vencimento:   date(2024, 5, 5),
			ParceiroNome: "Oficina Silva",
		},
	}

	f.transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return(txs, nil)
	f.titles.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter title.ListFilter) ([]*title.Title, error) {
			assert.Equal(t, title.UnresolvedStatuses, filter.Statuses)
			return titles, nil
		})
	f.orders.EXPECT().
		Refs(gomock.Any(), []uuid.UUID{pedidoID}).
		Return(map[uuid.UUID]order.Ref{pedidoID: {Numero: "V-0042", Tipo: order.TipoVenda}}, nil)

	page, err := f.svc.List(context.Background(), history.Filter{})
	require.NoError(t, err)

	require.Len(t, page.Entries, 2)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)

	// Newest first: the 05-10 transaction ahead of the 05-05 title.
	tx := page.Entries[0]
	assert.Equal(t, history.FonteTransacao, tx.Fonte)
	assert.Equal(t, history.MovimentoEntrada, tx.TipoMovimento)
	assert.Equal(t, history.StatusRealizado, tx.Status)
	assert.Equal(t, history.OrigemVenda, tx.Origem)
	assert.Equal(t, "V-0042", tx.PedidoRef)
	assert.Equal(t, int64(100000), tx.ValorExibicao())

	tit := page.Entries[1]
	assert.Equal(t, history.FonteTitulo, tit.Fonte)
	assert.Equal(t, history.MovimentoAPagar, tit.TipoMovimento)
	assert.Equal(t, history.StatusAtrasado, tit.Status, "past due and unpaid displays as overdue")
	assert.Equal(t, int64(30000), tit.ValorRestante)
	assert.Equal(t, int64(30000), tit.ValorExibicao())
	require.NotNil(t, tit.Emissao)
	assert.Equal(t, date(2024, 4, 5), *tit.Emissao)
}

func TestService_List_TitleDueTodayIsNotOverdue(t *testing.T) {
	today := date(2024, 5, 20)
	f := newFixture(t, today)

	f.transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.titles.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*title.Title{
		{
			ID:         uuid.New(),
			Tipo:       title.TipoReceber,
			Status:     title.StatusPendente,
			ValorTotal: 10000,
			Vencimento: today,
		},
	}, nil)

	page, err := f.svc.List(context.Background(), history.Filter{})
	require.NoError(t, err)

	require.Len(t, page.Entries, 1)
	assert.Equal(t, history.StatusPendente, page.Entries[0].Status)
}

func TestService_List_MovementFilterSkipsTitleFetch(t *testing.T) {
	f := newFixture(t, date(2024, 5, 20))

	tipoEntrada := transaction.TipoEntrada

	f.transactions.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			require.NotNil(t, filter.Tipo)
			assert.Equal(t, tipoEntrada, *filter.Tipo)
			return nil, nil
		})

	movimento := history.MovimentoEntrada

	page, err := f.svc.List(context.Background(), history.Filter{TipoMovimento: &movimento})
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
}

func TestService_List_MovementFilterSkipsTransactionFetch(t *testing.T) {
	f := newFixture(t, date(2024, 5, 20))

	tipoPagar := title.TipoPagar

	f.titles.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter title.ListFilter) ([]*title.Title, error) {
			require.NotNil(t, filter.Tipo)
			assert.Equal(t, tipoPagar, *filter.Tipo)
			return nil, nil
		})

	movimento := history.MovimentoAPagar

	page, err := f.svc.List(context.Background(), history.Filter{TipoMovimento: &movimento})
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
}

func TestService_List_EndDateCoversWholeDay(t *testing.T) {
	f := newFixture(t, date(2024, 5, 20))

	fim := date(2024, 5, 15)

	f.transactions.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			require.NotNil(t, filter.EndDate)
			assert.Equal(t, 23, filter.EndDate.Hour())
			assert.Equal(t, 15, filter.EndDate.Day())
			return nil, nil
		})
	f.titles.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter title.ListFilter) ([]*title.Title, error) {
			require.NotNil(t, filter.EndDate)
			assert.Equal(t, fim, *filter.EndDate)
			return nil, nil
		})

	_, err := f.svc.List(context.Background(), history.Filter{DataFim: &fim})
	require.NoError(t, err)
}

func TestService_List_TextSearchMatchesOrderRef(t *testing.T) {
	f := newFixture(t, date(2024, 5, 20))

	pedidoID := uuid.New()

	f.transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*transaction.Transaction{
		{ID: uuid.New(), Valor: 100, Data: date(2024, 5, 1), Tipo: transaction.TipoEntrada, Descricao: "Sinal", PedidoID: &pedidoID},
		{ID: uuid.New(), Valor: 200, Data: date(2024, 5, 2), Tipo: transaction.TipoSaida, Descricao: "Combustivel"},
	}, nil)
	f.titles.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.orders.EXPECT().
		Refs(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]order.Ref{pedidoID: {Numero: "V-0042", Tipo: order.TipoVenda}}, nil)

	page, err := f.svc.List(context.Background(), history.Filter{Busca: "v-0042"})
	require.NoError(t, err)

	require.Len(t, page.Entries, 1)
	assert.Equal(t, "Sinal", page.Entries[0].Descricao)
	assert.Equal(t, 1, page.Total)
}

func TestService_List_StatusAndOriginFilters(t *testing.T) {
	f := newFixture(t, date(2024, 5, 20))

	f.transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*transaction.Transaction{
		{ID: uuid.New(), Valor: 100, Data: date(2024, 5, 1), Tipo: transaction.TipoSaida, TipoTransacao: transaction.TransacaoRetiradaSocio},
		{ID: uuid.New(), Valor: 200, Data: date(2024, 5, 2), Tipo: transaction.TipoEntrada, TipoTransacao: transaction.TransacaoManual},
	}, nil)
	f.titles.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

	origem := history.OrigemRetirada

	page, err := f.svc.List(context.Background(), history.Filter{Origem: &origem})
	require.NoError(t, err)

	require.Len(t, page.Entries, 1)
	assert.Equal(t, history.OrigemRetirada, page.Entries[0].Origem)
}

func TestService_List_Pagination(t *testing.T) {
	f := newFixture(t, date(2024, 5, 20))

	var txs []*transaction.Transaction
	for i := 0; i < 5; i++ {
		txs = append(txs, &transaction.Transaction{
			ID:    uuid.New(),
			Valor: 100,
			Data:  date(2024, 5, 1+i),
			Tipo:  transaction.TipoEntrada,
		})
	}

	f.transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return(txs, nil).Times(3)
	f.titles.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

	page, err := f.svc.List(context.Background(), history.Filter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, date(2024, 5, 3), page.Entries[0].Data)
	assert.Equal(t, date(2024, 5, 2), page.Entries[1].Data)

	// Past the last page comes back empty, not an error.
	page, err = f.svc.List(context.Background(), history.Filter{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
	assert.Equal(t, 5, page.Total)

	// Out-of-range values fall back to the defaults.
	page, err = f.svc.List(context.Background(), history.Filter{Page: -1, PageSize: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	require.Len(t, page.Entries, 5)
}

func TestService_List_HugePageSize(t *testing.T) {
	f := newFixture(t, date(2024, 5, 20))

	f.transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*transaction.Transaction{
		{ID: uuid.New(), Valor: 100, Data: date(2024, 5, 1), Tipo: transaction.TipoEntrada},
		{ID: uuid.New(), Valor: 200, Data: date(2024, 5, 2), Tipo: transaction.TipoSaida},
	}, nil).Times(2)
	f.titles.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	// The CSV export requests the whole feed with the maximum page size.
	page, err := f.svc.List(context.Background(), history.Filter{Page: 1, PageSize: math.MaxInt})
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.TotalPages)

	page, err = f.svc.List(context.Background(), history.Filter{Page: 2, PageSize: math.MaxInt})
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
	assert.Equal(t, 1, page.TotalPages)
}

func TestService_List_OrderHoldsAcrossPages(t *testing.T) {
	f := newFixture(t, date(2024, 6, 30))

	var txs []*transaction.Transaction
	for i := 0; i < 4; i++ {
		txs = append(txs, &transaction.Transaction{
			ID:    uuid.New(),
			Valor: 100,
			Data:  date(2024, 6, 2+2*i),
			Tipo:  transaction.TipoEntrada,
		})
	}

	titles := []*title.Title{
		{ID: uuid.New(), Tipo: title.TipoPagar, Status: title.StatusPendente, ValorTotal: 500, Vencimento: date(2024, 6, 3)},
		{ID: uuid.New(), Tipo: title.TipoReceber, Status: title.StatusPendente, ValorTotal: 700, Vencimento: date(2024, 6, 7)},
		{ID: uuid.New(), Tipo: title.TipoPagar, Status: title.StatusParcial, ValorTotal: 900, ValorPago: 100, Vencimento: date(2024, 6, 11)},
	}

	f.transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return(txs, nil).Times(3)
	f.titles.EXPECT().List(gomock.Any(), gomock.Any()).Return(titles, nil).Times(3)

	var all []history.Entry
	for page := 1; page <= 3; page++ {
		res, err := f.svc.List(context.Background(), history.Filter{Page: page, PageSize: 3})
		require.NoError(t, err)
		assert.Equal(t, 7, res.Total)
		assert.Equal(t, 3, res.TotalPages)
		all = append(all, res.Entries...)
	}

	// Concatenating the pages reproduces the full feed, newest first.
	require.Len(t, all, 7)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Data.After(all[i-1].Data), "entry %d dated after entry %d", i, i-1)
	}
}

func TestService_List_SourceErrorAborts(t *testing.T) {
	f := newFixture(t, date(2024, 5, 20))

	f.transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := f.svc.List(context.Background(), history.Filter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching transactions")
}

func TestService_Totals(t *testing.T) {
	f := newFixture(t, date(2024, 5, 20))

	f.transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*transaction.Transaction{
		{ID: uuid.New(), Valor: 100000, Data: date(2024, 5, 10), Tipo: transaction.TipoEntrada},
	}, nil)
	f.titles.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*title.Title{
		{ID: uuid.New(), Tipo: title.TipoPagar, Status: title.StatusParcial, ValorTotal: 50000, ValorPago: 20000, Vencimento: date(2024, 5, 5)},
	}, nil)

	inicio := date(2024, 5, 1)
	fim := date(2024, 5, 31)

	totals, err := f.svc.Totals(context.Background(), &inicio, &fim)
	require.NoError(t, err)

	assert.Equal(t, int64(100000), totals.EntradasRealizadas)
	assert.Equal(t, int64(0), totals.SaidasRealizadas)
	assert.Equal(t, int64(30000), totals.APagarPendente)
	assert.Equal(t, int64(0), totals.AReceberPendente)
	assert.Equal(t, int64(70000), totals.SaldoPeriodo)
}
