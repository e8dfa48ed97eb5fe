package history

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/order"
	"github.com/gfmartins/revenda/internal/title"
	"github.com/gfmartins/revenda/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=history
type TransactionSource interface {
	List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

type TitleSource interface {
	List(ctx context.Context, filter title.ListFilter) ([]*title.Title, error)
}

type OrderResolver interface {
	Refs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]order.Ref, error)
}

// Service builds the unified financial feed out of realized transactions
// and unresolved titles. It only reads and projects; nothing here mutates.
type Service struct {
	transactions TransactionSource
	titles       TitleSource
	orders       OrderResolver
	now          func() time.Time
}

func NewService(transactions TransactionSource, titles TitleSource, orders OrderResolver) *Service {
	return &Service{
		transactions: transactions,
		titles:       titles,
		orders:       orders,
		now:          time.Now,
	}
}

// WithClock overrides the wall clock used to derive today's date.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List produces one reverse-chronological page mixing transactions and open
// titles. Date and direction narrowing are pushed to the source queries;
// status, origin and free-text filters are applied after mapping because
// they depend on derived values. Any source failure aborts the whole call.
func (s *Service) List(ctx context.Context, filter Filter) (*Page, error) {
	txs, err := s.fetchTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}

	titles, err := s.fetchTitles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetching titles: %w", err)
	}

	refs, err := s.resolveRefs(ctx, txs, titles)
	if err != nil {
		return nil, fmt.Errorf("resolving order refs: %w", err)
	}

	today := dateOnly(s.now())

	entries := make([]Entry, 0, len(txs)+len(titles))

	for _, tx := range txs {
		entries = append(entries, mapTransaction(tx, refs))
	}

	for _, t := range titles {
		entries = append(entries, mapTitle(t, refs, today))
	}

	entries = applyFilters(entries, filter)

	// Stable keeps transactions ahead of titles on equal dates, matching
	// the concatenation order above.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Data.After(entries[j].Data)
	})

	total := len(entries)
	page, pageSize := normalizePagination(filter)

	// Division plus remainder rather than the usual (total+pageSize-1)
	// ceiling trick: the export path asks for everything in one page with
	// the maximum page size, and the addition would wrap.
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	start := (page - 1) * pageSize
	if start < 0 || start > total {
		start = total
	}

	end := start + pageSize
	if end < start || end > total {
		end = total
	}

	return &Page{
		Entries:    entries[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// Totals computes the headline figures for the date window. The list
// filters (status, origin, text) deliberately do not apply here: these are
// period KPIs, not a summary of the filtered page.
func (s *Service) Totals(ctx context.Context, inicio, fim *time.Time) (*Totals, error) {
	txs, err := s.transactions.List(ctx, transaction.ListFilter{
		StartDate: inicio,
		EndDate:   endOfDay(fim),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}

	titles, err := s.titles.List(ctx, title.ListFilter{
		Statuses:  title.UnresolvedStatuses,
		StartDate: inicio,
		EndDate:   fim,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching titles: %w", err)
	}

	var totals Totals

	for _, tx := range txs {
		switch tx.Tipo {
		case transaction.TipoEntrada:
			totals.EntradasRealizadas += tx.Valor
		case transaction.TipoSaida:
			totals.SaidasRealizadas += tx.Valor
		}
	}

	for _, t := range titles {
		switch t.Tipo {
		case title.TipoPagar:
			totals.APagarPendente += t.ValorRestante()
		case title.TipoReceber:
			totals.AReceberPendente += t.ValorRestante()
		}
	}

	totals.SaldoPeriodo = (totals.EntradasRealizadas + totals.AReceberPendente) -
		(totals.SaidasRealizadas + totals.APagarPendente)

	return &totals, nil
}

func (s *Service) fetchTransactions(ctx context.Context, filter Filter) ([]*transaction.Transaction, error) {
	if filter.TipoMovimento != nil {
		switch *filter.TipoMovimento {
		case MovimentoAPagar, MovimentoAReceber:
			// Title-only kinds never match a transaction.
			return nil, nil
		}
	}

	txFilter := transaction.ListFilter{
		StartDate: filter.DataInicio,
		EndDate:   endOfDay(filter.DataFim),
	}

	if filter.TipoMovimento != nil {
		switch *filter.TipoMovimento {
		case MovimentoEntrada:
			tipo := transaction.TipoEntrada
			txFilter.Tipo = &tipo
		case MovimentoSaida:
			tipo := transaction.TipoSaida
			txFilter.Tipo = &tipo
		case MovimentoTransferencia:
			txFilter.TagContains = "TRANSFERENCIA"
		}
	}

	return s.transactions.List(ctx, txFilter)
}

func (s *Service) fetchTitles(ctx context.Context, filter Filter) ([]*title.Title, error) {
	if filter.TipoMovimento != nil {
		switch *filter.TipoMovimento {
		case MovimentoEntrada, MovimentoSaida, MovimentoTransferencia:
			// Transaction-only kinds never match a title.
			return nil, nil
		}
	}

	tFilter := title.ListFilter{
		Statuses:  title.UnresolvedStatuses,
		StartDate: filter.DataInicio,
		EndDate:   filter.DataFim,
	}

	if filter.TipoMovimento != nil {
		switch *filter.TipoMovimento {
		case MovimentoAPagar:
			tipo := title.TipoPagar
			tFilter.Tipo = &tipo
		case MovimentoAReceber:
			tipo := title.TipoReceber
			tFilter.Tipo = &tipo
		}
	}

	return s.titles.List(ctx, tFilter)
}

// resolveRefs batches every order id referenced by either source into one
// lookup, returning an immutable map the mappers receive as a parameter.
func (s *Service) resolveRefs(ctx context.Context, txs []*transaction.Transaction, titles []*title.Title) (map[uuid.UUID]order.Ref, error) {
	seen := make(map[uuid.UUID]struct{})

	var ids []uuid.UUID

	collect := func(id *uuid.UUID) {
		if id == nil {
			return
		}

		if _, ok := seen[*id]; ok {
			return
		}

		seen[*id] = struct{}{}
		ids = append(ids, *id)
	}

	for _, tx := range txs {
		collect(tx.PedidoID)
	}

	for _, t := range titles {
		collect(t.PedidoID)
	}

	if len(ids) == 0 {
		return map[uuid.UUID]order.Ref{}, nil
	}

	return s.orders.Refs(ctx, ids)
}

func applyFilters(entries []Entry, filter Filter) []Entry {
	busca := strings.ToLower(strings.TrimSpace(filter.Busca))

	out := entries[:0]

	for _, e := range entries {
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}

		if filter.Origem != nil && e.Origem != *filter.Origem {
			continue
		}

		if filter.TipoMovimento != nil && e.TipoMovimento != *filter.TipoMovimento {
			continue
		}

		if busca != "" && !matchesBusca(&e, busca) {
			continue
		}

		out = append(out, e)
	}

	return out
}

// matchesBusca is satisfied when any of description, partner name or order
// reference contains the term.
func matchesBusca(e *Entry, busca string) bool {
	return strings.Contains(strings.ToLower(e.Descricao), busca) ||
		strings.Contains(strings.ToLower(e.Parceiro), busca) ||
		strings.Contains(strings.ToLower(e.PedidoRef), busca)
}

func normalizePagination(filter Filter) (page, pageSize int) {
	page = filter.Page
	if page < 1 {
		page = 1
	}

	pageSize = filter.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	return page, pageSize
}

// endOfDay widens an inclusive date bound to cover timestamps within it.
func endOfDay(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}

	eod := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), d.Location())

	return &eod
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
