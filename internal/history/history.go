package history

import (
	"time"

	"github.com/google/uuid"
)

// TipoMovimento is the movement kind shown in the unified feed. Realized
// transactions map to the first three; open titles to the last two.
type TipoMovimento string

const (
	MovimentoEntrada       TipoMovimento = "ENTRADA"
	MovimentoSaida         TipoMovimento = "SAIDA"
	MovimentoTransferencia TipoMovimento = "TRANSFERENCIA"
	MovimentoAPagar        TipoMovimento = "A_PAGAR"
	MovimentoAReceber      TipoMovimento = "A_RECEBER"
)

// Origem classifies where a feed entry came from in business terms.
type Origem string

const (
	OrigemCompra         Origem = "COMPRA"
	OrigemVenda          Origem = "VENDA"
	OrigemDespesaVeiculo Origem = "DESPESA_VEICULO"
	OrigemTransferencia  Origem = "TRANSFERENCIA"
	OrigemRetirada       Origem = "RETIRADA"
	OrigemCredito        Origem = "CREDITO"
	OrigemSaldoInicial   Origem = "SALDO_INICIAL"
	OrigemManual         Origem = "MANUAL"
)

// Status is the feed-level lifecycle state. Transactions are always
// REALIZADO; titles carry their stored status except that overdue is
// recomputed against today at query time.
type Status string

const (
	StatusRealizado Status = "REALIZADO"
	StatusPendente  Status = "PENDENTE"
	StatusParcial   Status = "PARCIAL"
	StatusAtrasado  Status = "ATRASADO"
)

// Fonte discriminates which record kind produced the entry. Callers must
// branch on it to pick the right monetary field (see ValorExibicao).
type Fonte string

const (
	FonteTransacao Fonte = "TRANSACAO"
	FonteTitulo    Fonte = "TITULO"
)

// Entry is one row of the unified feed. It is derived on every query and
// never persisted. The shared fields are always set; Emissao, ValorPago,
// ValorRestante and Parcela are only meaningful when Fonte is TITULO, and
// TituloID only when a transaction settles a title.
type Entry struct {
	ID            string
	Data          time.Time
	TipoMovimento TipoMovimento
	Descricao     string
	Valor         int64
	Status        Status
	Origem        Origem
	Parceiro      string
	Conta         string
	PedidoRef     string
	PedidoID      *uuid.UUID
	Fonte         Fonte

	Emissao       *time.Time
	ValorPago     int64
	ValorRestante int64
	Parcela       string
	TituloID      *uuid.UUID
}

// ValorExibicao is the amount to rank and export: the open balance for a
// title, the raw amount for a transaction.
func (e *Entry) ValorExibicao() int64 {
	if e.Fonte == FonteTitulo {
		return e.ValorRestante
	}

	return e.Valor
}

// Filter selects and pages the unified feed. Dates are inclusive. Page
// defaults to 1 and PageSize to DefaultPageSize when out of range.
type Filter struct {
	DataInicio    *time.Time
	DataFim       *time.Time
	TipoMovimento *TipoMovimento
	Status        *Status
	Origem        *Origem
	Busca         string
	Page          int
	PageSize      int
}

const DefaultPageSize = 50

// Page is one slice of the unified feed plus pagination metadata. Total
// counts entries after filtering, before slicing.
type Page struct {
	Entries    []Entry
	Total      int
	Page       int
	TotalPages int
}

// Totals are the headline figures for a period. Pending amounts are open
// balances; SaldoPeriodo assumes every pending title settles in full.
type Totals struct {
	EntradasRealizadas int64
	SaidasRealizadas   int64
	APagarPendente     int64
	AReceberPendente   int64
	SaldoPeriodo       int64
}
