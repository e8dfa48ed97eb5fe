package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/order"
	"github.com/gfmartins/revenda/internal/title"
	"github.com/gfmartins/revenda/internal/transaction"
)

// mapTransaction projects a realized transaction into the unified shape.
// The refs map is read-only; both mappers take it as an explicit parameter
// so each is independently testable.
func mapTransaction(tx *transaction.Transaction, refs map[uuid.UUID]order.Ref) Entry {
	e := Entry{
		ID:            "tx_" + tx.ID.String(),
		Data:          tx.Data,
		TipoMovimento: transactionMovement(tx),
		Descricao:     tx.Descricao,
		Valor:         tx.Valor,
		Status:        StatusRealizado,
		Origem:        classifyTransaction(tx, refs),
		Parceiro:      tx.ParceiroNome,
		Conta:         tx.ContaNome,
		Fonte:         FonteTransacao,
		TituloID:      tx.TituloID,
	}

	if tx.PedidoID != nil {
		if ref, ok := refs[*tx.PedidoID]; ok {
			e.PedidoRef = ref.Numero
			e.PedidoID = tx.PedidoID
		}
	}

	return e
}

// mapTitle projects an unresolved title into the unified shape. Overdue is
// derived from today, not from the stored status: a title due before today
// and not fully paid displays as ATRASADO whatever the row says.
func mapTitle(t *title.Title, refs map[uuid.UUID]order.Ref, today time.Time) Entry {
	emissao := t.Emissao

	e := Entry{
		ID:            "tit_" + t.ID.String(),
		Data:          t.Vencimento,
		TipoMovimento: titleMovement(t),
		Descricao:     titleDescription(t),
		Valor:         t.ValorTotal,
		Status:        titleStatus(t, today),
		Origem:        classifyTitle(t, refs),
		Parceiro:      t.ParceiroNome,
		Conta:         t.CategoriaNome,
		Fonte:         FonteTitulo,
		Emissao:       &emissao,
		ValorPago:     t.ValorPago,
		ValorRestante: t.ValorRestante(),
	}

	if t.Parcela != nil && t.TotalParcelas != nil {
		e.Parcela = fmt.Sprintf("%d/%d", *t.Parcela, *t.TotalParcelas)
	}

	if t.PedidoID != nil {
		if ref, ok := refs[*t.PedidoID]; ok {
			e.PedidoRef = ref.Numero
			e.PedidoID = t.PedidoID
		}
	}

	return e
}

func transactionMovement(tx *transaction.Transaction) TipoMovimento {
	if strings.Contains(string(tx.TipoTransacao), "TRANSFERENCIA") {
		return MovimentoTransferencia
	}

	if tx.Tipo == transaction.TipoEntrada {
		return MovimentoEntrada
	}

	return MovimentoSaida
}

func titleMovement(t *title.Title) TipoMovimento {
	if t.Tipo == title.TipoPagar {
		return MovimentoAPagar
	}

	return MovimentoAReceber
}

func titleStatus(t *title.Title, today time.Time) Status {
	if t.Status == title.StatusAtrasado {
		return StatusAtrasado
	}

	if t.Vencimento.Before(today) && t.ValorPago < t.ValorTotal {
		return StatusAtrasado
	}

	if t.Status == title.StatusParcial {
		return StatusParcial
	}

	return StatusPendente
}

// classifyTransaction applies the origin rules in priority order: explicit
// tags first, then the linked title's order, then MANUAL.
func classifyTransaction(tx *transaction.Transaction, refs map[uuid.UUID]order.Ref) Origem {
	switch tx.TipoTransacao {
	case transaction.TransacaoSaldoInicial:
		return OrigemSaldoInicial
	case transaction.TransacaoRetiradaSocio:
		return OrigemRetirada
	case transaction.TransacaoCreditoSocio:
		return OrigemCredito
	}

	if strings.Contains(string(tx.TipoTransacao), "TRANSFERENCIA") {
		return OrigemTransferencia
	}

	if tx.PedidoID != nil {
		if ref, ok := refs[*tx.PedidoID]; ok {
			return orderOrigin(ref)
		}
	}

	return OrigemManual
}

func classifyTitle(t *title.Title, refs map[uuid.UUID]order.Ref) Origem {
	if t.PedidoID != nil {
		if ref, ok := refs[*t.PedidoID]; ok {
			return orderOrigin(ref)
		}
	}

	if t.DespesaID != nil {
		return OrigemDespesaVeiculo
	}

	return OrigemManual
}

func orderOrigin(ref order.Ref) Origem {
	if ref.Tipo == order.TipoCompra {
		return OrigemCompra
	}

	return OrigemVenda
}

func titleDescription(t *title.Title) string {
	verb := "Titulo a pagar"
	if t.Tipo == title.TipoReceber {
		verb = "Titulo a receber"
	}

	if t.ParceiroNome != "" {
		return verb + " - " + t.ParceiroNome
	}

	return verb
}
