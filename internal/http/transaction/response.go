package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/transaction"
)

type transactionResponse struct {
	ID              uuid.UUID                 `json:"id"`
	Valor           int64                     `json:"valor"`
	Data            time.Time                 `json:"data"`
	Tipo            transaction.Tipo          `json:"tipo"`
	TipoTransacao   transaction.TipoTransacao `json:"tipo_transacao"`
	Descricao       string                    `json:"descricao"`
	TituloID        *uuid.UUID                `json:"titulo_id,omitempty"`
	ContaID         *uuid.UUID                `json:"conta_id,omitempty"`
	ContaNome       string                    `json:"conta_nome,omitempty"`
	ParceiroID      *uuid.UUID                `json:"parceiro_id,omitempty"`
	ParceiroNome    string                    `json:"parceiro_nome,omitempty"`
	TransferenciaID *uuid.UUID                `json:"transferencia_id,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:              tx.ID,
		Valor:           tx.Valor,
		Data:            tx.Data,
		Tipo:            tx.Tipo,
		TipoTransacao:   tx.TipoTransacao,
		Descricao:       tx.Descricao,
		TituloID:        tx.TituloID,
		ContaID:         tx.ContaID,
		ContaNome:       tx.ContaNome,
		ParceiroID:      tx.ParceiroID,
		ParceiroNome:    tx.ParceiroNome,
		TransferenciaID: tx.TransferenciaID,
		CreatedAt:       tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
