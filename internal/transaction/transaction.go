package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Tipo is the direction of a realized money movement.
type Tipo string

const (
	TipoEntrada Tipo = "ENTRADA"
	TipoSaida   Tipo = "SAIDA"
)

// TipoTransacao tags the movement subtype. The history layer classifies
// origins from these tags, so new tags need a mapping there too.
type TipoTransacao string

const (
	TransacaoManual            TipoTransacao = "MANUAL"
	TransacaoSaldoInicial      TipoTransacao = "SALDO_INICIAL"
	TransacaoRetiradaSocio     TipoTransacao = "RETIRADA_SOCIO"
	TransacaoCreditoSocio      TipoTransacao = "CREDITO_SOCIO"
	TransacaoTransferenciaIn   TipoTransacao = "TRANSFERENCIA_ENTRADA"
	TransacaoTransferenciaOut  TipoTransacao = "TRANSFERENCIA_SAIDA"
	TransacaoPagamentoTitulo   TipoTransacao = "PAGAMENTO_TITULO"
	TransacaoRecebimentoTitulo TipoTransacao = "RECEBIMENTO_TITULO"
)

var (
	ErrNotFound      = errors.New("transaction not found")
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrSameAccount   = errors.New("transfer accounts must differ")
)

// Transaction is a realized ledger movement. Valor is in centavos and always
// positive; Tipo carries the sign. Transfer legs share TransferenciaID.
type Transaction struct {
	ID              uuid.UUID
	Valor           int64
	Data            time.Time
	Tipo            Tipo
	TipoTransacao   TipoTransacao
	Descricao       string
	TituloID        *uuid.UUID
	ContaID         *uuid.UUID
	ParceiroID      *uuid.UUID
	TransferenciaID *uuid.UUID

	// Joined display labels and the linked title's order, loaded by the store.
	ParceiroNome string
	ContaNome    string
	PedidoID     *uuid.UUID

	CreatedAt time.Time
	DeletedAt *time.Time
}
