package title

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Tipo is the direction of a title: money the dealership owes or is owed.
type Tipo string

const (
	TipoPagar   Tipo = "PAGAR"
	TipoReceber Tipo = "RECEBER"
)

// Status is the stored lifecycle state. ATRASADO may also be derived at
// query time by the history layer; the stored field is not rewritten.
type Status string

const (
	StatusPendente  Status = "PENDENTE"
	StatusParcial   Status = "PARCIAL"
	StatusPago      Status = "PAGO"
	StatusAtrasado  Status = "ATRASADO"
	StatusCancelado Status = "CANCELADO"
)

// UnresolvedStatuses are the states in which a title still owes or is owed
// money and therefore shows up in the pending views.
var UnresolvedStatuses = []Status{StatusPendente, StatusParcial, StatusAtrasado}

var (
	ErrNotFound       = errors.New("title not found")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrOverpayment    = errors.New("payment exceeds remaining balance")
	ErrAlreadySettled = errors.New("title already settled or cancelled")
	ErrHasPayments    = errors.New("title has registered payments")
)

// Title is a payable or receivable. Amounts are centavos;
// 0 <= ValorPago <= ValorTotal holds at all times.
type Title struct {
	ID            uuid.UUID
	Tipo          Tipo
	Status        Status
	ValorTotal    int64
	ValorPago     int64
	Emissao       time.Time
	Vencimento    time.Time
	Parcela       *int
	TotalParcelas *int
	PedidoID      *uuid.UUID
	DespesaID     *uuid.UUID
	ParceiroID    *uuid.UUID
	CategoriaID   *uuid.UUID

	// Joined display labels, loaded by the store.
	ParceiroNome  string
	CategoriaNome string

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ValorRestante is the open balance of the title.
func (t *Title) ValorRestante() int64 {
	return t.ValorTotal - t.ValorPago
}
