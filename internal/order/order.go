package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Tipo distinguishes purchases from sales. It decides the direction of the
// generated titles and the numero prefix.
type Tipo string

const (
	TipoCompra Tipo = "COMPRA"
	TipoVenda  Tipo = "VENDA"
)

var (
	ErrNotFound        = errors.New("order not found")
	ErrInvalidAmount   = errors.New("order total must be positive")
	ErrInvalidParcelas = errors.New("installment count must be at least 1")
)

// Order is a purchase or sale of a vehicle. Numero is the human-facing
// reference (C-0001 / V-0001), assigned by the store.
type Order struct {
	ID         uuid.UUID
	Numero     string
	Tipo       Tipo
	VeiculoID  uuid.UUID
	ParceiroID uuid.UUID
	ValorTotal int64
	Parcelas   int
	Data       time.Time

	// Joined display labels, loaded by the store.
	ParceiroNome string
	VeiculoNome  string

	CreatedAt time.Time
}

// Ref is the resolved display reference of an order, consumed by the
// history layer's origin classification.
type Ref struct {
	Numero string
	Tipo   Tipo
}
