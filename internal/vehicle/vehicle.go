package vehicle

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status tracks a vehicle through the stock lifecycle.
type Status string

const (
	StatusEmEstoque Status = "EM_ESTOQUE"
	StatusReservado Status = "RESERVADO"
	StatusVendido   Status = "VENDIDO"
)

var ErrNotFound = errors.New("vehicle not found")

// Vehicle is a unit in the dealership stock. Custo and PrecoVenda are
// centavos.
type Vehicle struct {
	ID         uuid.UUID
	Placa      string
	Marca      string
	Modelo     string
	Ano        int
	Cor        string
	Km         int
	Custo      int64
	PrecoVenda int64
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}
