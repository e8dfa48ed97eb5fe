package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("expense not found")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// VehicleExpense is a cost attached to a vehicle in stock (repairs, docs,
// detailing). Each expense emits a payable title linked via DespesaID.
type VehicleExpense struct {
	ID          uuid.UUID
	VeiculoID   uuid.UUID
	Descricao   string
	Valor       int64
	Data        time.Time
	CategoriaID *uuid.UUID
	CreatedAt   time.Time
}
