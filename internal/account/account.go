package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("account not found")

// Account is a bank account held by the dealership. Balances are not stored;
// they derive from the ledger.
type Account struct {
	ID        uuid.UUID
	Nome      string
	Banco     string
	Agencia   string
	Numero    string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
