package partner

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Tipo classifies the relationship with the dealership.
type Tipo string

const (
	TipoSocio      Tipo = "SOCIO"
	TipoCliente    Tipo = "CLIENTE"
	TipoFornecedor Tipo = "FORNECEDOR"
)

var ErrNotFound = errors.New("partner not found")

// Partner is a shareholder, customer or supplier. Participacao is the
// shareholder stake in basis points and only meaningful for SOCIO.
type Partner struct {
	ID           uuid.UUID
	Nome         string
	CpfCnpj      string
	Telefone     string
	Email        string
	Tipo         Tipo
	Participacao int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}
