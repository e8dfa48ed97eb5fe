package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Natureza is the direction titles in this category flow.
type Natureza string

const (
	NaturezaEntrada Natureza = "ENTRADA"
	NaturezaSaida   Natureza = "SAIDA"
)

var ErrNotFound = errors.New("category not found")

type Category struct {
	ID        uuid.UUID
	Nome      string
	Natureza  Natureza
	CreatedAt time.Time
}
