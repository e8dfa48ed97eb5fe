// Package statement imports bank statement CSV exports. Each upload is
// parsed into candidate ledger entries, enriched with learned description
// suggestions, and only turned into transactions when the user confirms.
package statement

import (
	"errors"
	"time"
)

var (
	ErrUnknownFormat = errors.New("no known bank layout matches the file")
	ErrEmptyFile     = errors.New("file has no statement rows")
)

// Row is one parsed statement line. Valor is centavos and always positive;
// Entrada carries the direction. Sugestao is filled by the matching layer
// when a learned description applies.
type Row struct {
	Data      time.Time
	Descricao string
	Valor     int64
	Entrada   bool
	Sugestao  string
}
