package history

import (
	"encoding/csv"
	"fmt"
	"io"
)

var csvHeader = []string{
	"Data", "Tipo", "Descricao", "Valor", "Status", "Origem",
	"Parceiro", "Conta", "Pedido", "Parcela",
}

// WriteCSV streams the feed entries as a semicolon-separated CSV, the layout
// Brazilian spreadsheet software expects. Amounts use a decimal comma and the
// open balance for titles, matching what the feed displays.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range entries {
		e := &entries[i]

		record := []string{
			e.Data.Format("02/01/2006"),
			string(e.TipoMovimento),
			e.Descricao,
			formatValor(e.ValorExibicao()),
			string(e.Status),
			string(e.Origem),
			e.Parceiro,
			e.Conta,
			e.PedidoRef,
			e.Parcela,
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing entry %s: %w", e.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// formatValor renders centavos as a decimal-comma amount, e.g. 123456 -> "1234,56".
func formatValor(centavos int64) string {
	sign := ""
	if centavos < 0 {
		sign = "-"
		centavos = -centavos
	}

	return fmt.Sprintf("%s%d,%02d", sign, centavos/100, centavos%100)
}
