package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/gfmartins/revenda/internal/encoding"
)

// Parser turns a bank CSV export into statement rows. The bank is not a
// parameter: the layout is auto-detected from the header, so the upload
// form does not need to ask which bank the file came from.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]Row, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("normalizing encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(records)
	if profile == nil {
		return nil, ErrUnknownFormat
	}

	rows := parseRows(profile, cols, records[headerIdx+1:])
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	return rows, nil
}

type colIndex map[string]int

// detectProfile scans for the first record whose cells contain every
// required column of some profile. Bank exports usually carry preamble
// lines before the real header, hence the scan instead of record zero.
func detectProfile(records [][]string) (*Profile, colIndex, int) {
	for idx, record := range records {
		cols := make(colIndex)

		for i, cell := range record {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, idx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts rows after the header. Lines that do not parse as a
// date (balance footers, section separators) are skipped, not errors.
func parseRows(p *Profile, cols colIndex, records [][]string) []Row {
	var rows []Row

	for _, record := range records {
		data, ok := parseData(p, record, cols[p.DateCol])
		if !ok {
			continue
		}

		desc := cellValue(record, cols[p.DescCol])
		if desc == "" {
			continue
		}

		valor, entrada, ok := extractValor(p, cols, record)
		if !ok {
			continue
		}

		rows = append(rows, Row{
			Data:      data,
			Descricao: desc,
			Valor:     valor,
			Entrada:   entrada,
		})
	}

	return rows
}

func parseData(p *Profile, record []string, idx int) (time.Time, bool) {
	s := cellValue(record, idx)
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(p.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func extractValor(p *Profile, cols colIndex, record []string) (int64, bool, bool) {
	switch p.AmountMode {
	case amountSigned:
		return signedValor(record, cols[p.AmountCol])
	case amountSplit:
		return splitValor(record, cols[p.CreditCol], cols[p.DebitCol])
	}

	return 0, false, false
}

func signedValor(record []string, idx int) (int64, bool, bool) {
	s := cellValue(record, idx)
	if s == "" {
		return 0, false, false
	}

	centavos, err := parseValor(s)
	if err != nil || centavos == 0 {
		return 0, false, false
	}

	if centavos < 0 {
		return -centavos, false, true
	}

	return centavos, true, true
}

func splitValor(record []string, creditIdx, debitIdx int) (int64, bool, bool) {
	if s := cellValue(record, creditIdx); s != "" {
		if centavos, err := parseValor(s); err == nil && centavos != 0 {
			return abs(centavos), true, true
		}
	}

	if s := cellValue(record, debitIdx); s != "" {
		if centavos, err := parseValor(s); err == nil && centavos != 0 {
			return abs(centavos), false, true
		}
	}

	return 0, false, false
}

func cellValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[idx])
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
