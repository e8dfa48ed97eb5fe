package statement

// amountMode selects how a layout carries the amount.
type amountMode int

const (
	// amountSigned means one column whose sign carries the direction.
	amountSigned amountMode = iota
	// amountSplit means separate credit and debit columns.
	amountSplit
)

// Profile describes the column layout of one bank's CSV export. Supporting
// another bank is adding a Profile here; the parser auto-detects which one
// matches the uploaded header.
type Profile struct {
	Name       string
	DateCol    string
	DateLayout string
	DescCol    string
	AmountMode amountMode
	AmountCol  string
	CreditCol  string
	DebitCol   string
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSigned:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.CreditCol, p.DebitCol)
	}

	return cols
}

// profiles is tried in order; more specific layouts come first so a file
// with both split and signed columns matches the split one.
var profiles = []Profile{
	{
		Name:       "bradesco",
		DateCol:    "Data",
		DateLayout: "02/01/2006",
		DescCol:    "Histórico",
		AmountMode: amountSplit,
		CreditCol:  "Crédito (R$)",
		DebitCol:   "Débito (R$)",
	},
	{
		Name:       "itau",
		DateCol:    "data",
		DateLayout: "02/01/2006",
		DescCol:    "lançamento",
		AmountMode: amountSigned,
		AmountCol:  "valor",
	},
	{
		Name:       "bb",
		DateCol:    "Data",
		DateLayout: "02/01/2006",
		DescCol:    "Histórico",
		AmountMode: amountSigned,
		AmountCol:  "Valor",
	},
}
