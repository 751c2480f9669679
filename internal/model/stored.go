package model

// DateLayout is the calendar-day format used in the persisted store.
const DateLayout = "2006-01-02"

// StoredTransaction is the on-disk shape of a transaction. Field names match
// the statement export contract (descricao/valor/referencia); category and
// income flags are derived at load time and never persisted, so classifier
// changes reclassify all history without a migration.
type StoredTransaction struct {
	Date       string  `json:"date"`
	Descricao  string  `json:"descricao"`
	Valor      string  `json:"valor"`
	Referencia *string `json:"referencia"`
}

// Stored returns the persisted shape of a transaction.
func (t Transaction) Stored() StoredTransaction {
	var ref *string
	if t.ReferenceDate != nil {
		s := t.ReferenceDate.Format(DateLayout)
		ref = &s
	}
	return StoredTransaction{
		Date:       t.Date.Format(DateLayout),
		Descricao:  t.Description,
		Valor:      t.Amount.String(),
		Referencia: ref,
	}
}
