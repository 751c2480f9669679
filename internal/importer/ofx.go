package importer

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finviz-dev/finviz/internal/category"
	"github.com/finviz-dev/finviz/internal/id"
	"github.com/finviz-dev/finviz/internal/model"
)

// OFXParser parses OFX bank and card statement exports.
//
// Extraction is deliberately tolerant: statements in the wild are tagged text
// with inconsistent casing and stray whitespace, so fields are pulled by
// pattern instead of a strict SGML/XML parse. A block missing its posted
// date or amount yields no transaction and no error.
type OFXParser struct{}

// ofxDateLayout is the 8-digit date carried by DTASOF and DTPOSTED.
const ofxDateLayout = "20060102"

// unknownMemo substitutes a missing or empty MEMO field.
const unknownMemo = "Unknown"

var (
	asOfPattern   = regexp.MustCompile(`(?i)<DTASOF>(\d{8})`)
	blockPattern  = regexp.MustCompile(`(?is)<STMTTRN>(.*?)</STMTTRN>`)
	postedPattern = regexp.MustCompile(`(?i)<DTPOSTED>(\d{8})`)
	memoPattern   = regexp.MustCompile(`(?i)<MEMO>([^<]+)`)
	amountPattern = regexp.MustCompile(`(?i)<TRNAMT>([^<]+)`)
	ratePattern   = regexp.MustCompile(`(?i)<CURRATE>([^<]+)`)
)

// rawRecord holds one transaction block's field values before normalization.
type rawRecord struct {
	postedDigits string // 8-digit YYYYMMDD
	memo         string
	amountText   string // decimal text, comma already normalized to dot
	rateText     string // optional currency rate, same normalization
}

// Format returns the parser name.
func (p *OFXParser) Format() string { return "ofx" }

// Parse reads an OFX document and returns the transactions it could extract.
// The statement's as-of date, when present, is attached to every transaction
// as the reference date.
func (p *OFXParser) Parse(r io.Reader) ([]model.Transaction, ParseStats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("reading statement: %w", err)
	}
	content := string(data)

	reference := extractReference(content)

	var txns []model.Transaction
	var stats ParseStats
	for _, match := range blockPattern.FindAllStringSubmatch(content, -1) {
		raw, ok := extractRecord(match[1])
		if !ok {
			stats.Dropped++
			continue
		}
		txn, ok := normalize(raw, reference)
		if !ok {
			stats.Dropped++
			continue
		}
		txns = append(txns, txn)
		stats.Records++
	}
	return txns, stats, nil
}

// extractReference finds the statement's as-of date, or nil.
func extractReference(content string) *time.Time {
	m := asOfPattern.FindStringSubmatch(content)
	if m == nil {
		return nil
	}
	ref, err := time.Parse(ofxDateLayout, m[1])
	if err != nil {
		return nil
	}
	return &ref
}

// extractRecord pulls raw field values out of one STMTTRN block. Returns
// false when the block is missing its posted date or amount.
func extractRecord(block string) (rawRecord, bool) {
	posted := postedPattern.FindStringSubmatch(block)
	amount := amountPattern.FindStringSubmatch(block)
	if posted == nil || amount == nil {
		return rawRecord{}, false
	}

	memo := unknownMemo
	if m := memoPattern.FindStringSubmatch(block); m != nil {
		if trimmed := strings.TrimSpace(m[1]); trimmed != "" {
			memo = trimmed
		}
	}

	rec := rawRecord{
		postedDigits: posted[1],
		memo:         memo,
		amountText:   normalizeDecimalText(amount[1]),
	}
	if m := ratePattern.FindStringSubmatch(block); m != nil {
		rec.rateText = normalizeDecimalText(m[1])
	}
	return rec, true
}

// normalizeDecimalText trims a raw decimal field and normalizes a comma
// decimal separator to a dot.
func normalizeDecimalText(s string) string {
	return strings.Replace(strings.TrimSpace(s), ",", ".", 1)
}

// normalize converts a raw record into a canonical transaction. Returns
// false when the date or a decimal field does not parse; the caller drops
// the record and moves on.
func normalize(rec rawRecord, reference *time.Time) (model.Transaction, bool) {
	date, err := time.Parse(ofxDateLayout, rec.postedDigits)
	if err != nil {
		return model.Transaction{}, false
	}

	amount, err := decimal.NewFromString(rec.amountText)
	if err != nil {
		return model.Transaction{}, false
	}

	if rec.rateText != "" {
		rate, err := decimal.NewFromString(rec.rateText)
		if err != nil {
			return model.Transaction{}, false
		}
		// Foreign-currency amounts are converted and rounded to cents,
		// half away from zero.
		amount = amount.Mul(rate).Round(2)
	}

	return model.Transaction{
		ID:            id.Transaction(date.Format(model.DateLayout), rec.memo, amount.String()),
		Date:          date,
		Description:   rec.memo,
		Amount:        amount,
		ReferenceDate: reference,
		Category:      category.Classify(rec.memo),
	}, true
}
