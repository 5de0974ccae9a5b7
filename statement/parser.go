// Package statement parses raw credit-card statement text into normalized
// transactions. Statement text is inherently noisy; lines that do not
// look like purchases are dropped rather than reported as errors, and the
// Result keeps a per-line account of what was dropped and why.
package statement

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fincoach"
	"fincoach/classify"
	"fincoach/telemetry"
)

var (
	dateRe     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	merchantRe = regexp.MustCompile(`^\d{2}/\d{2}\s+(.+?)\s+[\d.-]+$`)
)

// Skip reasons recorded in Result.Skipped.
const (
	SkipMalformed   = "malformed line"
	SkipCredit      = "negative amount (credit or refund)"
	SkipNonPurchase = "payment, refund, or thank-you line"
)

// Skipped records one dropped statement line.
type Skipped struct {
	Line   int // 1-based position among non-blank lines of the input
	Text   string
	Reason string
}

// Result holds the accepted transactions (deduplicated, in statement
// order) and the lines that were dropped.
type Result struct {
	Transactions []fincoach.Transaction
	Skipped      []Skipped
}

// Parser converts statement text into canonical transactions.
// A zero-configured Parser stamps dates with the current calendar year
// and labels every transaction "Credit Card".
type Parser struct {
	year   int
	source string
}

// Option configures a Parser.
type Option func(*Parser)

// WithYear fixes the calendar year used to expand MM/DD dates.
// The default is the wall-clock year, which makes output time-dependent;
// tests should always pin the year.
func WithYear(year int) Option {
	return func(p *Parser) {
		p.year = year
	}
}

// WithSource overrides the source label stamped on every transaction.
func WithSource(source string) Option {
	return func(p *Parser) {
		p.source = source
	}
}

// New creates a Parser with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{
		year:   time.Now().Year(),
		source: "Credit Card",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse scans the statement text line by line. Each non-blank line must
// look like "MM/DD MERCHANT NAME AMOUNT" to be accepted; negative
// amounts and payment/refund lines are statement-level credits, not
// purchases, and are dropped. Accepted transactions are deduplicated by
// exact (date, merchant, amount), keeping the first occurrence.
func (p *Parser) Parse(ctx context.Context, raw string) *Result {
	timer := telemetry.FromContext(ctx).Start("statement.parse")
	defer timer.End()

	result := &Result{}
	seen := make(map[string]bool)

	lineNo := 0
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lineNo++

		tx, reason := p.parseLine(line)
		if reason != "" {
			result.Skipped = append(result.Skipped, Skipped{Line: lineNo, Text: line, Reason: reason})
			continue
		}

		key := tx.Date + "\x00" + tx.Merchant + "\x00" + tx.Amount.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		result.Transactions = append(result.Transactions, tx)
	}

	return result
}

// parseLine converts a single trimmed line into a transaction, or
// returns the reason it was dropped.
func (p *Parser) parseLine(line string) (fincoach.Transaction, string) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return fincoach.Transaction{}, SkipMalformed
	}

	date := fields[0]
	if !dateRe.MatchString(date) {
		return fincoach.Transaction{}, SkipMalformed
	}

	amount, err := decimal.NewFromString(fields[len(fields)-1])
	if err != nil {
		return fincoach.Transaction{}, SkipMalformed
	}
	if amount.IsNegative() {
		return fincoach.Transaction{}, SkipCredit
	}

	// Everything after the date token, checked before merchant
	// extraction so that "AUTOPAY PAYMENT - THANK YOU" lines are
	// dropped even when the amount would parse.
	rest := strings.ToLower(strings.TrimSpace(line[len(date):]))
	if strings.Contains(rest, "payment") || strings.Contains(rest, "refund") || strings.Contains(rest, "thank you") {
		return fincoach.Transaction{}, SkipNonPurchase
	}

	m := merchantRe.FindStringSubmatch(line)
	if m == nil {
		return fincoach.Transaction{}, SkipMalformed
	}

	merchant := classify.CleanMerchant(strings.TrimSpace(m[1]))
	category := classify.Classify(merchant)

	return fincoach.Transaction{
		Date:     p.expandDate(date),
		Amount:   amount,
		Merchant: merchant,
		Category: category,
		Source:   p.source,
		Memo:     classify.Memo(merchant, category),
	}, ""
}

// expandDate turns an MM/DD token into an ISO date in the parser's
// calendar year. Dates in any other shape pass through unchanged.
func (p *Parser) expandDate(date string) string {
	if !dateRe.MatchString(date) {
		return date
	}
	return fmt.Sprintf("%04d-%s-%s", p.year, date[:2], date[3:])
}
