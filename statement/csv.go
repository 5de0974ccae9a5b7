package statement

import "strings"

// Header is the canonical column order of the tabular interchange format.
const Header = "date,amount,merchant,category,source,memo"

// CSV serializes the accepted transactions as the canonical tabular
// format: the fixed header followed by one comma-joined row per
// transaction. Fields are not quoted or escaped; a merchant or memo
// containing a comma corrupts its row. That is a known limitation of the
// interchange format, kept deliberately because consumers parse it
// positionally.
func (r *Result) CSV() string {
	lines := make([]string, 0, len(r.Transactions)+1)
	lines = append(lines, Header)
	for _, tx := range r.Transactions {
		lines = append(lines, strings.Join([]string{
			tx.Date,
			tx.Amount.String(),
			tx.Merchant,
			string(tx.Category),
			tx.Source,
			tx.Memo,
		}, ","))
	}
	return strings.Join(lines, "\n")
}
