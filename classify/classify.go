// Package classify maps free-text merchant strings onto the fixed
// spending taxonomy via an ordered substring rule table, and derives the
// cleaned merchant name and memo annotation used by the statement parser.
package classify

import (
	"regexp"
	"strings"

	"fincoach"
)

// Classify returns the first category whose keyword set matches the
// merchant text, case-insensitively. It is total: unmatched input
// classifies as Other.
func Classify(merchant string) fincoach.Category {
	lower := strings.ToLower(merchant)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return fincoach.Other
}

var (
	storeNumberRe = regexp.MustCompile(`#\d+`)
	phoneRe       = regexp.MustCompile(`\d{3}-\d{3}-\d{4}`)
	stateRe       = regexp.MustCompile(`\b[A-Z]{2}\b`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// CleanMerchant strips statement noise from a merchant string: "#1234"
// store numbers, NNN-NNN-NNNN phone numbers, free-standing two-letter
// state codes, and redundant whitespace.
func CleanMerchant(merchant string) string {
	s := storeNumberRe.ReplaceAllString(merchant, "")
	s = phoneRe.ReplaceAllString(s, "")
	s = stateRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

var memos = map[fincoach.Category]string{
	fincoach.Gas:           "Fuel refill",
	fincoach.Coffee:        "Coffee purchase",
	fincoach.FoodDelivery:  "Food delivery",
	fincoach.Groceries:     "Grocery shopping",
	fincoach.Subscription:  "Monthly plan",
	fincoach.Entertainment: "Entertainment",
	fincoach.Dining:        "Dining out",
	fincoach.Shopping:      "Shopping",
	fincoach.Electronics:   "Electronics purchase",
	fincoach.Clothing:      "Clothing purchase",
}

// Memo synthesizes a short annotation for a classified merchant. Three
// merchant-specific phrasings take precedence over the per-category
// defaults; anything else falls back to the lower-cased category name.
func Memo(merchant string, category fincoach.Category) string {
	lower := strings.ToLower(merchant)

	switch {
	case category == fincoach.Transportation && strings.Contains(lower, "ezpass"):
		return "Toll payment"
	case category == fincoach.Utilities && strings.Contains(lower, "spectrum"):
		return "Internet bill"
	case category == fincoach.Fees && strings.Contains(lower, "interest"):
		return "Interest fee"
	}

	if memo, ok := memos[category]; ok {
		return memo
	}
	return strings.ToLower(string(category))
}
