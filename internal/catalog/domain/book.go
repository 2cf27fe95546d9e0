package domain

import (
	"strings"
	"time"
)

// Money amounts are in minor units of Currency.
type Money struct {
	Currency string
	Amount   int64
}

// Book is a sellable title keyed by ISBN.
type Book struct {
	ISBN      string
	Title     string
	Author    string
	Price     Money
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Matches reports whether term appears in the title or the author,
// ignoring case. term must already be lower case.
func (b Book) Matches(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Title), term) ||
		strings.Contains(strings.ToLower(b.Author), term)
}
