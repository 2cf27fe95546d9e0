package domain

import "time"

type Money struct {
	Currency string
	Amount   int64
}

type QuoteLine struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice Money
	LineTotal Money
}

type Quote struct {
	Lines []QuoteLine
	Total Money
}

// Card is built fresh for every checkout attempt and never stored.
type Card struct {
	Number          string
	ExpirationMonth time.Month
	ExpirationYear  int
	Holder          string
}

// ExpiredAt reports whether the card is past its expiration month at now.
// A card is usable through the last day of that month.
func (c Card) ExpiredAt(now time.Time) bool {
	current := now.Year()*12 + int(now.Month())
	expires := c.ExpirationYear*12 + int(c.ExpirationMonth)
	return current > expires
}

// Masked keeps only the last four digits.
func (c Card) Masked() string {
	if len(c.Number) < 4 {
		return "****"
	}
	return "****" + c.Number[len(c.Number)-4:]
}

type CheckoutRequest struct {
	CartID     string
	CardNumber string
	// Expiration is MMYYYY.
	Expiration string
	Holder     string
}

// CompletedSale is what checkout hands to the sale history.
type CompletedSale struct {
	Username      string
	TransactionID string
	Quote         Quote
}
