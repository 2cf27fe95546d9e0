package app

import (
	"strconv"
	"strings"
	"time"

	"github.com/dwikikusuma/tuslibros/internal/checkout/domain"
)

const cardNumberDigits = 16

// parseExpiration decodes MMYYYY into a month and a year.
func parseExpiration(s string) (time.Month, int, error) {
	if len(s) != 6 || !allDigits(s) {
		return 0, 0, ErrInvalidExpiration
	}

	month, _ := strconv.Atoi(s[0:2])
	year, _ := strconv.Atoi(s[2:6])
	if month < 1 || month > 12 {
		return 0, 0, ErrInvalidExpiration
	}

	return time.Month(month), year, nil
}

func validateCard(card domain.Card) error {
	if len(card.Number) != cardNumberDigits || !allDigits(card.Number) {
		return ErrInvalidCard
	}
	if strings.TrimSpace(card.Holder) == "" {
		return ErrInvalidCard
	}
	return nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
