package domain

import (
	"testing"
	"time"
)

func TestCardExpiredAt(t *testing.T) {
	card := Card{ExpirationMonth: time.March, ExpirationYear: 2026}

	cases := []struct {
		now  time.Time
		want bool
	}{
		{time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2026, time.March, 31, 23, 59, 0, 0, time.UTC), false},
		{time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		if got := card.ExpiredAt(tc.now); got != tc.want {
			t.Fatalf("ExpiredAt(%s) = %v, want %v", tc.now.Format("2006-01"), got, tc.want)
		}
	}
}

func TestCardMasked(t *testing.T) {
	if got := (Card{Number: "4111111111111111"}).Masked(); got != "****1111" {
		t.Fatalf("got %q", got)
	}
	if got := (Card{Number: "12"}).Masked(); got != "****" {
		t.Fatalf("got %q", got)
	}
}
