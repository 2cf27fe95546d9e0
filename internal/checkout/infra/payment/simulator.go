package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/dwikikusuma/tuslibros/internal/checkout/domain"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrCreditLimit       = errors.New("credit limit exceeded")
	ErrStolenCard        = errors.New("card reported stolen")
)

var (
	visaPattern       = regexp.MustCompile(`^4`)
	mastercardPattern = regexp.MustCompile(`^(5[1-5]|2[2-7][2-9][0-9])`)
)

// Simulator stands in for a merchant processor. It approves every debit up
// to CreditLimit (zero means unlimited) and declines cards listed as stolen.
type Simulator struct {
	CreditLimit int64

	stolen  map[string]struct{}
	tracer  trace.Tracer
	debits  metric.Int64Counter
	charged metric.Int64Counter
	log     *slog.Logger
	newID   func() string
}

func NewSimulator(log *slog.Logger, creditLimit int64, stolenCards ...string) *Simulator {
	if log == nil {
		log = slog.Default()
	}
	stolen := make(map[string]struct{}, len(stolenCards))
	for _, n := range stolenCards {
		stolen[n] = struct{}{}
	}
	meter := otel.Meter("tuslibros/payment")
	debits, err := meter.Int64Counter("payment.debits",
		metric.WithDescription("Debit attempts by outcome"))
	if err != nil {
		log.Warn("payment.debits counter unavailable", slog.Any("err", err))
		debits = noop.Int64Counter{}
	}
	charged, err := meter.Int64Counter("payment.charged",
		metric.WithDescription("Amount approved, in minor units"))
	if err != nil {
		log.Warn("payment.charged counter unavailable", slog.Any("err", err))
		charged = noop.Int64Counter{}
	}

	return &Simulator{
		CreditLimit: creditLimit,
		stolen:      stolen,
		tracer:      otel.Tracer("tuslibros/payment"),
		debits:      debits,
		charged:     charged,
		log:         log,
		newID:       uuid.NewString,
	}
}

func (p *Simulator) Debit(ctx context.Context, amount domain.Money, card domain.Card) (string, error) {
	ctx, span := p.tracer.Start(ctx, "Debit")
	defer span.End()

	span.SetAttributes(
		attribute.String("payment.currency", amount.Currency),
		attribute.Int64("payment.amount", amount.Amount),
		attribute.String("credit_card.type", cardType(card.Number)),
	)

	if err := p.authorize(amount, card); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.debits.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "declined")))
		p.log.WarnContext(ctx, "debit declined",
			slog.String("card", card.Masked()),
			slog.Int64("amount", amount.Amount),
			slog.Any("err", err))
		return "", err
	}

	transactionID := p.newID()
	span.SetAttributes(attribute.String("transaction.id", transactionID))
	p.debits.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "approved")))
	p.charged.Add(ctx, amount.Amount, metric.WithAttributes(attribute.String("currency", amount.Currency)))

	p.log.InfoContext(ctx, "transaction processed",
		slog.String("card_type", cardType(card.Number)),
		slog.String("card", card.Masked()),
		slog.String("currency", amount.Currency),
		slog.Int64("amount", amount.Amount),
		slog.String("transaction_id", transactionID))

	return transactionID, nil
}

func (p *Simulator) authorize(amount domain.Money, card domain.Card) error {
	if amount.Amount <= 0 {
		return ErrNonPositiveAmount
	}
	if _, ok := p.stolen[card.Number]; ok {
		return ErrStolenCard
	}
	if p.CreditLimit > 0 && amount.Amount > p.CreditLimit {
		return fmt.Errorf("%w: %d > %d", ErrCreditLimit, amount.Amount, p.CreditLimit)
	}
	return nil
}

func cardType(number string) string {
	switch {
	case visaPattern.MatchString(number):
		return "visa"
	case mastercardPattern.MatchString(number):
		return "mastercard"
	default:
		return "unknown"
	}
}
