package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dwikikusuma/tuslibros/internal/sales/domain"
	"github.com/dwikikusuma/tuslibros/pkg/postgres"
	"github.com/dwikikusuma/tuslibros/pkg/safemath"
	"github.com/google/uuid"
)

const Schema = `
CREATE TABLE IF NOT EXISTS sales (
    id             UUID PRIMARY KEY,
    username       TEXT NOT NULL,
    transaction_id TEXT NOT NULL UNIQUE,
    currency       TEXT NOT NULL,
    total_amount   BIGINT NOT NULL,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS sale_lines (
    id                BIGSERIAL PRIMARY KEY,
    sale_id           UUID NOT NULL REFERENCES sales(id) ON DELETE RESTRICT,
    product_id        TEXT NOT NULL,
    name              TEXT NOT NULL,
    unit_amount       BIGINT NOT NULL,
    quantity          BIGINT NOT NULL,
    line_total_amount BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sales_username ON sales(username);
CREATE INDEX IF NOT EXISTS idx_sale_lines_sale_id ON sale_lines(sale_id);
`

type SaleRepo struct {
	db *sql.DB
}

func NewSaleRepo(db *sql.DB) *SaleRepo {
	return &SaleRepo{db: db}
}

func (r *SaleRepo) Migrate(ctx context.Context) error {
	return postgres.ApplySchema(ctx, r.db, Schema)
}

func (r *SaleRepo) Append(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	var created domain.Sale

	err := postgres.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		var total int64
		for i, item := range sale.Lines {
			expected, err := safemath.Mul(item.UnitAmount, item.Quantity)
			if err != nil || item.LineTotalAmount != expected {
				return fmt.Errorf("item %d: line total mismatch", i)
			}
			if total, err = safemath.Add(total, item.LineTotalAmount); err != nil {
				return fmt.Errorf("sale total: %w", err)
			}
		}
		if total != sale.TotalAmount {
			return fmt.Errorf("sale total mismatch: lines add up to %d, got %d", total, sale.TotalAmount)
		}

		id := uuid.New()
		err := tx.QueryRowContext(ctx, `
INSERT INTO sales (id, username, transaction_id, currency, total_amount)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`,
			id, sale.Username, sale.TransactionID, sale.Currency, sale.TotalAmount).Scan(&created.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}

		for i, item := range sale.Lines {
			_, err := tx.ExecContext(ctx, `
INSERT INTO sale_lines (sale_id, product_id, name, unit_amount, quantity, line_total_amount)
VALUES ($1, $2, $3, $4, $5, $6)`,
				id, item.ProductID, item.Name, item.UnitAmount, item.Quantity, item.LineTotalAmount)
			if err != nil {
				return fmt.Errorf("failed to insert line %d: %w", i, err)
			}
		}

		created.ID = id.String()
		created.Username = sale.Username
		created.TransactionID = sale.TransactionID
		created.Currency = sale.Currency
		created.TotalAmount = sale.TotalAmount
		created.Lines = append([]domain.SaleLine(nil), sale.Lines...)
		return nil
	})
	if err != nil {
		return domain.Sale{}, err
	}
	return created, nil
}

func (r *SaleRepo) ListByUser(ctx context.Context, username string) ([]domain.Sale, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT s.id, s.transaction_id, s.currency, s.total_amount, s.created_at,
       l.product_id, l.name, l.unit_amount, l.quantity, l.line_total_amount
FROM sales s
JOIN sale_lines l ON l.sale_id = s.id
WHERE s.username = $1
ORDER BY s.created_at, s.id, l.id`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Sale
	for rows.Next() {
		var (
			sid  uuid.UUID
			sale domain.Sale
			line domain.SaleLine
		)
		if err := rows.Scan(&sid, &sale.TransactionID, &sale.Currency, &sale.TotalAmount, &sale.CreatedAt,
			&line.ProductID, &line.Name, &line.UnitAmount, &line.Quantity, &line.LineTotalAmount); err != nil {
			return nil, err
		}

		if n := len(out); n == 0 || out[n-1].ID != sid.String() {
			sale.ID = sid.String()
			sale.Username = username
			out = append(out, sale)
		}
		last := &out[len(out)-1]
		last.Lines = append(last.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
