package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dwikikusuma/tuslibros/internal/cart/app"
	"github.com/dwikikusuma/tuslibros/internal/cart/domain"
	"github.com/dwikikusuma/tuslibros/pkg/postgres"
	"github.com/google/uuid"
)

const Schema = `
CREATE TABLE IF NOT EXISTS carts (
    id         UUID PRIMARY KEY,
    owner      TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS retired_carts (
    id UUID PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS cart_items (
    position   BIGSERIAL PRIMARY KEY,
    cart_id    UUID NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
    product_id TEXT NOT NULL,
    quantity   BIGINT NOT NULL CHECK (quantity > 0),
    UNIQUE (cart_id, product_id)
);
`

type CartRepo struct {
	db    *sql.DB
	newID func() uuid.UUID
}

func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{db: db, newID: uuid.New}
}

func (r *CartRepo) Migrate(ctx context.Context) error {
	return postgres.ApplySchema(ctx, r.db, Schema)
}

func (r *CartRepo) Create(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	for attempt := 0; attempt < 3; attempt++ {
		id := r.newID()

		var created domain.Cart
		err := postgres.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
			var retired bool
			if err := tx.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM retired_carts WHERE id = $1)`, id).Scan(&retired); err != nil {
				return err
			}
			if retired {
				return errRetiredID
			}

			row := tx.QueryRowContext(ctx, `
INSERT INTO carts (id, owner) VALUES ($1, $2)
RETURNING id, owner, created_at, updated_at`, id, cart.Owner)

			var cid uuid.UUID
			if err := row.Scan(&cid, &created.Owner, &created.CreatedAt, &created.UpdatedAt); err != nil {
				return err
			}
			created.ID = cid.String()
			return nil
		})

		// id already issued at some point => draw again
		if errors.Is(err, errRetiredID) || postgres.IsUniqueViolation(err) {
			continue
		}
		if err != nil {
			return domain.Cart{}, err
		}
		return created, nil
	}

	return domain.Cart{}, errors.New("could not allocate a fresh cart id")
}

var errRetiredID = errors.New("cart id retired")

func (r *CartRepo) Get(ctx context.Context, cartID string) (domain.Cart, error) {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return domain.Cart{}, app.ErrInvalidCart
	}

	var cart domain.Cart
	var cid uuid.UUID
	err = r.db.QueryRowContext(ctx,
		`SELECT id, owner, created_at, updated_at FROM carts WHERE id = $1`, cartUUID).
		Scan(&cid, &cart.Owner, &cart.CreatedAt, &cart.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cart{}, app.ErrInvalidCart
	}
	if err != nil {
		return domain.Cart{}, err
	}
	cart.ID = cid.String()

	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, quantity FROM cart_items WHERE cart_id = $1 ORDER BY position`, cartUUID)
	if err != nil {
		return domain.Cart{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return domain.Cart{}, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return domain.Cart{}, err
	}

	return cart, nil
}

func (r *CartRepo) AddItem(ctx context.Context, cartID string, item domain.CartItem) error {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return app.ErrInvalidCart
	}

	return postgres.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE carts SET updated_at = now() WHERE id = $1`, cartUUID)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return app.ErrInvalidCart
		}

		_, err = tx.ExecContext(ctx, `
INSERT INTO cart_items (cart_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id)
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
			cartUUID, item.ProductID, item.Quantity)
		if postgres.IsOutOfRange(err) {
			return fmt.Errorf("%w: %w", app.ErrInvalidQuantity, domain.ErrQuantityOverflow)
		}
		if err != nil {
			return fmt.Errorf("upsert cart item: %w", err)
		}
		return nil
	})
}

func (r *CartRepo) Delete(ctx context.Context, cartID string) error {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return app.ErrInvalidCart
	}

	return postgres.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, cartUUID)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return app.ErrInvalidCart
		}

		_, err = tx.ExecContext(ctx, `INSERT INTO retired_carts (id) VALUES ($1) ON CONFLICT DO NOTHING`, cartUUID)
		return err
	})
}
