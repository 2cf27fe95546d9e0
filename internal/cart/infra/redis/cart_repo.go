package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dwikikusuma/tuslibros/internal/cart/app"
	"github.com/dwikikusuma/tuslibros/internal/cart/domain"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	keyPrefix     = "tuslibros:cart:"
	retiredPrefix = "tuslibros:retired-cart:"

	maxWatchRetries = 10
)

type cartRecord struct {
	ID        string       `json:"id"`
	Owner     string       `json:"owner"`
	Items     []itemRecord `json:"items"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type itemRecord struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CartRepo stores each cart as a JSON document under its own key. A ttl of
// zero keeps carts until checkout.
type CartRepo struct {
	client *redis.Client
	ttl    time.Duration

	newID func() string
	now   func() time.Time
}

func NewClient(addr string) *redis.Client {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
		}
	}
	client := redis.NewClient(opts)
	client.AddHook(redisotel.NewTracingHook())
	return client
}

func NewCartRepo(client *redis.Client, ttl time.Duration) *CartRepo {
	return &CartRepo{
		client: client,
		ttl:    ttl,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

func (r *CartRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *CartRepo) Create(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	now := r.now()
	cart = cart.Clone()
	cart.CreatedAt = now
	cart.UpdatedAt = now

	for attempt := 0; attempt < maxWatchRetries; attempt++ {
		cart.ID = r.newID()

		retired, err := r.client.Exists(ctx, retiredPrefix+cart.ID).Result()
		if err != nil {
			return domain.Cart{}, fmt.Errorf("redis exists: %w", err)
		}
		if retired > 0 {
			continue
		}

		b, err := json.Marshal(toRecord(cart))
		if err != nil {
			return domain.Cart{}, err
		}
		ok, err := r.client.SetNX(ctx, keyPrefix+cart.ID, b, r.ttl).Result()
		if err != nil {
			return domain.Cart{}, fmt.Errorf("redis setnx: %w", err)
		}
		if ok {
			return cart, nil
		}
	}

	return domain.Cart{}, errors.New("could not allocate a fresh cart id")
}

func (r *CartRepo) Get(ctx context.Context, cartID string) (domain.Cart, error) {
	b, err := r.client.Get(ctx, keyPrefix+cartID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, app.ErrInvalidCart
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("redis get: %w", err)
	}
	return decode(b)
}

// AddItem is an optimistic read-modify-write guarded by WATCH.
func (r *CartRepo) AddItem(ctx context.Context, cartID string, item domain.CartItem) error {
	key := keyPrefix + cartID

	txf := func(tx *redis.Tx) error {
		b, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return app.ErrInvalidCart
		}
		if err != nil {
			return fmt.Errorf("redis get: %w", err)
		}

		cart, err := decode(b)
		if err != nil {
			return err
		}
		if err := cart.Add(item.ProductID, item.Quantity); err != nil {
			return fmt.Errorf("%w: %w", app.ErrInvalidQuantity, err)
		}
		cart.UpdatedAt = r.now()

		out, err := json.Marshal(toRecord(cart))
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, r.ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxWatchRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("add item to cart %s: too much contention", cartID)
}

func (r *CartRepo) Delete(ctx context.Context, cartID string) error {
	n, err := r.client.Del(ctx, keyPrefix+cartID).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if n == 0 {
		return app.ErrInvalidCart
	}

	if err := r.client.Set(ctx, retiredPrefix+cartID, 1, 0).Err(); err != nil {
		return fmt.Errorf("redis set retired: %w", err)
	}
	return nil
}

func toRecord(c domain.Cart) cartRecord {
	items := make([]itemRecord, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, itemRecord{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return cartRecord{
		ID:        c.ID,
		Owner:     c.Owner,
		Items:     items,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func decode(b []byte) (domain.Cart, error) {
	var rec cartRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to parse cart data: %w", err)
	}

	var items []domain.CartItem
	for _, it := range rec.Items {
		items = append(items, domain.CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return domain.Cart{
		ID:        rec.ID,
		Owner:     rec.Owner,
		Items:     items,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}
