package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/webshop/internal/domain/errors"
	"github.com/polkiloo/webshop/internal/domain/model"
	"github.com/polkiloo/webshop/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage depends on,
// narrow enough to be replaced by pgxmock in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type customerRepository struct {
	storage *Storage
}

type clothesItemRepository struct {
	storage *Storage
}

type clothesTypeRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) ClothesItems() repository.ClothesItemRepository {
	return &clothesItemRepository{storage: s}
}

func (s *Storage) ClothesTypes() repository.ClothesTypeRepository {
	return &clothesTypeRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS clothes_types (
            id UUID PRIMARY KEY,
            type TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS clothes_items (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            clothes_type_id UUID NOT NULL REFERENCES clothes_types(id)
        )`,
		`CREATE TABLE IF NOT EXISTS customers (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            total_spent DOUBLE PRECISION NOT NULL DEFAULT 0,
            has_discount BOOLEAN NOT NULL DEFAULT FALSE,
            orders_count INT NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            customer_id UUID NOT NULL REFERENCES customers(id),
            total_price DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            clothes_item_id UUID NOT NULL REFERENCES clothes_items(id),
            position INT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_clothes_items_type ON clothes_items(clothes_type_id)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id, position)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// querier returns the transaction carried by ctx when inside a unit of
// work, falling back to the pool.
func (s *Storage) querier(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return s.pool
}

// Do implements repository.UnitOfWork: fn runs inside one transaction,
// and repository calls made with fn's context join it.
func (s *Storage) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// --- CustomerRepository implementation ---

func (r *customerRepository) GetAll(ctx context.Context) ([]model.Customer, error) {
	const query = `SELECT id, name, total_spent, has_discount, orders_count FROM customers ORDER BY name`
	rows, err := r.storage.querier(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.TotalSpent, &c.HasDiscount, &c.OrdersCount); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	const query = `SELECT id, name, total_spent, has_discount, orders_count FROM customers WHERE id=$1`
	var c model.Customer
	err := r.storage.querier(ctx).QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.TotalSpent, &c.HasDiscount, &c.OrdersCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Add(ctx context.Context, customer *model.Customer) error {
	const query = `INSERT INTO customers (id, name, total_spent, has_discount, orders_count) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.storage.querier(ctx).Exec(ctx, query, customer.ID, customer.Name, customer.TotalSpent, customer.HasDiscount, customer.OrdersCount)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	const query = `UPDATE customers SET name=$2, total_spent=$3, has_discount=$4, orders_count=$5 WHERE id=$1`
	tag, err := r.storage.querier(ctx).Exec(ctx, query, customer.ID, customer.Name, customer.TotalSpent, customer.HasDiscount, customer.OrdersCount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.querier(ctx).Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *customerRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM customers WHERE name=$1)`
	var exists bool
	if err := r.storage.querier(ctx).QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// --- ClothesItemRepository implementation ---

func (r *clothesItemRepository) GetAll(ctx context.Context) ([]model.ClothesItem, error) {
	const query = `SELECT id, name, price, clothes_type_id FROM clothes_items ORDER BY name`
	rows, err := r.storage.querier(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ClothesItem
	for rows.Next() {
		var item model.ClothesItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.ClothesTypeID); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *clothesItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ClothesItem, error) {
	const query = `SELECT id, name, price, clothes_type_id FROM clothes_items WHERE id=$1`
	var item model.ClothesItem
	err := r.storage.querier(ctx).QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Price, &item.ClothesTypeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *clothesItemRepository) Add(ctx context.Context, item *model.ClothesItem) error {
	const query = `INSERT INTO clothes_items (id, name, price, clothes_type_id) VALUES ($1, $2, $3, $4)`
	_, err := r.storage.querier(ctx).Exec(ctx, query, item.ID, item.Name, item.Price, item.ClothesTypeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *clothesItemRepository) Update(ctx context.Context, item *model.ClothesItem) error {
	const query = `UPDATE clothes_items SET name=$2, price=$3, clothes_type_id=$4 WHERE id=$1`
	tag, err := r.storage.querier(ctx).Exec(ctx, query, item.ID, item.Name, item.Price, item.ClothesTypeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *clothesItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.querier(ctx).Exec(ctx, `DELETE FROM clothes_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ClothesTypeRepository implementation ---

func (r *clothesTypeRepository) GetAll(ctx context.Context) ([]model.ClothesType, error) {
	const query = `SELECT id, type FROM clothes_types ORDER BY type`
	rows, err := r.storage.querier(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ClothesType
	for rows.Next() {
		var ct model.ClothesType
		if err := rows.Scan(&ct.ID, &ct.Type); err != nil {
			return nil, err
		}
		result = append(result, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *clothesTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ClothesType, error) {
	const query = `SELECT id, type FROM clothes_types WHERE id=$1`
	var ct model.ClothesType
	err := r.storage.querier(ctx).QueryRow(ctx, query, id).Scan(&ct.ID, &ct.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &ct, nil
}

func (r *clothesTypeRepository) Add(ctx context.Context, clothesType *model.ClothesType) error {
	const query = `INSERT INTO clothes_types (id, type) VALUES ($1, $2)`
	_, err := r.storage.querier(ctx).Exec(ctx, query, clothesType.ID, clothesType.Type)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *clothesTypeRepository) Update(ctx context.Context, clothesType *model.ClothesType) error {
	const query = `UPDATE clothes_types SET type=$2 WHERE id=$1`
	tag, err := r.storage.querier(ctx).Exec(ctx, query, clothesType.ID, clothesType.Type)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *clothesTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.querier(ctx).Exec(ctx, `DELETE FROM clothes_types WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT id, customer_id, total_price FROM orders ORDER BY id`
	rows, err := r.storage.querier(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.TotalPrice); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return result, nil
	}

	itemsByOrder, err := r.loadAllItems(ctx)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Items = itemsByOrder[result[i].ID]
	}
	return result, nil
}

func (r *orderRepository) loadAllItems(ctx context.Context) (map[uuid.UUID][]model.ClothesItem, error) {
	const query = `SELECT oi.order_id, ci.id, ci.name, ci.price, ci.clothes_type_id
                   FROM order_items oi
                   JOIN clothes_items ci ON ci.id = oi.clothes_item_id
                   ORDER BY oi.order_id, oi.position`
	rows, err := r.storage.querier(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByOrder := make(map[uuid.UUID][]model.ClothesItem)
	for rows.Next() {
		var orderID uuid.UUID
		var item model.ClothesItem
		if err := rows.Scan(&orderID, &item.ID, &item.Name, &item.Price, &item.ClothesTypeID); err != nil {
			return nil, err
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return itemsByOrder, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID uuid.UUID) ([]model.ClothesItem, error) {
	const query = `SELECT ci.id, ci.name, ci.price, ci.clothes_type_id
                   FROM order_items oi
                   JOIN clothes_items ci ON ci.id = oi.clothes_item_id
                   WHERE oi.order_id=$1
                   ORDER BY oi.position`
	rows, err := r.storage.querier(ctx).Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.ClothesItem
	for rows.Next() {
		var item model.ClothesItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.ClothesTypeID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	const query = `SELECT id, customer_id, total_price FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.querier(ctx).QueryRow(ctx, query, id).Scan(&o.ID, &o.CustomerID, &o.TotalPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *orderRepository) Add(ctx context.Context, order *model.Order) error {
	return r.storage.Do(ctx, func(ctx context.Context) error {
		const insertOrder = `INSERT INTO orders (id, customer_id, total_price) VALUES ($1, $2, $3)`
		if _, err := r.storage.querier(ctx).Exec(ctx, insertOrder, order.ID, order.CustomerID, order.TotalPrice); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}
		return r.insertItems(ctx, order)
	})
}

func (r *orderRepository) insertItems(ctx context.Context, order *model.Order) error {
	const insertItem = `INSERT INTO order_items (order_id, clothes_item_id, position) VALUES ($1, $2, $3)`
	for i, item := range order.Items {
		if _, err := r.storage.querier(ctx).Exec(ctx, insertItem, order.ID, item.ID, i); err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	return r.storage.Do(ctx, func(ctx context.Context) error {
		const updateOrder = `UPDATE orders SET customer_id=$2, total_price=$3 WHERE id=$1`
		tag, err := r.storage.querier(ctx).Exec(ctx, updateOrder, order.ID, order.CustomerID, order.TotalPrice)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		if _, err := r.storage.querier(ctx).Exec(ctx, `DELETE FROM order_items WHERE order_id=$1`, order.ID); err != nil {
			return err
		}
		return r.insertItems(ctx, order)
	})
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.querier(ctx).Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
