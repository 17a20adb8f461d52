package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/lusunpay/internal/clock"
	domainErrors "github.com/polkiloo/lusunpay/internal/domain/errors"
	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/domain/repository"
)

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

// SeedFunc builds the orders inserted into an empty table.
type SeedFunc func(now time.Time) []model.Order

// Storage keeps one row per order and updates rows with a version check.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
	seed   SeedFunc
	clock  clock.Clock
}

var _ repository.OrderRepository = (*Storage)(nil)

// New creates storage with schema initialization. A nil seed disables seeding.
func New(ctx context.Context, dsn string, logger *slog.Logger, seed SeedFunc, clk clock.Clock) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger, seed: seed, clock: clk}
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

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            seq BIGSERIAL,
            id TEXT PRIMARY KEY,
            project_name TEXT NOT NULL,
            details TEXT NOT NULL,
            amount NUMERIC(18, 2) NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            invoice JSONB,
            version BIGINT NOT NULL DEFAULT 1
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_seq ON orders(seq DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const selectColumns = `SELECT id, project_name, details, amount::text, status, created_at, invoice, version FROM orders`

type invoiceDocument struct {
	Type        model.InvoiceType `json:"type"`
	CompanyName string            `json:"companyName"`
	TaxID       string            `json:"taxId"`
	Email       string            `json:"email"`
	Address     string            `json:"address,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	BankName    string            `json:"bankName,omitempty"`
	BankAccount string            `json:"bankAccount,omitempty"`
	SubmittedAt time.Time         `json:"submittedAt"`
	SentAt      *time.Time        `json:"sentAt,omitempty"`
}

func marshalInvoice(inv *model.InvoiceInfo) ([]byte, error) {
	if inv == nil {
		return nil, nil
	}
	return json.Marshal(invoiceDocument(*inv))
}

func unmarshalInvoice(raw []byte) (*model.InvoiceInfo, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var doc invoiceDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: invoice: %v", domainErrors.ErrStorageCorrupted, err)
	}
	inv := model.InvoiceInfo(doc)
	return &inv, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (model.Order, error) {
	var (
		o       model.Order
		amount  string
		invoice []byte
	)
	if err := row.Scan(&o.ID, &o.ProjectName, &o.Details, &amount, &o.Status, &o.CreatedAt, &invoice, &o.Version); err != nil {
		return model.Order{}, err
	}
	var err error
	if o.Amount, err = decimal.NewFromString(amount); err != nil {
		return model.Order{}, fmt.Errorf("%w: amount of %s: %v", domainErrors.ErrStorageCorrupted, o.ID, err)
	}
	if !o.Status.Valid() {
		return model.Order{}, fmt.Errorf("%w: status of %s: %q", domainErrors.ErrStorageCorrupted, o.ID, o.Status)
	}
	if o.Invoice, err = unmarshalInvoice(invoice); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (s *Storage) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) > 0 || s.seed == nil {
		return orders, nil
	}

	if err := s.insertSeed(ctx); err != nil {
		return nil, err
	}
	return s.list(ctx)
}

func (s *Storage) list(ctx context.Context) ([]model.Order, error) {
	rows, err := s.pool.Query(ctx, selectColumns+` ORDER BY seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// insertSeed writes the seed collection oldest first so it lists in seed order.
func (s *Storage) insertSeed(ctx context.Context) error {
	orders := s.seed(s.clock.Now())
	err := s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for i := len(orders) - 1; i >= 0; i-- {
			if _, err := insertOrder(ctx, tx, orders[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	s.logger.Info("seeded empty order table", slog.Int("orders", len(orders)))
	return nil
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertOrder(ctx context.Context, db execer, o model.Order) (bool, error) {
	const query = `INSERT INTO orders (id, project_name, details, amount, status, created_at, invoice, version)
                   VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)
                   ON CONFLICT (id) DO NOTHING`
	invoice, err := marshalInvoice(o.Invoice)
	if err != nil {
		return false, err
	}
	version := o.Version
	if version <= 0 {
		version = 1
	}
	tag, err := db.Exec(ctx, query, o.ID, o.ProjectName, o.Details, o.Amount.String(), o.Status, o.CreatedAt, invoice, version)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Storage) GetByID(ctx context.Context, id string) (model.Order, bool, error) {
	o, err := scanOrder(s.pool.QueryRow(ctx, selectColumns+` WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, false, nil
		}
		return model.Order{}, false, err
	}
	return o, true, nil
}

func (s *Storage) Create(ctx context.Context, order model.Order) error {
	inserted, err := insertOrder(ctx, s.pool, order)
	if err != nil {
		return err
	}
	if !inserted {
		return domainErrors.ErrAlreadyExists
	}
	return nil
}

const updateQuery = `UPDATE orders SET status=$1, invoice=$2, version=version+1 WHERE id=$3 AND version=$4`

func updateOrder(ctx context.Context, db execer, o model.Order) (bool, error) {
	invoice, err := marshalInvoice(o.Invoice)
	if err != nil {
		return false, err
	}
	tag, err := db.Exec(ctx, updateQuery, o.Status, invoice, o.ID, o.Version)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Storage) Update(ctx context.Context, order model.Order) (bool, error) {
	updated, err := updateOrder(ctx, s.pool, order)
	if err != nil {
		return false, err
	}
	if updated {
		return true, nil
	}

	var version int64
	err = s.pool.QueryRow(ctx, `SELECT version FROM orders WHERE id=$1`, order.ID).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return false, domainErrors.ErrVersionConflict
}

func (s *Storage) UpdateBatch(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, o := range orders {
			updated, err := updateOrder(ctx, tx, o)
			if err != nil {
				return err
			}
			if !updated {
				return domainErrors.ErrVersionConflict
			}
		}
		return nil
	})
}

func (s *Storage) Reset(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM orders`); err != nil {
		return fmt.Errorf("reset orders: %w", err)
	}
	s.logger.Warn("order table reset")
	return nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
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
