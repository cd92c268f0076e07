package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx, so every
// repository can run either standalone or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository bundles all entity repositories over a single database handle.
type Repository struct {
	db *sql.DB

	Customers     CustomerRepository
	Products      ProductRepository
	Services      ServiceRepository
	Orders        OrderRepository
	OrderItems    OrderItemRepository
	Appointments  AppointmentRepository
	Messages      MessageRepository
	Revenue       RevenueRepository
	Notifications NotificationRepository
	Users         UserRepository
	RefreshTokens RefreshTokenRepository
}

func buildRepository(db *sql.DB, dbtx DBTX) *Repository {
	return &Repository{
		db:            db,
		Customers:     NewCustomerRepository(dbtx),
		Products:      NewProductRepository(dbtx),
		Services:      NewServiceRepository(dbtx),
		Orders:        NewOrderRepository(dbtx),
		OrderItems:    NewOrderItemRepository(dbtx),
		Appointments:  NewAppointmentRepository(dbtx),
		Messages:      NewMessageRepository(dbtx),
		Revenue:       NewRevenueRepository(dbtx),
		Notifications: NewNotificationRepository(dbtx),
		Users:         NewUserRepository(dbtx),
		RefreshTokens: NewRefreshTokenRepository(dbtx),
	}
}

// New creates a Repository over the given database connection.
func New(db *sql.DB) *Repository {
	return buildRepository(db, db)
}

// WithTx runs fn with a Repository bound to a single transaction, committing
// on success and rolling back on error. Calling WithTx on a Repository that
// is already transaction-bound joins the current transaction.
func (r *Repository) WithTx(ctx context.Context, fn func(*Repository) error) error {
	if r.db == nil {
		return fn(r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(buildRepository(nil, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
