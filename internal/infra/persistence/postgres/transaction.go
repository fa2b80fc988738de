// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"cryptopress/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryTx implements the domain's RepositoryTx interface.
// It holds a specific GORM transaction object and hands out repository
// instances bound to that single transaction. After-commit callbacks are
// collected here and fired only once the commit succeeds.
type gormRepositoryTx struct {
	tx          *gorm.DB // In GORM, a transaction object is also a *gorm.DB
	afterCommit []func(ctx context.Context)
}

// Users creates a user repository instance bound to the transaction.
func (t *gormRepositoryTx) Users() repository.UserRepository {
	return NewUserRepository(t.tx)
}

// Tokens creates a token repository instance bound to the transaction.
func (t *gormRepositoryTx) Tokens() repository.TokenRepository {
	return NewTokenRepository(t.tx)
}

// AfterCommit registers a callback to run once the transaction commits.
// Callbacks never run on rollback.
func (t *gormRepositoryTx) AfterCommit(fn func(ctx context.Context)) {
	t.afterCommit = append(t.afterCommit, fn)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(tx repository.RepositoryTx) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back. This is a critical safety measure.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	repoTx := &gormRepositoryTx{tx: tx}

	// Execute the application logic (the use case's core work)
	err := fn(repoTx)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Log the rollback error, but return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	// Run after-commit callbacks outside the transaction. The detached context
	// keeps them alive even if the request context is cancelled right after
	// the commit lands.
	hookCtx := context.WithoutCancel(ctx)
	for _, hook := range repoTx.afterCommit {
		hook(hookCtx)
	}

	return nil
}
