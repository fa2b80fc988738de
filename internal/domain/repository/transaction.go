package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise it is committed and any registered after-commit hooks run.
	Execute(ctx context.Context, fn func(tx RepositoryTx) error) error
}

// RepositoryTx provides repository instances bound to one transaction, plus
// registration of side effects that must only run after that transaction
// commits. Hook failures are logged by the manager, never propagated: a mail
// outage must not turn a committed registration into a failure.
type RepositoryTx interface {
	// Users returns a UserRepository bound to the current transaction.
	Users() UserRepository

	// Tokens returns a TokenRepository bound to the current transaction.
	Tokens() TokenRepository

	// AfterCommit registers a hook to run once, strictly after a successful
	// commit. Hooks are discarded on rollback.
	AfterCommit(fn func(ctx context.Context))
}
