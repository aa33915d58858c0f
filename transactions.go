package docwritex

import "context"

// TransactionManager exposes the enclosing transaction to the writer. The
// writer only observes it; it never begins, commits, or rolls back the
// transaction itself.
//
// Callbacks registered through RegisterAfterCommit fire exactly once,
// strictly after the transaction's own resources have committed, and never
// fire on rollback. Which goroutine invokes them is the manager's choice, so
// callbacks must not assume they run on the registering goroutine.
type TransactionManager interface {
	// TransactionActive indicates whether a transaction is currently active
	// for the calling unit of work.
	TransactionActive(ctx context.Context) bool

	// RegisterAfterCommit schedules fn to run once the active transaction
	// commits successfully. Registering outside an active transaction is an
	// error.
	RegisterAfterCommit(ctx context.Context, fn func(ctx context.Context)) error
}
