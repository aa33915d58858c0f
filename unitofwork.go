package docwritex

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

type unitOfWorkState int32

const (
	unitOfWorkStateActive     = unitOfWorkState(1)
	unitOfWorkStateCommitted  = unitOfWorkState(2)
	unitOfWorkStateRolledBack = unitOfWorkState(3)
)

type UnitOfWorkOptions struct {
	Logger *zap.Logger
}

// UnitOfWork is an in-process TransactionManager for pipelines that drive
// their own commit boundary. One instance covers exactly one transaction
// scope: it is active from construction until Commit or Rollback.
//
// Commit invokes the after-commit callbacks in registration order on the
// committing goroutine, which is not necessarily the goroutine that
// registered them. Rollback discards the callbacks without invoking them.
// Both transitions are one-shot.
type UnitOfWork struct {
	logger *zap.Logger
	id     string

	state atomic.Int32

	lock        sync.Mutex
	afterCommit []func(ctx context.Context)
}

var _ TransactionManager = (*UnitOfWork)(nil)

func NewUnitOfWork(opts *UnitOfWorkOptions) *UnitOfWork {
	if opts == nil {
		opts = &UnitOfWorkOptions{}
	}

	id := uuid.NewString()

	u := &UnitOfWork{
		logger: loggerOrNop(opts.Logger).With(zap.String("unitOfWorkId", id)),
		id:     id,
	}
	u.state.Store(int32(unitOfWorkStateActive))

	return u
}

// ID returns the unique id of this transaction scope.
func (u *UnitOfWork) ID() string {
	return u.id
}

func (u *UnitOfWork) TransactionActive(ctx context.Context) bool {
	return unitOfWorkState(u.state.Load()) == unitOfWorkStateActive
}

func (u *UnitOfWork) RegisterAfterCommit(ctx context.Context, fn func(ctx context.Context)) error {
	u.lock.Lock()
	defer u.lock.Unlock()

	if unitOfWorkState(u.state.Load()) != unitOfWorkStateActive {
		return ErrNoActiveTransaction
	}

	u.afterCommit = append(u.afterCommit, fn)
	return nil
}

// Commit marks the transaction as committed and then runs the registered
// callbacks in registration order, exactly once each. The callbacks run
// after the state transition, so a callback observes the transaction as no
// longer active.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	u.lock.Lock()
	if !u.state.CompareAndSwap(int32(unitOfWorkStateActive), int32(unitOfWorkStateCommitted)) {
		u.lock.Unlock()
		return ErrTransactionCompleted
	}

	callbacks := u.afterCommit
	u.afterCommit = nil
	u.lock.Unlock()

	u.logger.Debug("committed unit of work",
		zap.Int("numAfterCommitCallbacks", len(callbacks)))

	for _, fn := range callbacks {
		fn(ctx)
	}

	return nil
}

// Rollback discards the registered callbacks without invoking them.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	u.lock.Lock()
	defer u.lock.Unlock()

	if !u.state.CompareAndSwap(int32(unitOfWorkStateActive), int32(unitOfWorkStateRolledBack)) {
		return ErrTransactionCompleted
	}

	u.logger.Debug("rolled back unit of work",
		zap.Int("numDiscardedCallbacks", len(u.afterCommit)))
	u.afterCommit = nil

	return nil
}
