package docwritex

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration indicates a component was constructed with
	// missing or invalid required options.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrCannotConvertItem indicates an item was not a Document and no
	// converter was configured to make it one.
	ErrCannotConvertItem = errors.New("cannot convert item to document")

	// ErrNoActiveTransaction indicates an after-commit registration was
	// attempted outside an active transaction.
	ErrNoActiveTransaction = errors.New("no active transaction")

	// ErrTransactionCompleted indicates the transaction already committed
	// or rolled back.
	ErrTransactionCompleted = errors.New("transaction already completed")
)

// ConfigurationError indicates invalid writer setup. It is raised at
// construction time, before any I/O, and is never recoverable.
type ConfigurationError struct {
	Message string
}

func (e ConfigurationError) Error() string {
	return "invalid configuration: " + e.Message
}

func (e ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// ConversionError indicates an item could not be turned into a Document. It
// is raised synchronously, before any store I/O for the chunk.
type ConversionError struct {
	Item  interface{}
	Cause error
}

func (e ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot convert item of type %T to document: %s", e.Item, e.Cause)
	}
	return fmt.Sprintf("cannot convert item of type %T to document", e.Item)
}

func (e ConversionError) Unwrap() error {
	return ErrCannotConvertItem
}

// StoreWriteError wraps a physical write failure. On the synchronous path it
// is returned directly from Write; on the deferred path it is the error the
// failure cell carries to the chunk boundary.
type StoreWriteError struct {
	Cause          error
	StoreName      string
	CollectionName string
	NumDocuments   int
}

func (e StoreWriteError) Error() string {
	return fmt.Sprintf("write of %d documents to %s.%s failed: %s",
		e.NumDocuments, e.StoreName, e.CollectionName, e.Cause)
}

func (e StoreWriteError) Unwrap() error {
	return e.Cause
}

// DeferredWriteError is the terminal abort raised at a chunk boundary when
// the deferred write for an already-committed chunk failed. It is not
// retryable at this layer: the transactional resources for that chunk have
// committed and cannot be rolled back, so the store and the transactional
// resources are inconsistent for that chunk until the operator reconciles
// them.
type DeferredWriteError struct {
	Cause          error
	StoreName      string
	CollectionName string
}

func (e DeferredWriteError) Error() string {
	return fmt.Sprintf("deferred write to %s.%s failed after transaction commit: %s",
		e.StoreName, e.CollectionName, e.Cause)
}

func (e DeferredWriteError) Unwrap() error {
	return e.Cause
}
