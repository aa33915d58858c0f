package docwritex

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/docstorekit/docwritex/zaputils"
)

type BatchWriterOptions struct {
	Logger *zap.Logger

	// Store is the document store driver the writer targets.
	Store StoreDriver

	// Transactions exposes the enclosing transaction, when there is one.
	// Without a manager the writer always writes synchronously.
	Transactions TransactionManager

	// StoreName is the database the writer targets inside the store.
	StoreName string

	// CollectionName is the collection the writer targets.
	CollectionName string

	// Converter is consulted for items that are not already Documents.
	Converter Converter

	// DurabilityLevel overrides the collection default when set.
	DurabilityLevel DurabilityLevel

	// DisableDeferredWrites forces the synchronous path even when a
	// transaction is active.
	DisableDeferredWrites bool

	// FailureCell carries deferred write failures to the chunk boundary.
	// One is created when not provided; supply one to share it across
	// writers participating in the same pipeline run.
	FailureCell *FailureCell
}

// BatchWriter writes chunks of documents to a document store, deferring the
// physical write to transaction-commit time when an enclosing transaction is
// active.
//
// The store cannot take part in the transaction itself, so a deferred write
// runs after the transactional resources have committed and outside their
// rollback control. A failed deferred write is therefore not returned from
// Write: it is captured in the failure cell and surfaced as a terminal
// DeferredWriteError by the next AfterChunk call. Write returning nil on the
// deferred path means the write was accepted, not that it has happened.
//
// The writer relies on the pipeline processing chunks sequentially and
// calling AfterChunk between them; see FailureCell for what happens when
// that contract is broken.
type BatchWriter struct {
	logger       *zap.Logger
	store        StoreDriver
	transactions TransactionManager

	storeName      string
	collectionName string
	converter      Converter
	durability     DurabilityLevel
	deferWrites    bool

	failures *FailureCell

	metricAttrs metric.MeasurementOption
}

var _ ChunkListener = (*BatchWriter)(nil)

func NewBatchWriter(opts *BatchWriterOptions) (*BatchWriter, error) {
	if opts == nil {
		return nil, ConfigurationError{Message: "options must be specified"}
	}
	if opts.Store == nil {
		return nil, ConfigurationError{Message: "a store driver is required"}
	}
	if opts.StoreName == "" {
		return nil, ConfigurationError{Message: "a store name is required"}
	}
	if opts.CollectionName == "" {
		return nil, ConfigurationError{Message: "a collection name is required"}
	}

	failures := opts.FailureCell
	if failures == nil {
		failures = NewFailureCell(&FailureCellOptions{
			Logger: opts.Logger,
		})
	}

	return &BatchWriter{
		logger:         loggerOrNop(opts.Logger),
		store:          opts.Store,
		transactions:   opts.Transactions,
		storeName:      opts.StoreName,
		collectionName: opts.CollectionName,
		converter:      opts.Converter,
		durability:     opts.DurabilityLevel,
		deferWrites:    !opts.DisableDeferredWrites,
		failures:       failures,
		metricAttrs: metric.WithAttributeSet(attribute.NewSet(
			attribute.String("store", opts.StoreName),
			attribute.String("collection", opts.CollectionName),
		)),
	}, nil
}

// Write converts items into documents and writes them to the configured
// collection, deferring to commit time if a transaction is active.
func (w *BatchWriter) Write(ctx context.Context, items []interface{}) error {
	docs, err := w.prepareDocuments(items)
	if err != nil {
		return err
	}

	batch := NewWriteBatch(w.storeName, w.collectionName, docs, w.durability)
	return w.WriteBatch(ctx, batch)
}

// WriteBatch writes one prepared batch. With no active transaction the write
// happens on the calling goroutine and its result is returned directly. With
// an active transaction the physical write is registered to run after the
// transaction commits and WriteBatch returns nil immediately, keeping the
// transactional resources' commit decoupled from the store's latency.
func (w *BatchWriter) WriteBatch(ctx context.Context, batch *WriteBatch) error {
	if batch.NumDocuments() == 0 {
		return nil
	}

	if !w.deferWrites || w.transactions == nil || !w.transactions.TransactionActive(ctx) {
		err := w.performWrite(ctx, batch)
		if err != nil {
			return err
		}

		syncWrites.Add(ctx, 1, w.metricAttrs)
		return nil
	}

	registrationID := uuid.NewString()

	err := w.transactions.RegisterAfterCommit(ctx, func(ctx context.Context) {
		w.runDeferredWrite(ctx, registrationID, batch)
	})
	if err != nil {
		return fmt.Errorf("could not defer write to transaction commit: %w", err)
	}

	deferredRegistrations.Add(ctx, 1, w.metricAttrs)
	w.logger.Debug("deferred write to transaction commit",
		zap.String("registrationId", registrationID),
		zaputils.WriteTarget("target", batch.StoreName(), batch.CollectionName()),
		zap.Int("numDocuments", batch.NumDocuments()))

	return nil
}

// BeforeChunk implements ChunkListener. The writer needs no per-chunk setup.
func (w *BatchWriter) BeforeChunk(ctx context.Context) {
}

// AfterChunk implements ChunkListener. It drains the failure cell and turns
// a captured deferred failure into a terminal DeferredWriteError. A second
// immediate call reports clean.
func (w *BatchWriter) AfterChunk(ctx context.Context) error {
	err := w.failures.Take()
	if err == nil {
		return nil
	}

	return DeferredWriteError{
		Cause:          err,
		StoreName:      w.storeName,
		CollectionName: w.collectionName,
	}
}

// runDeferredWrite executes a registered write on the transaction manager's
// completion goroutine. There is no caller stack frame to return an error to
// at this point, so a failure goes into the failure cell for the next chunk
// boundary to report.
func (w *BatchWriter) runDeferredWrite(ctx context.Context, registrationID string, batch *WriteBatch) {
	err := w.performWrite(ctx, batch)
	if err == nil {
		return
	}

	deferredWriteFailures.Add(ctx, 1, w.metricAttrs)
	w.logger.Error("deferred write failed after transaction commit",
		zap.String("registrationId", registrationID),
		zaputils.WriteTarget("target", batch.StoreName(), batch.CollectionName()),
		zap.Int("numDocuments", batch.NumDocuments()),
		zap.Error(err))

	w.failures.Store(err)
}

func (w *BatchWriter) performWrite(ctx context.Context, batch *WriteBatch) error {
	ctx, span := tracer.Start(ctx, "docwritex/WriteDocuments",
		trace.WithAttributes(
			attribute.String("store", batch.StoreName()),
			attribute.String("collection", batch.CollectionName()),
			attribute.Int("num_documents", batch.NumDocuments()),
		))
	defer span.End()

	level := batch.DurabilityLevel()
	if level == DurabilityLevelUnknown {
		defaultLevel, err := w.store.DefaultDurability(ctx, batch.StoreName(), batch.CollectionName())
		if err != nil {
			span.RecordError(err)
			return StoreWriteError{
				Cause:          err,
				StoreName:      batch.StoreName(),
				CollectionName: batch.CollectionName(),
				NumDocuments:   batch.NumDocuments(),
			}
		}

		level = defaultLevel
	}

	err := w.store.WriteDocuments(ctx,
		batch.StoreName(), batch.CollectionName(), batch.Documents(), level)
	if err != nil {
		span.RecordError(err)
		return StoreWriteError{
			Cause:          err,
			StoreName:      batch.StoreName(),
			CollectionName: batch.CollectionName(),
			NumDocuments:   batch.NumDocuments(),
		}
	}

	documentsWritten.Add(ctx, int64(batch.NumDocuments()), w.metricAttrs)
	return nil
}

func (w *BatchWriter) prepareDocuments(items []interface{}) ([]Document, error) {
	docs := make([]Document, 0, len(items))

	for _, item := range items {
		switch item := item.(type) {
		case Document:
			docs = append(docs, item)
		default:
			if w.converter == nil {
				return nil, ConversionError{Item: item}
			}

			doc, err := w.converter.Convert(item)
			if err != nil {
				return nil, ConversionError{Item: item, Cause: err}
			}

			docs = append(docs, doc)
		}
	}

	return docs, nil
}
