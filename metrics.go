package docwritex

import (
	"go.opentelemetry.io/otel"
)

var (
	meter  = otel.Meter("github.com/docstorekit/docwritex")
	tracer = otel.Tracer("github.com/docstorekit/docwritex")
)

var (
	// syncWrites tracks physical writes performed on the caller's goroutine,
	// outside any transaction.
	syncWrites, _ = meter.Int64Counter("docwritex.sync_writes")

	// deferredRegistrations tracks writes deferred to transaction commit.
	deferredRegistrations, _ = meter.Int64Counter("docwritex.deferred_registrations")

	// deferredWriteFailures tracks deferred writes that failed after their
	// transaction had already committed.
	deferredWriteFailures, _ = meter.Int64Counter("docwritex.deferred_write_failures")

	// documentsWritten tracks documents successfully written to the store.
	documentsWritten, _ = meter.Int64Counter("docwritex.documents_written")
)
