package docwritex

import "context"

// StoreDriver is the narrow surface of the document store the writer
// consumes. Implementations must be safe for concurrent use: the deferred
// write path invokes the driver from the transaction manager's completion
// goroutine, which may differ from the pipeline's.
type StoreDriver interface {
	// WriteDocuments persists docs into the named collection. A level of
	// DurabilityLevelUnknown leaves the choice to the store's own default.
	WriteDocuments(ctx context.Context, storeName, collectionName string, docs []Document, level DurabilityLevel) error

	// DefaultDurability reports the durability level the named collection
	// is configured with.
	DefaultDurability(ctx context.Context, storeName, collectionName string) (DurabilityLevel, error)
}
