package docwritex

import "golang.org/x/exp/slices"

// WriteBatch is one chunk's worth of documents destined for a single
// collection. It is immutable once constructed; the constructor copies the
// document slice so the caller can reuse its own.
type WriteBatch struct {
	storeName      string
	collectionName string
	durability     DurabilityLevel
	docs           []Document
}

// NewWriteBatch builds a batch targeting the named collection. A durability
// of DurabilityLevelUnknown defers to the collection's configured default at
// write time.
func NewWriteBatch(
	storeName, collectionName string,
	docs []Document,
	durability DurabilityLevel,
) *WriteBatch {
	return &WriteBatch{
		storeName:      storeName,
		collectionName: collectionName,
		durability:     durability,
		docs:           slices.Clone(docs),
	}
}

func (b *WriteBatch) StoreName() string {
	return b.storeName
}

func (b *WriteBatch) CollectionName() string {
	return b.collectionName
}

func (b *WriteBatch) DurabilityLevel() DurabilityLevel {
	return b.durability
}

func (b *WriteBatch) Documents() []Document {
	return b.docs
}

func (b *WriteBatch) NumDocuments() int {
	return len(b.docs)
}
