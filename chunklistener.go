package docwritex

import "context"

// ChunkListener is implemented by components that observe the pipeline's
// chunk boundaries. The pipeline calls BeforeChunk ahead of each chunk and
// AfterChunk once the chunk's transaction has completed; an error from
// AfterChunk is terminal for the current step.
type ChunkListener interface {
	BeforeChunk(ctx context.Context)
	AfterChunk(ctx context.Context) error
}
