package docwritex

import (
	"sync"

	"go.uber.org/zap"
)

type FailureCellOptions struct {
	Logger *zap.Logger
}

// FailureCell carries an error discovered on the transaction manager's
// completion goroutine to the pipeline's next chunk-boundary check. It holds
// at most one error: under the pipeline's sequential chunk contract the
// boundary check drains the cell before the next chunk's deferred write can
// store into it, so finding the cell occupied at store time means that
// contract was broken by the caller. The cell keeps the newer error in that
// case and logs the one it displaced rather than queueing.
//
// A cell is scoped to one pipeline run; share one instance between the
// deferred write path and the chunk-boundary check, nothing else.
type FailureCell struct {
	logger *zap.Logger

	lock sync.Mutex
	err  error
}

func NewFailureCell(opts *FailureCellOptions) *FailureCell {
	if opts == nil {
		opts = &FailureCellOptions{}
	}

	return &FailureCell{
		logger: loggerOrNop(opts.Logger),
	}
}

// Store places err into the cell, displacing any untaken failure.
func (c *FailureCell) Store(err error) {
	if err == nil {
		return
	}

	c.lock.Lock()
	displaced := c.err
	c.err = err
	c.lock.Unlock()

	if displaced != nil {
		c.logger.Warn("displaced an unreported deferred write failure, no chunk boundary check ran between two chunks",
			zap.Error(displaced))
	}
}

// Take atomically removes and returns the held error, or nil if the cell is
// empty. A second Take before the next Store returns nil.
func (c *FailureCell) Take() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	err := c.err
	c.err = nil
	return err
}
