package encoder

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// FrameEncoderBuilderOption is a function that configures a FrameEncoder
// instance during construction.
type FrameEncoderBuilderOption func(*frameEncoderImpl)

// WithWorkers is an option builder that sets the number of pooled workers used
// for per-shape uniform prep. Values below 1 are clamped to 1.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - FrameEncoderBuilderOption: a function that applies the worker count to a frameEncoderImpl
func WithWorkers(n int) FrameEncoderBuilderOption {
	return func(e *frameEncoderImpl) {
		e.workers = max(n, 1)
	}
}

// NewFrameEncoder creates a new FrameEncoder with the provided options
// applied. By default the worker count is one below the CPU count, leaving a
// core for the thread that commits the frame.
//
// Parameters:
//   - options: a variadic list of FrameEncoderBuilderOption functions
//
// Returns:
//   - FrameEncoder: the configured frame encoder
func NewFrameEncoder(options ...FrameEncoderBuilderOption) FrameEncoder {
	e := &frameEncoderImpl{
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(e)
	}
	e.pool = worker.NewDynamicWorkerPool(e.workers, 256, 1*time.Second)
	return e
}
