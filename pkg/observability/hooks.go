// Package observability provides hooks for instrumenting notice generation.
//
// The pipeline package calls the registered hooks around each stage; the
// CLI registers an implementation that writes debug log lines. Library
// users can register their own to collect timings or counts without
// noticegen depending on any metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLoadStart(ctx, path)
//	// ... read and decode ...
//	observability.Pipeline().OnLoadComplete(ctx, path, shape, len(records), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the notice pipeline.
type PipelineHooks interface {
	// OnLoadStart fires before the input file is read.
	OnLoadStart(ctx context.Context, path string)
	// OnLoadComplete reports the detected input shape and record count.
	OnLoadComplete(ctx context.Context, path, shape string, records int, duration time.Duration, err error)

	// OnSelectComplete reports how many of total records survived filtering.
	OnSelectComplete(ctx context.Context, kept, total int, duration time.Duration, err error)

	// OnRenderComplete reports the number of rendered bodies and output size.
	OnRenderComplete(ctx context.Context, bodies, size int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string) {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnSelectComplete(context.Context, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, int, int, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op defaults. Mostly useful in tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
