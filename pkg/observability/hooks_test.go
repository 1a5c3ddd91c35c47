package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "licenses.json")
	p.OnLoadComplete(ctx, "licenses.json", "cargo-license", 12, time.Millisecond, nil)
	p.OnSelectComplete(ctx, 10, 12, time.Millisecond, nil)
	p.OnRenderComplete(ctx, 10, 2048, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should keep the current hooks")
	}

	Pipeline().OnLoadStart(context.Background(), "x.json")
	if custom.loads != 1 {
		t.Errorf("loads = %d, want 1", custom.loads)
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

type testPipelineHooks struct {
	NoopPipelineHooks
	loads int
}

func (h *testPipelineHooks) OnLoadStart(context.Context, string) { h.loads++ }
