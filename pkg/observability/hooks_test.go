package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPipelineHooks struct {
	NoopPipelineHooks
	loads   int
	layouts int
	renders int
}

func (r *recordingPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {
	r.loads++
}

func (r *recordingPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error) {
	r.layouts++
}

func (r *recordingPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	r.renders++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits   int
	misses int
	sets   int
}

func (r *recordingCacheHooks) OnCacheHit(context.Context, string)      { r.hits++ }
func (r *recordingCacheHooks) OnCacheMiss(context.Context, string)     { r.misses++ }
func (r *recordingCacheHooks) OnCacheSet(context.Context, string, int) { r.sets++ }

func TestSetPipelineHooks(t *testing.T) {
	defer Reset()

	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)

	ctx := context.Background()
	Pipeline().OnLoadComplete(ctx, "schedule.json", 3, time.Millisecond, nil)
	Pipeline().OnLayoutComplete(ctx, 5, time.Millisecond, nil)
	Pipeline().OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)

	if rec.loads != 1 || rec.layouts != 1 || rec.renders != 1 {
		t.Errorf("events = %d/%d/%d, want 1/1/1", rec.loads, rec.layouts, rec.renders)
	}
}

func TestSetCacheHooks(t *testing.T) {
	defer Reset()

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)

	ctx := context.Background()
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 1024)
	Cache().OnCacheHit(ctx, "artifact")

	if rec.hits != 1 || rec.misses != 1 || rec.sets != 1 {
		t.Errorf("events = %d/%d/%d, want 1/1/1", rec.hits, rec.misses, rec.sets)
	}
}

func TestSetHooksNilIgnored(t *testing.T) {
	defer Reset()

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)
	SetCacheHooks(nil)

	Cache().OnCacheHit(context.Background(), "artifact")
	if rec.hits != 1 {
		t.Error("nil registration replaced existing hooks")
	}
}

func TestReset(t *testing.T) {
	SetPipelineHooks(&recordingPipelineHooks{})
	SetCacheHooks(&recordingCacheHooks{})
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset did not restore no-op pipeline hooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset did not restore no-op cache hooks")
	}
}
