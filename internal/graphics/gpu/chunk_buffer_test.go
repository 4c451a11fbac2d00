package gpu_test

import (
	"errors"
	"reflect"
	"testing"

	"chunkmesh/internal/graphics/gpu"
	"chunkmesh/internal/graphics/gpu/gputest"
	"chunkmesh/internal/meshing"
)

func quads(n int) []float32 {
	return make([]float32, n*meshing.FloatsPerQuad)
}

func newBuffer(t *testing.T, maxQuads int) (*gputest.Recorder, *gpu.IndexBuffer, *gpu.ChunkBuffer) {
	t.Helper()
	rec := gputest.New()
	ib, err := gpu.NewIndexBuffer(rec, maxQuads)
	if err != nil {
		t.Fatalf("new index buffer: %v", err)
	}
	cb, err := gpu.NewChunkBuffer(rec, ib)
	if err != nil {
		t.Fatalf("new chunk buffer: %v", err)
	}
	return rec, ib, cb
}

func TestQuadIndices(t *testing.T) {
	got := gpu.QuadIndices(2)
	want := []uint32{0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNewChunkBufferLayout(t *testing.T) {
	rec, ib, _ := newBuffer(t, 16)
	want := []gputest.Attrib{
		{Index: 0, Size: 3, Stride: 7, Offset: 0},
		{Index: 1, Size: 3, Stride: 7, Offset: 3},
		{Index: 2, Size: 1, Stride: 7, Offset: 6},
	}
	if !reflect.DeepEqual(rec.Attribs, want) {
		t.Fatalf("attribs: got %+v, want %+v", rec.Attribs, want)
	}
	if rec.LiveVertexArrays() != 1 || rec.LiveBuffers() != 2 {
		t.Fatalf("live handles: %d vaos, %d buffers; want 1, 2", rec.LiveVertexArrays(), rec.LiveBuffers())
	}
	if got := len(rec.ElementData[ib.Handle()]); got != 16*6 {
		t.Fatalf("index count: got %d, want %d", got, 16*6)
	}
}

func TestUploadAndDrawSizing(t *testing.T) {
	rec, _, cb := newBuffer(t, 64)
	if err := cb.Upload(quads(10+5), 10, 5); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if cb.OpaqueQuads() != 10 || cb.TranslucentQuads() != 5 {
		t.Fatalf("counts: got %d/%d, want 10/5", cb.OpaqueQuads(), cb.TranslucentQuads())
	}
	if rec.Usages[0] != gpu.DynamicDraw {
		t.Fatalf("upload usage: got %v, want dynamic", rec.Usages[0])
	}

	cb.DrawOpaque()
	cb.DrawTranslucent()
	if len(rec.Draws) != 2 {
		t.Fatalf("draws: got %d, want 2", len(rec.Draws))
	}
	if d := rec.Draws[0]; d.Count != 60 || d.BaseVertex != 0 {
		t.Fatalf("opaque draw: got %+v, want 60 indices at 0", d)
	}
	if d := rec.Draws[1]; d.Count != 30 || d.BaseVertex != 40 {
		t.Fatalf("translucent draw: got %+v, want 30 indices at 40", d)
	}
}

func TestZeroQuadGuards(t *testing.T) {
	rec, _, cb := newBuffer(t, 64)
	cb.DrawOpaque()
	cb.DrawTranslucent()
	if len(rec.Draws) != 0 {
		t.Fatalf("empty buffer drew %d times", len(rec.Draws))
	}

	if err := cb.Upload(quads(3), 0, 3); err != nil {
		t.Fatalf("upload: %v", err)
	}
	cb.DrawOpaque()
	if len(rec.Draws) != 0 {
		t.Fatalf("opaque draw with zero opaque quads")
	}
	cb.DrawTranslucent()
	if len(rec.Draws) != 1 || rec.Draws[0].BaseVertex != 0 {
		t.Fatalf("translucent-only draw: got %+v", rec.Draws)
	}
}

func TestEmptyUploadSkipsBufferData(t *testing.T) {
	rec, _, cb := newBuffer(t, 64)
	if err := cb.Upload(quads(4), 4, 0); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := cb.Upload(nil, 0, 0); err != nil {
		t.Fatalf("empty upload: %v", err)
	}
	if rec.Uploads != 1 {
		t.Fatalf("buffer data calls: got %d, want 1", rec.Uploads)
	}
	if cb.OpaqueQuads() != 0 || cb.TranslucentQuads() != 0 {
		t.Fatalf("counts after empty upload: %d/%d", cb.OpaqueQuads(), cb.TranslucentQuads())
	}
	cb.DrawOpaque()
	if len(rec.Draws) != 0 {
		t.Fatalf("stale contents were drawn")
	}
}

func TestUploadRejectsBadInput(t *testing.T) {
	_, _, cb := newBuffer(t, 4)
	if err := cb.Upload(quads(2), 1, 2); !errors.Is(err, gpu.ErrLayout) {
		t.Fatalf("mismatched length: got %v, want ErrLayout", err)
	}
	if err := cb.Upload(quads(5), 5, 0); !errors.Is(err, gpu.ErrIndexCapacity) {
		t.Fatalf("over capacity: got %v, want ErrIndexCapacity", err)
	}
}

func TestUploadFailureResetsCounts(t *testing.T) {
	rec, _, cb := newBuffer(t, 64)
	if err := cb.Upload(quads(2), 2, 0); err != nil {
		t.Fatalf("upload: %v", err)
	}
	rec.FailNext("ArrayBufferData", nil)
	err := cb.Upload(quads(3), 3, 0)
	if !errors.Is(err, gputest.ErrOutOfMemory) {
		t.Fatalf("got %v, want out of memory", err)
	}
	if cb.OpaqueQuads() != 0 {
		t.Fatalf("counts survived failed upload: %d", cb.OpaqueQuads())
	}
}

func TestReleaseOnce(t *testing.T) {
	rec, ib, cb := newBuffer(t, 8)
	cb.Release()
	cb.Release()
	if len(rec.DeletedBuffers) != 1 || len(rec.DeletedVAOs) != 1 {
		t.Fatalf("deletes: %d buffers, %d vaos; want 1, 1", len(rec.DeletedBuffers), len(rec.DeletedVAOs))
	}
	if err := cb.Upload(quads(1), 1, 0); !errors.Is(err, gpu.ErrReleased) {
		t.Fatalf("upload after release: got %v, want ErrReleased", err)
	}
	cb.DrawOpaque()
	if len(rec.Draws) != 0 {
		t.Fatalf("released buffer drew")
	}

	ib.Release()
	ib.Release()
	if rec.LiveBuffers() != 0 || rec.LiveVertexArrays() != 0 {
		t.Fatalf("leaked handles: %d buffers, %d vaos", rec.LiveBuffers(), rec.LiveVertexArrays())
	}
}

func TestNewChunkBufferFailureReleases(t *testing.T) {
	rec := gputest.New()
	ib, err := gpu.NewIndexBuffer(rec, 4)
	if err != nil {
		t.Fatalf("new index buffer: %v", err)
	}
	rec.FailNext("GenVertexArray", nil)
	if _, err := gpu.NewChunkBuffer(rec, ib); err == nil {
		t.Fatalf("expected error from failed vertex array creation")
	}
	if rec.LiveVertexArrays() != 0 || rec.LiveBuffers() != 1 {
		t.Fatalf("failed construction leaked: %d vaos, %d buffers", rec.LiveVertexArrays(), rec.LiveBuffers())
	}
}
