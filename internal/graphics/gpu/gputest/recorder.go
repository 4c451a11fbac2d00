// Package gputest provides a recording gpu.Driver for tests that run
// without a graphics context.
package gputest

import (
	"errors"

	"chunkmesh/internal/graphics/gpu"
)

// ErrOutOfMemory is what FailNext injects by default.
var ErrOutOfMemory = errors.New("gl error 0x505 (out of memory)")

// Attrib records one VertexAttrib call.
type Attrib struct {
	Index, Size, Stride, Offset int
}

// Draw records one DrawElementsBaseVertex call.
type Draw struct {
	VAO        uint32
	Count      int
	BaseVertex int
	Blending   bool
	DepthWrite bool
}

var _ gpu.Driver = (*Recorder)(nil)

// Recorder implements gpu.Driver in memory.
type Recorder struct {
	next uint32

	vaos    map[uint32]bool // live vertex arrays
	buffers map[uint32]bool // live buffers

	boundVAO uint32
	boundVBO uint32
	// element buffer bound into each VAO (0 is the default VAO)
	elementBinding map[uint32]uint32

	Attribs     []Attrib
	ArrayData   map[uint32][]float32
	ElementData map[uint32][]uint32
	Uploads     int
	Usages      []gpu.Usage
	Draws       []Draw

	DeletedVAOs    []uint32
	DeletedBuffers []uint32

	blending   bool
	depthWrite bool

	pending error
	failOn  string
}

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{
		vaos:           make(map[uint32]bool),
		buffers:        make(map[uint32]bool),
		elementBinding: make(map[uint32]uint32),
		ArrayData:      make(map[uint32][]float32),
		ElementData:    make(map[uint32][]uint32),
		depthWrite:     true,
	}
}

// FailNext makes the next call named op ("ArrayBufferData",
// "ElementBufferData" or "GenVertexArray") leave err pending.
func (r *Recorder) FailNext(op string, err error) {
	if err == nil {
		err = ErrOutOfMemory
	}
	r.failOn = op
	r.pending = err
}

func (r *Recorder) maybeFail(op string) bool {
	if r.failOn != op {
		return false
	}
	r.failOn = ""
	return true
}

func (r *Recorder) GenVertexArray() uint32 {
	r.next++
	r.vaos[r.next] = true
	r.maybeFail("GenVertexArray")
	return r.next
}

func (r *Recorder) GenBuffer() uint32 {
	r.next++
	r.buffers[r.next] = true
	return r.next
}

func (r *Recorder) DeleteVertexArray(vao uint32) {
	if !r.vaos[vao] {
		panic("gputest: delete of unknown or deleted vertex array")
	}
	delete(r.vaos, vao)
	r.DeletedVAOs = append(r.DeletedVAOs, vao)
}

func (r *Recorder) DeleteBuffer(buf uint32) {
	if !r.buffers[buf] {
		panic("gputest: delete of unknown or deleted buffer")
	}
	delete(r.buffers, buf)
	r.DeletedBuffers = append(r.DeletedBuffers, buf)
}

func (r *Recorder) BindVertexArray(vao uint32) {
	if vao != 0 && !r.vaos[vao] {
		panic("gputest: bind of deleted vertex array")
	}
	r.boundVAO = vao
}

func (r *Recorder) BindArrayBuffer(vbo uint32) {
	if vbo != 0 && !r.buffers[vbo] {
		panic("gputest: bind of deleted buffer")
	}
	r.boundVBO = vbo
}

func (r *Recorder) BindElementBuffer(ibo uint32) {
	r.elementBinding[r.boundVAO] = ibo
}

func (r *Recorder) VertexAttrib(index uint32, size, stride, offset int) {
	r.Attribs = append(r.Attribs, Attrib{Index: int(index), Size: size, Stride: stride, Offset: offset})
}

func (r *Recorder) ArrayBufferData(data []float32, usage gpu.Usage) {
	if r.maybeFail("ArrayBufferData") {
		return
	}
	r.ArrayData[r.boundVBO] = append([]float32(nil), data...)
	r.Uploads++
	r.Usages = append(r.Usages, usage)
}

func (r *Recorder) ElementBufferData(data []uint32, usage gpu.Usage) {
	if r.maybeFail("ElementBufferData") {
		return
	}
	ibo := r.elementBinding[r.boundVAO]
	r.ElementData[ibo] = append([]uint32(nil), data...)
}

func (r *Recorder) DrawElementsBaseVertex(count, baseVertex int) {
	r.Draws = append(r.Draws, Draw{
		VAO:        r.boundVAO,
		Count:      count,
		BaseVertex: baseVertex,
		Blending:   r.blending,
		DepthWrite: r.depthWrite,
	})
}

func (r *Recorder) SetBlending(enabled bool)   { r.blending = enabled }
func (r *Recorder) SetDepthWrite(enabled bool) { r.depthWrite = enabled }

func (r *Recorder) Err() error {
	if r.failOn != "" {
		// armed but not triggered yet
		return nil
	}
	err := r.pending
	r.pending = nil
	return err
}

// ElementBufferOf returns the element buffer bound into vao.
func (r *Recorder) ElementBufferOf(vao uint32) uint32 {
	return r.elementBinding[vao]
}

// LiveVertexArrays returns how many vertex arrays are not deleted.
func (r *Recorder) LiveVertexArrays() int { return len(r.vaos) }

// LiveBuffers returns how many buffers are not deleted.
func (r *Recorder) LiveBuffers() int { return len(r.buffers) }

// Reset forgets recorded draws and uploads but keeps live handles.
func (r *Recorder) Reset() {
	r.Draws = nil
	r.Uploads = 0
	r.Usages = nil
}
