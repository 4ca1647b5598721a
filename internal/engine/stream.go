// Package engine implements the IIR recursion used to apply low-pass
// coefficients, in bulk over a materialized signal and one sample at a time
// for real-time hosts.
package engine

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-audio-lowpass/internal/simdops"
)

// ErrCoefficientMismatch indicates feedback and feedforward vectors of
// different lengths, or empty vectors.
var ErrCoefficientMismatch = errors.New("coefficient length mismatch")

// StreamingFilter applies an IIR recursion one sample at a time using two
// ring buffers of len(b) past inputs and outputs.
//
// Type parameter F controls the precision of the coefficients, the history
// and the arithmetic.
//
// A StreamingFilter is owned by exactly one signal stream and is not safe
// for concurrent use. ProcessSample and ProcessBlock never allocate, block
// or lock, so they may be called from a real-time audio callback.
type StreamingFilter[F simdops.Float] struct {
	// Coefficients, a in the sign-flipped convention (a[0] unused)
	a []F
	b []F

	// Ring buffers of the last len(b) inputs and outputs
	inHistory  []F
	outHistory []F
	ringIndex  int

	// Statistics
	samplesProcessed int64
}

// NewStreamingFilter creates a streaming filter for coefficients (a, b).
// The coefficients are copied; history starts at rest (all zero).
func NewStreamingFilter[F simdops.Float](a, b []F) (*StreamingFilter[F], error) {
	if len(b) == 0 || len(a) != len(b) {
		return nil, fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrCoefficientMismatch, len(a), len(b))
	}

	n := len(b)
	f := &StreamingFilter[F]{
		a:          make([]F, n),
		b:          make([]F, n),
		inHistory:  make([]F, n),
		outHistory: make([]F, n),
	}
	copy(f.a, a)
	copy(f.b, b)

	return f, nil
}

// ProcessSample filters one input sample:
//
//	y = b[0]·x + Σ_{i=1}^{len(b)-1} (a[i]·out[idx-i] + b[i]·in[idx-i])
//
// with ring indices taken modulo len(b). The first calls read the
// zero-initialized history, which is the start-from-rest transient.
func (f *StreamingFilter[F]) ProcessSample(x F) F {
	order := len(f.b)

	y := f.b[0] * x
	for i := 1; i < order; i++ {
		prev := f.ringIndex - i
		if prev < 0 {
			prev += order
		}
		y += f.a[i]*f.outHistory[prev] + f.b[i]*f.inHistory[prev]
	}

	f.inHistory[f.ringIndex] = x
	f.outHistory[f.ringIndex] = y
	f.ringIndex++
	if f.ringIndex == order {
		f.ringIndex = 0
	}

	f.samplesProcessed++
	return y
}

// ProcessBlock filters min(len(dst), len(src)) samples from src into dst and
// returns the number of samples written. dst and src may be the same slice.
func (f *StreamingFilter[F]) ProcessBlock(dst, src []F) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = f.ProcessSample(src[i])
	}
	return n
}

// Process filters input into a newly allocated slice.
// Intended for offline use; real-time callers should use ProcessBlock.
func (f *StreamingFilter[F]) Process(input []F) []F {
	output := make([]F, len(input))
	f.ProcessBlock(output, input)
	return output
}

// Reset clears the history so the next sample starts from rest.
// No memory is reallocated.
func (f *StreamingFilter[F]) Reset() {
	clear(f.inHistory)
	clear(f.outHistory)
	f.ringIndex = 0
	f.samplesProcessed = 0
}

// Order returns the filter order (len(b) - 1).
func (f *StreamingFilter[F]) Order() int {
	return len(f.b) - 1
}

// HistoryLen returns the length of each ring buffer.
func (f *StreamingFilter[F]) HistoryLen() int {
	return len(f.inHistory)
}

// SamplesProcessed returns the number of samples filtered since creation or
// the last Reset.
func (f *StreamingFilter[F]) SamplesProcessed() int64 {
	return f.samplesProcessed
}

// MemoryUsage returns approximate memory usage of coefficients and history in bytes.
func (f *StreamingFilter[F]) MemoryUsage() int64 {
	elements := len(f.a) + len(f.b) + len(f.inHistory) + len(f.outHistory)
	return int64(elements * simdops.BytesPerSample[F]())
}

// Coefficients returns copies of the feedback and feedforward coefficients.
func (f *StreamingFilter[F]) Coefficients() (a, b []F) {
	a = make([]F, len(f.a))
	b = make([]F, len(f.b))
	copy(a, f.a)
	copy(b, f.b)
	return a, b
}
