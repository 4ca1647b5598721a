// Package lowpass designs Butterworth low-pass filters and applies them to
// audio in pure Go.
//
// A filter is specified by its cutoff frequency, order, sample rate and
// coefficient precision. Design derives the analog Butterworth prototype,
// discretizes it with the bilinear (Tustin) transform and verifies that every
// pole of the result lies strictly inside the unit circle.
//
// # Features
//
//   - Butterworth design for any order up to [MaxOrder], in float64 or float32 storage
//   - Pole validation so unusable coefficients are rejected instead of returned
//   - Bulk filtering of whole signals with SIMD dot products via github.com/tphakala/simd
//   - Allocation-free per-sample streaming suitable for real-time audio callbacks
//   - Multi-channel filtering with optional per-channel goroutines
//   - YAML coefficient banks for hosts that look designs up by cutoff
//
// # Quick Start
//
// For one-shot filtering of a mono signal:
//
//	output, err := lowpass.FilterMono(input, 1000, 2, 44100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For real-time use, design once and run a streaming filter per channel:
//
//	coeffs, err := lowpass.Design(1000, 4, 44100, lowpass.Float32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f, err := lowpass.NewStreamingFilter[float32](coeffs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// inside the audio callback
//	f.ProcessBlock(block, block)
//
// # Coefficient Convention
//
// [Coefficients.A] holds the negated discrete denominator, so A[0] is -1 and
// the recursion is a single accumulation:
//
//	y[m] = B[0]·x[m] + Σ (A[i]·y[m-i] + B[i]·x[m-i])
//
// # Bulk and Streaming Output
//
// [Apply] leaves the first len(B) output samples at zero (the warm-up region)
// and computes every later sample from the recursion. A [StreamingFilter]
// starts from rest and has no warm-up region, so the two agree exactly when
// the first len(B) input samples are zero.
//
// # Maximum Order
//
// High orders at low cutoffs push the poles towards z = 1 until rounding
// moves one onto or outside the unit circle. Design reports this as
// [ErrNumericInstability]. [MaxStableOrder] finds the highest usable order
// for a cutoff, sample rate and precision.
//
// # Thread Safety
//
// Design, Apply and the analysis functions are pure and safe for concurrent
// use. A [StreamingFilter] belongs to one signal stream and must not be
// shared. Calls on one [Filter] must be serialized; [Filter.ProcessMulti]
// may process its channels concurrently because channel states are disjoint.
package lowpass
