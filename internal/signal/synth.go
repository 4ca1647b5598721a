// Package signal synthesizes and measures test signals for validating
// low-pass designs: pure tones, Gaussian white noise and constants, all
// sampled uniformly at a given rate.
package signal

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NumSamples returns the number of samples in duration seconds at sampleRate.
func NumSamples(duration, sampleRate float64) int {
	n := int(duration * sampleRate)
	if n < 0 {
		return 0
	}
	return n
}

// Tone generates mag·sin(2π·freq·t) sampled at t = i/sampleRate.
func Tone(duration, freq, mag, sampleRate float64) []float64 {
	out := make([]float64, NumSamples(duration, sampleRate))
	step := twoPi * freq / sampleRate
	for i := range out {
		out[i] = mag * math.Sin(step*float64(i))
	}
	return out
}

// Noise generates zero-mean Gaussian white noise with the given standard
// deviation. The same seed always yields the same sequence.
func Noise(duration, stdDev, sampleRate float64, seed uint64) []float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: stdDev,
		Src:   rand.NewPCG(seed, seed),
	}

	out := make([]float64, NumSamples(duration, sampleRate))
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// Constant generates a DC signal.
func Constant(duration, value, sampleRate float64) []float64 {
	out := make([]float64, NumSamples(duration, sampleRate))
	for i := range out {
		out[i] = value
	}
	return out
}

// Mix returns the element-wise sum of the signals, truncated to the shortest.
func Mix(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}

	n := len(signals[0])
	for _, s := range signals[1:] {
		n = min(n, len(s))
	}

	out := make([]float64, n)
	for _, s := range signals {
		for i := range out {
			out[i] += s[i]
		}
	}
	return out
}

// ToFloat32 converts a signal to float32.
func ToFloat32(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}
	return out
}
