// Command analyze-filter prints the coefficients, poles and magnitude
// response of a Butterworth low-pass design.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/cmplx"
	"os"

	lowpass "github.com/tphakala/go-audio-lowpass"
	"github.com/tphakala/simd/cpu"
)

const (
	defaultCutoff     = 1000.0
	defaultOrder      = 4
	defaultSampleRate = 44100.0
	defaultPoints     = 16
)

// Response table probe points as multiples of the cutoff.
var cutoffMultiples = []float64{0.5, 1, 2, 4, 8}

func main() {
	var (
		cutoff     = flag.Float64("cutoff", defaultCutoff, "Cutoff frequency in Hz")
		order      = flag.Int("order", defaultOrder, "Filter order (1-64)")
		sampleRate = flag.Float64("rate", defaultSampleRate, "Sample rate in Hz")
		precision  = flag.String("precision", "float64", "Coefficient precision: float32, float64")
		points     = flag.Int("points", defaultPoints, "Response points from DC to Nyquist")
	)
	flag.Parse()

	prec, err := lowpass.ParsePrecision(*precision)
	if err != nil {
		log.Fatal(err)
	}

	if err := analyze(os.Stdout, *cutoff, *order, *sampleRate, prec, *points); err != nil {
		log.Fatal(err)
	}
}

func analyze(w io.Writer, cutoff float64, order int, sampleRate float64, prec lowpass.Precision, points int) error {
	fmt.Fprintln(w, "=== Analyzing Butterworth Low-Pass ===")
	fmt.Fprintf(w, "CPU: %s\n\n", cpu.Info())

	maxOrder, err := lowpass.MaxStableOrder(cutoff, sampleRate, prec)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Max stable order at %g Hz (%s): %d\n\n", cutoff, prec, maxOrder)

	c, err := lowpass.Design(cutoff, order, sampleRate, prec)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Coefficients (order %d):\n", c.Order)
	for i := range c.B {
		fmt.Fprintf(w, "  b[%2d] = % .17e   a[%2d] = % .17e\n", i, c.B[i], i, c.A[i])
	}

	poles, err := c.Poles()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nPoles:")
	for i, p := range poles {
		fmt.Fprintf(w, "  p[%2d] = % .12f %+.12fi  |p| = %.12f\n", i, real(p), imag(p), cmplx.Abs(p))
	}
	radius, err := c.MaxPoleRadius()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  max radius: %.12f\n", radius)
	fmt.Fprintf(w, "\nDC gain: %.12f\n", c.DCGain())

	fmt.Fprintln(w, "\nResponse at cutoff multiples:")
	for _, m := range cutoffMultiples {
		freq := m * cutoff
		if freq >= sampleRate/2 {
			continue
		}
		fmt.Fprintf(w, "  %4.1fx %10.1f Hz: %8.2f dB\n", m, freq, lowpass.MagnitudeDB(c.GainAt(freq)))
	}

	fmt.Fprintln(w, "\nResponse from DC to Nyquist:")
	resp := c.FrequencyResponse(points)
	for i := range resp.Frequencies {
		fmt.Fprintf(w, "  %10.1f Hz: %8.2f dB  phase %7.3f rad\n",
			resp.Frequencies[i], lowpass.MagnitudeDB(resp.Magnitude[i]), resp.Phase[i])
	}

	return nil
}
