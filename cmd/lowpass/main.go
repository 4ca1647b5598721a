// Command lowpass designs Butterworth low-pass filters, runs a test signal
// through them and optionally writes a coefficient bank.
//
// Usage:
//
//	lowpass -cutoff 1000 -order 4
//	lowpass -demo
//	lowpass -bank bank.yaml -cutoffs 500,1000,2000,4000
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	lowpass "github.com/tphakala/go-audio-lowpass"
	"github.com/tphakala/go-audio-lowpass/internal/signal"
)

func main() {
	var (
		cutoff     = flag.Float64("cutoff", defaultCutoff, "Cutoff frequency in Hz")
		order      = flag.Int("order", defaultOrder, "Filter order (1-64)")
		sampleRate = flag.Float64("rate", defaultSampleRate, "Sample rate in Hz")
		channels   = flag.Int("channels", defaultChannels, "Number of audio channels")
		precision  = flag.String("precision", defaultPrecision, "Coefficient precision: float32, float64")
		bankPath   = flag.String("bank", "", "Write a coefficient bank to this YAML file")
		cutoffList = flag.String("cutoffs", "", "Comma-separated cutoffs for -bank")
		demo       = flag.Bool("demo", false, "Run a demonstration")
	)
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	prec, err := lowpass.ParsePrecision(*precision)
	if err != nil {
		log.Fatalf("Invalid precision: %v", err)
	}

	if *bankPath != "" {
		cutoffs, err := parseCutoffs(*cutoffList)
		if err != nil {
			log.Fatalf("Invalid cutoffs: %v", err)
		}
		if err := writeBank(*bankPath, cutoffs, *order, *sampleRate, prec); err != nil {
			log.Fatalf("Failed to write bank: %v", err)
		}
		fmt.Printf("Wrote %d designs to %s\n", len(cutoffs), *bankPath)
		return
	}

	config := lowpass.Config{
		Cutoff:     *cutoff,
		Order:      *order,
		SampleRate: *sampleRate,
		Precision:  prec,
		Channels:   *channels,
	}

	f, err := lowpass.New(&config)
	if err != nil {
		log.Fatalf("Failed to create filter: %v", err)
	}

	printFilter(f)

	fmt.Println("\nProcessing test signal...")
	report, err := measureTestSignal(f.Coefficients())
	if err != nil {
		log.Fatalf("Processing failed: %v", err)
	}
	fmt.Print(report)
}

func printFilter(f *lowpass.Filter) {
	info := f.GetInfo()
	c := f.Coefficients()

	fmt.Printf("Filter created:\n")
	fmt.Printf("  Cutoff: %g Hz at %g Hz\n", c.Cutoff, c.SampleRate)
	fmt.Printf("  Order: %d\n", info.Order)
	fmt.Printf("  Precision: %s\n", info.Precision)
	fmt.Printf("  Channels: %d\n", info.Channels)
	fmt.Printf("  History: %d samples per channel\n", info.HistoryLen)
	fmt.Printf("  Memory usage: %.2f KB\n", float64(info.MemoryUsage)/bytesPerKilobyte)
	fmt.Printf("  SIMD: %s\n", info.SIMDType)

	if radius, err := c.MaxPoleRadius(); err == nil {
		fmt.Printf("  Max pole radius: %.9f\n", radius)
	}
	fmt.Printf("  DC gain: %.9f\n", c.DCGain())
}

// measureTestSignal filters an in-band and an out-of-band tone and reports
// their steady-state amplitudes.
func measureTestSignal(c *lowpass.Coefficients) (string, error) {
	var sb strings.Builder
	for _, freq := range []float64{testSignalLowFreq, testSignalHighFreq} {
		if freq >= c.SampleRate/2 {
			continue
		}
		tone := signal.Tone(testSignalDuration, freq, 1, c.SampleRate)
		out, err := lowpass.ApplyCoefficients(tone, c)
		if err != nil {
			return "", err
		}
		amp := signal.SteadyStateAmplitude(out, testSignalTail)
		fmt.Fprintf(&sb, "  %6.0f Hz: amplitude %.4f (%.1f dB), response %.1f dB\n",
			freq, amp, lowpass.MagnitudeDB(amp), lowpass.MagnitudeDB(c.GainAt(freq)))
	}
	return sb.String(), nil
}

// parseCutoffs parses a comma-separated list of frequencies.
func parseCutoffs(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("no cutoffs given (use -cutoffs)")
	}

	fields := strings.Split(s, ",")
	cutoffs := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", field, err)
		}
		cutoffs = append(cutoffs, v)
	}
	return cutoffs, nil
}

func writeBank(path string, cutoffs []float64, order int, sampleRate float64, precision lowpass.Precision) (err error) {
	bank, err := lowpass.NewBank(cutoffs, order, sampleRate, precision)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return lowpass.WriteBank(f, bank)
}

func runDemo() {
	fmt.Println("=== Go Audio Low-Pass Filter Demo ===")

	fmt.Println("1. Comparing Orders")
	fmt.Println("-------------------")

	rates := []struct {
		rate float64
		name string
	}{
		{sampleRateSpeech, "Speech"},
		{sampleRateCD, "CD"},
		{sampleRateDAT, "DAT"},
		{sampleRateHiRes, "Hi-res"},
	}

	for _, r := range rates {
		fmt.Printf("\n%s (%.0f Hz, cutoff %.0f Hz):\n", r.name, r.rate, defaultCutoff)

		for _, order := range demoOrders {
			c, err := lowpass.Design(defaultCutoff, order, r.rate, lowpass.Float64)
			if err != nil {
				fmt.Printf("  Order %d: Error - %v\n", order, err)
				continue
			}
			fmt.Printf("  Order %d: %6.1f dB at 2x cutoff, %6.1f dB at 4x cutoff\n",
				order,
				lowpass.MagnitudeDB(c.GainAt(2*defaultCutoff)),
				lowpass.MagnitudeDB(c.GainAt(4*defaultCutoff)))
		}
	}

	fmt.Println("\n2. Precision Limits")
	fmt.Println("-------------------")
	for _, cutoff := range []float64{20, 100, 1000, 10000} {
		for _, p := range []lowpass.Precision{lowpass.Float32, lowpass.Float64} {
			maxOrder, err := lowpass.MaxStableOrder(cutoff, sampleRateCD, p)
			if err != nil {
				fmt.Printf("  %6.0f Hz %s: Error - %v\n", cutoff, p, err)
				continue
			}
			fmt.Printf("  %6.0f Hz %s: max stable order %d\n", cutoff, p, maxOrder)
		}
	}

	fmt.Println("\n3. Test Signal")
	fmt.Println("--------------")
	c, err := lowpass.Design(defaultCutoff, defaultOrder, sampleRateCD, lowpass.Float64)
	if err != nil {
		fmt.Printf("  Error - %v\n", err)
		return
	}
	report, err := measureTestSignal(c)
	if err != nil {
		fmt.Printf("  Error - %v\n", err)
		return
	}
	fmt.Print(report)
}
