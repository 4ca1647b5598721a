// Command lowpass-wav applies a Butterworth low-pass filter to a WAV file.
//
// Usage:
//
//	lowpass-wav -cutoff 1000 input.wav output.wav
//	lowpass-wav -cutoff 3400 -order 6 speech.wav speech_lp.wav
//	lowpass-wav -cutoff 1000 -fast input.wav output.wav            # float32 coefficients and state
//	lowpass-wav -cutoff 1000 -bank filters.yaml input.wav out.wav  # look the design up in a bank
//
// Every channel runs its own streaming filter, so the output has the same
// length as the input and no warm-up region.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	lowpass "github.com/tphakala/go-audio-lowpass"
)

const (
	// CLI defaults
	defaultCutoffHz = 1000.0
	defaultOrder    = 2
	minRequiredArgs = 2

	// Progress reporting
	progressInterval = 10 // Print progress every N%
	percentScale     = 100
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cutoff := flag.Float64("cutoff", defaultCutoffHz, "Cutoff (-3 dB) frequency in Hz")
	order := flag.Int("order", defaultOrder, "Butterworth order (number of poles)")
	fast := flag.Bool("fast", false, "Use float32 coefficients and state")
	bankPath := flag.String("bank", "", "Look the design up in a YAML coefficient bank instead of designing it")
	parallel := flag.Bool("parallel", true, "Enable parallel channel processing (faster for stereo/multichannel)")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -cutoff 1000 input.wav output.wav          # 2nd order at 1 kHz\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -cutoff 3400 -order 6 speech.wav out.wav   # Telephone band\n", os.Args[0])
		return errors.New("insufficient arguments")
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	opts := filterOptions{
		cutoff:    *cutoff,
		order:     *order,
		precision: lowpass.Float64,
		bankPath:  *bankPath,
		parallel:  *parallel,
		verbose:   *verbose,
	}
	if *fast {
		opts.precision = lowpass.Float32
	}

	inputPath, outputPath := args[0], args[1]
	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Cutoff: %g Hz, order %d, %s", opts.cutoff, opts.order, opts.precision)
		if opts.bankPath != "" {
			log.Printf("Bank: %s", opts.bankPath)
		}
		if opts.parallel {
			log.Printf("Parallel: enabled (concurrent channel processing)")
		} else {
			log.Printf("Parallel: disabled (sequential processing)")
		}
	}

	start := time.Now()
	var stats *filterStats
	var err error
	if opts.precision == lowpass.Float32 {
		stats, err = filterWAV[float32](inputPath, outputPath, opts)
	} else {
		stats, err = filterWAV[float64](inputPath, outputPath, opts)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Filtered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit\n", stats.sampleRate, stats.channels, stats.bitDepth)
	fmt.Printf("  Low-pass %g Hz, order %d (%s)\n", stats.cutoff, stats.order, stats.precision)
	fmt.Printf("  %d frames, Duration: %.2fs, Speed: %.1fx realtime\n",
		stats.frames,
		elapsed.Seconds(),
		float64(stats.frames)/float64(stats.sampleRate)/elapsed.Seconds())

	return nil
}
