// Command gen-signal writes test signals to WAV files.
//
// Usage:
//
//	gen-signal -type tone -freq 1000 tone.wav
//	gen-signal -type noise -stddev 0.1 -seed 7 noise.wav
//	gen-signal -type mix -freq 1000 -freq2 10000 mix.wav
//
// The files are meant as input for lowpass-wav and for listening tests.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tphakala/go-audio-lowpass/internal/signal"
	"github.com/tphakala/go-audio-lowpass/internal/wavio"
)

// Signal types
const (
	typeTone  = "tone"
	typeNoise = "noise"
	typeMix   = "mix"
)

// CLI defaults
const (
	defaultType      = typeTone
	defaultFreq      = 1000.0
	defaultFreq2     = 10000.0
	defaultAmplitude = 0.5
	defaultStdDev    = 0.1
	defaultDuration  = 1.0
	defaultRate      = 44100
	defaultBits      = wavio.BitDepth16
	defaultChannels  = 1
	minRequiredArgs  = 1
)

// signalOptions describes the signal to generate.
type signalOptions struct {
	kind       string
	freq       float64
	freq2      float64
	amplitude  float64
	stdDev     float64
	seed       uint64
	duration   float64
	sampleRate int
	bitDepth   int
	channels   int
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var opts signalOptions
	flag.StringVar(&opts.kind, "type", defaultType, "Signal type: tone, noise, mix (two tones)")
	flag.Float64Var(&opts.freq, "freq", defaultFreq, "Tone frequency in Hz")
	flag.Float64Var(&opts.freq2, "freq2", defaultFreq2, "Second tone frequency in Hz (mix)")
	flag.Float64Var(&opts.amplitude, "amp", defaultAmplitude, "Tone amplitude (full scale = 1)")
	flag.Float64Var(&opts.stdDev, "stddev", defaultStdDev, "Noise standard deviation (full scale = 1)")
	flag.Uint64Var(&opts.seed, "seed", 1, "Noise seed")
	flag.Float64Var(&opts.duration, "duration", defaultDuration, "Duration in seconds")
	flag.IntVar(&opts.sampleRate, "rate", defaultRate, "Sample rate in Hz")
	flag.IntVar(&opts.bitDepth, "bits", defaultBits, "Bit depth: 16, 24 or 32")
	flag.IntVar(&opts.channels, "channels", defaultChannels, "Number of identical channels")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errors.New("missing output path")
	}

	if *verbose {
		log.Printf("Signal: %s, %g s at %d Hz, %d-bit, %d channels",
			opts.kind, opts.duration, opts.sampleRate, opts.bitDepth, opts.channels)
	}

	frames, err := writeSignal(args[0], opts)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s: %d frames\n", filepath.Base(args[0]), frames)
	return nil
}

// generate synthesizes one channel of the requested signal.
func generate(opts signalOptions) ([]float64, error) {
	rate := float64(opts.sampleRate)
	if opts.sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", opts.sampleRate)
	}

	switch opts.kind {
	case typeTone:
		return signal.Tone(opts.duration, opts.freq, opts.amplitude, rate), nil
	case typeNoise:
		return signal.Noise(opts.duration, opts.stdDev, rate, opts.seed), nil
	case typeMix:
		return signal.Mix(
			signal.Tone(opts.duration, opts.freq, opts.amplitude, rate),
			signal.Tone(opts.duration, opts.freq2, opts.amplitude, rate),
		), nil
	default:
		return nil, fmt.Errorf("unknown signal type %q", opts.kind)
	}
}

// writeSignal generates the signal and writes it to path, duplicated on
// every channel. It returns the number of frames written.
func writeSignal(path string, opts signalOptions) (frames int64, err error) {
	if opts.channels < 1 {
		return 0, fmt.Errorf("invalid channel count %d", opts.channels)
	}

	mono, err := generate(opts)
	if err != nil {
		return 0, err
	}

	w, err := wavio.Create(path, opts.sampleRate, opts.bitDepth, opts.channels)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := w.Close(); err == nil {
			err = closeErr
		}
	}()

	channels := make([][]float64, opts.channels)
	for ch := range channels {
		channels[ch] = mono
	}

	if err := wavio.WriteFrom(w, channels, len(mono)); err != nil {
		return 0, err
	}
	return w.Frames(), nil
}
