package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	lowpass "github.com/tphakala/go-audio-lowpass"
	"github.com/tphakala/go-audio-lowpass/internal/wavio"
)

// filterOptions holds the command-line settings of one run.
type filterOptions struct {
	cutoff    float64
	order     int
	precision lowpass.Precision
	bankPath  string
	parallel  bool
	verbose   bool
}

type filterStats struct {
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64
	cutoff     float64
	order      int
	precision  lowpass.Precision
}

// loadCoefficients designs the filter, or looks it up in a bank when
// opts.bankPath is set.
func loadCoefficients(opts filterOptions, sampleRate int) (*lowpass.Coefficients, error) {
	if opts.bankPath == "" {
		return lowpass.Design(opts.cutoff, opts.order, float64(sampleRate), opts.precision)
	}

	f, err := os.Open(opts.bankPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open bank: %w", err)
	}
	defer func() { _ = f.Close() }()

	bank, err := lowpass.ReadBank(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.bankPath, err)
	}
	if bank.SampleRate != float64(sampleRate) {
		return nil, fmt.Errorf("bank is designed for %g Hz, input is %d Hz", bank.SampleRate, sampleRate)
	}

	return bank.Lookup(opts.cutoff)
}

// createChannelFilters creates one streaming filter per channel.
func createChannelFilters[F lowpass.Float](numChannels int, coeffs *lowpass.Coefficients) ([]*lowpass.StreamingFilter[F], error) {
	filters := make([]*lowpass.StreamingFilter[F], numChannels)
	for ch := range numChannels {
		f, err := lowpass.NewStreamingFilter[F](coeffs)
		if err != nil {
			return nil, fmt.Errorf("failed to create filter for channel %d: %w", ch, err)
		}
		filters[ch] = f
	}
	return filters, nil
}

// newChannelBuffers allocates one read buffer per channel.
func newChannelBuffers[F lowpass.Float](channels int) [][]F {
	bufs := make([][]F, channels)
	for ch := range channels {
		bufs[ch] = make([]F, wavio.FramesPerRead)
	}
	return bufs
}

// filterChannelData filters the first frames samples of every channel in
// place, concurrently when parallel is set and there is more than one channel.
func filterChannelData[F lowpass.Float](filters []*lowpass.StreamingFilter[F], channelBufs [][]F, frames int, parallel bool) {
	if parallel && len(filters) > 1 {
		filterParallel(filters, channelBufs, frames)
		return
	}
	filterSequential(filters, channelBufs, frames)
}

func filterParallel[F lowpass.Float](filters []*lowpass.StreamingFilter[F], channelBufs [][]F, frames int) {
	var wg sync.WaitGroup
	for ch := range filters {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			buf := channelBufs[channel][:frames]
			filters[channel].ProcessBlock(buf, buf)
		}(ch)
	}
	wg.Wait()
}

func filterSequential[F lowpass.Float](filters []*lowpass.StreamingFilter[F], channelBufs [][]F, frames int) {
	for ch := range filters {
		buf := channelBufs[ch][:frames]
		filters[ch].ProcessBlock(buf, buf)
	}
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalFrames  int64
	lastProgress int
	verbose      bool
}

func newProgressTracker(totalFrames int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalFrames: totalFrames,
		verbose:     verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentFrames int64) {
	if !p.verbose || p.totalFrames == 0 {
		return
	}

	progress := int(float64(currentFrames) / float64(p.totalFrames) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}

// filterWAV filters inputPath into outputPath, keeping rate, bit depth and
// channel layout.
func filterWAV[F lowpass.Float](inputPath, outputPath string, opts filterOptions) (stats *filterStats, err error) {
	input, err := wavio.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	if opts.verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", input.SampleRate, input.Channels, input.BitDepth)
	}

	coeffs, err := loadCoefficients(opts, input.SampleRate)
	if err != nil {
		return nil, err
	}
	if opts.verbose && coeffs.Cutoff != opts.cutoff {
		log.Printf("Bank design: %g Hz", coeffs.Cutoff)
	}

	filters, err := createChannelFilters[F](input.Channels, coeffs)
	if err != nil {
		return nil, err
	}

	output, err := wavio.Create(outputPath, input.SampleRate, input.BitDepth, input.Channels)
	if err != nil {
		return nil, err
	}
	// Capture close errors on the success path; Close writes the WAV header.
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	channelBufs := newChannelBuffers[F](input.Channels)
	progress := newProgressTracker(input.TotalFrames, opts.verbose)
	stats = &filterStats{
		sampleRate: input.SampleRate,
		channels:   input.Channels,
		bitDepth:   input.BitDepth,
		cutoff:     coeffs.Cutoff,
		order:      coeffs.Order,
		precision:  coeffs.Precision,
	}

	for {
		n, err := wavio.ReadInto(input, channelBufs)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		filterChannelData(filters, channelBufs, n, opts.parallel)

		if err := wavio.WriteFrom(output, channelBufs, n); err != nil {
			return nil, err
		}

		stats.frames += int64(n)
		progress.reportIfNeeded(stats.frames)
	}

	return stats, nil
}
