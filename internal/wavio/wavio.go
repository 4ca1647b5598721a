// Package wavio reads and writes PCM WAV files as normalized per-channel
// float samples on top of github.com/go-audio/wav.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/go-audio-lowpass/internal/simdops"
)

var (
	// ErrInvalidWAV indicates a file that is not a readable PCM WAV file.
	ErrInvalidWAV = errors.New("invalid WAV file")

	// ErrUnsupportedBitDepth indicates a bit depth other than 16, 24 or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)

// MaxValue returns the full-scale integer value for a bit depth.
func MaxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case BitDepth16:
		return maxInt16, nil
	case BitDepth24:
		return maxInt24, nil
	case BitDepth32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// Reader decodes a WAV file in blocks of frames.
type Reader struct {
	file    *os.File
	decoder *wav.Decoder
	buf     *audio.IntBuffer

	invMaxVal float64

	SampleRate  int
	Channels    int
	BitDepth    int
	TotalFrames int64
}

// Open opens and validates a WAV file.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrInvalidWAV, path)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)
	maxVal, err := MaxValue(bitDepth)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if format.NumChannels < 1 {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidWAV, format.NumChannels)
	}

	var totalFrames int64
	if duration, err := decoder.Duration(); err == nil {
		totalFrames = int64(duration.Seconds() * float64(format.SampleRate))
	}

	return &Reader{
		file:    f,
		decoder: decoder,
		buf: &audio.IntBuffer{
			Data:   make([]int, FramesPerRead*format.NumChannels),
			Format: format,
		},
		invMaxVal:   1 / maxVal,
		SampleRate:  format.SampleRate,
		Channels:    format.NumChannels,
		BitDepth:    bitDepth,
		TotalFrames: totalFrames,
	}, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// ReadInto decodes up to FramesPerRead frames into dst (one slice per
// channel, each at least FramesPerRead long), normalized to [-1, 1].
// It returns the number of frames read, and io.EOF once the data chunk is
// exhausted.
func ReadInto[F simdops.Float](r *Reader, dst [][]F) (int, error) {
	r.buf.Data = r.buf.Data[:cap(r.buf.Data)]

	n, err := r.decoder.PCMBuffer(r.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to read audio data: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	frames := n / r.Channels
	Deinterleave(r.buf.Data[:frames*r.Channels], dst, frames, r.invMaxVal)
	return frames, nil
}

// Writer encodes PCM frames to a WAV file.
type Writer struct {
	file    *os.File
	encoder *wav.Encoder
	buf     *audio.IntBuffer

	maxVal   float64
	channels int
	frames   int64
}

// Create creates a PCM WAV file.
func Create(path string, sampleRate, bitDepth, channels int) (*Writer, error) {
	maxVal, err := MaxValue(bitDepth)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		file:    f,
		encoder: wav.NewEncoder(f, sampleRate, bitDepth, channels, pcmFormat),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: bitDepth,
		},
		maxVal:   maxVal,
		channels: channels,
	}, nil
}

// WriteFrom encodes the first frames samples of every channel in src.
// Samples are clamped to [-1, 1] before conversion.
func WriteFrom[F simdops.Float](w *Writer, src [][]F, frames int) error {
	if len(src) != w.channels {
		return fmt.Errorf("expected %d channels, got %d", w.channels, len(src))
	}

	needed := frames * w.channels
	if cap(w.buf.Data) < needed {
		w.buf.Data = make([]int, needed)
	}
	w.buf.Data = w.buf.Data[:needed]

	Interleave(src, frames, w.buf.Data, w.maxVal)
	if err := w.encoder.Write(w.buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}

	w.frames += int64(frames)
	return nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int64 {
	return w.frames
}

// Close finalizes the WAV header and closes the file.
func (w *Writer) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return w.file.Close()
}

// Deinterleave converts interleaved integer samples into per-channel
// buffers scaled by invMaxVal.
func Deinterleave[F simdops.Float](data []int, dst [][]F, frames int, invMaxVal float64) {
	numChannels := len(dst)
	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			dst[ch][i] = F(float64(data[base+ch]) * invMaxVal)
		}
	}
}

// Interleave converts per-channel samples into interleaved integers scaled
// by maxVal, clamping each sample to [-1, 1].
func Interleave[F simdops.Float](src [][]F, frames int, dst []int, maxVal float64) {
	numChannels := len(src)
	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			sample := max(-1, min(1, float64(src[ch][i])))
			dst[base+ch] = int(sample * maxVal)
		}
	}
}
