package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	keyframes "github.com/tphakala/go-keyframes"
)

// renderSpec describes an envelope rendering job.
type renderSpec struct {
	sampleRate int
	bitDepth   int
	duration   float64 // seconds
	gain       float64
}

func (r renderSpec) validate() error {
	if r.sampleRate < minSampleRate || r.sampleRate > maxSampleRate {
		return fmt.Errorf("sample rate must be %d-%d Hz", minSampleRate, maxSampleRate)
	}
	if r.bitDepth != bitsPerSample16 && r.bitDepth != bitsPerSample24 {
		return fmt.Errorf("bit depth must be %d or %d", bitsPerSample16, bitsPerSample24)
	}
	if r.duration <= 0 || math.IsInf(r.duration, 0) || math.IsNaN(r.duration) {
		return errors.New("duration must be positive")
	}
	if r.totalSamples() < minRenderSamples {
		return errors.New("duration too short for sample rate")
	}
	return nil
}

// totalSamples is the number of samples covering [0, duration).
func (r renderSpec) totalSamples() int {
	return int(r.duration * float64(r.sampleRate))
}

// getMaxValue returns the maximum sample value for a bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	default:
		return maxInt16
	}
}

// quantize converts normalized samples to integers, clipping to [-1, 1].
func quantize(dst []int, src []float64, maxVal float64) {
	for i, v := range src {
		v = math.Max(-1, math.Min(1, v))
		dst[i] = int(math.Round(v * maxVal))
	}
}

// renderEnvelope evaluates curve at t = i/sampleRate for every output sample,
// in chunks of at most chunkSize samples, and hands each quantized chunk to emit.
func renderEnvelope(curve *keyframes.Curve, spec renderSpec, chunkSize int, emit func([]int) error) error {
	total := spec.totalSamples()
	rate := float64(spec.sampleRate)
	maxVal := getMaxValue(spec.bitDepth)

	values := make([]float64, chunkSize+1)
	ints := make([]int, chunkSize+1)

	for start := 0; start < total; {
		end := min(start+chunkSize, total)
		// Render needs two grid points; fold a trailing single sample into this chunk.
		if total-end == 1 {
			end = total
		}

		n := end - start
		from := float64(start) / rate
		to := float64(end-1) / rate
		if err := curve.Render(values[:n], from, to, spec.gain); err != nil {
			return fmt.Errorf("render samples %d-%d: %w", start, end, err)
		}

		quantize(ints[:n], values[:n], maxVal)
		if err := emit(ints[:n]); err != nil {
			return err
		}

		start = end
	}

	return nil
}

// writeEnvelopeWAV renders curve into a mono PCM WAV file at path and returns
// the number of samples written.
func writeEnvelopeWAV(path string, curve *keyframes.Curve, spec renderSpec) (int, error) {
	if err := spec.validate(); err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, spec.sampleRate, spec.bitDepth, monoChannels, wavFormatPCM)
	format := &audio.Format{NumChannels: monoChannels, SampleRate: spec.sampleRate}

	written := 0
	err = renderEnvelope(curve, spec, bufferSize, func(chunk []int) error {
		buf := &audio.IntBuffer{
			Format:         format,
			Data:           chunk,
			SourceBitDepth: spec.bitDepth,
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("failed to write samples: %w", err)
		}
		written += len(chunk)
		return nil
	})
	if err != nil {
		_ = enc.Close()
		_ = f.Close()
		return 0, err
	}

	if err := enc.Close(); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("failed to finalize WAV: %w", err)
	}

	if err := f.Close(); err != nil {
		return 0, err
	}

	return written, nil
}
