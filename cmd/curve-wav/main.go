// Command curve-wav renders a keyframe curve as a mono control envelope into
// a WAV file. Keys are seconds, values are normalized amplitude in [-1, 1].
//
// Usage:
//
//	curve-wav -points "0:0,0.1:1,1:0.5,2:0" envelope.wav
//	curve-wav -points "0:-60,1:0,3:-60" -modifier db -rate 96000 fade.wav
//	curve-wav -points "0:0,1:1,2:0" -kind monotone -duration 4 -bits 24 out.wav
//	curve-wav -file envelope.yaml out.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	keyframes "github.com/tphakala/go-keyframes"
	"github.com/tphakala/go-keyframes/internal/cliutil"
)

const (
	// Buffer size for rendering (number of samples per chunk)
	bufferSize = 65536

	monoChannels     = 1
	wavFormatPCM     = 1
	bitsPerSample16  = 16
	bitsPerSample24  = 24
	maxInt16         = 32767.0
	maxInt24         = 8388607.0
	minRenderSamples = 2

	minSampleRate = 1000
	maxSampleRate = 384000

	// CLI defaults
	defaultSampleRate = 48000
	defaultBitDepth   = bitsPerSample16
	defaultGain       = 1.0
	minRequiredArgs   = 1
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("curve-wav", flag.ContinueOnError)
	pointsSpec := fs.String("points", "", "Control points as seconds:value,seconds:value,...")
	kind := fs.String("kind", "linear", "Interpolation: linear, step, hermite, akima, monotone, natural")
	modifier := fs.String("modifier", "none", "Value modifier: none, db, clamp, db-clamp")
	rate := fs.Int("rate", defaultSampleRate, "Output sample rate in Hz")
	bits := fs.Int("bits", defaultBitDepth, "Output bit depth: 16 or 24")
	duration := fs.Float64("duration", 0, "Duration in seconds (default: last key)")
	gain := fs.Float64("gain", defaultGain, "Linear gain applied to the envelope")
	file := fs.String("file", "", "YAML curve file (overrides -points, -kind and -modifier)")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < minRequiredArgs || (*pointsSpec == "" && *file == "") {
		fmt.Fprintf(fs.Output(), "Usage: curve-wav (-points k:v,... | -file curve.yaml) [options] output.wav\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fs.PrintDefaults()
		return errors.New("insufficient arguments")
	}
	outputPath := rest[0]

	curve, modName, err := loadCurve(*file, *kind, *modifier, *pointsSpec)
	if err != nil {
		return err
	}

	spec := renderSpec{
		sampleRate: *rate,
		bitDepth:   *bits,
		duration:   *duration,
		gain:       *gain,
	}
	if spec.duration == 0 {
		_, maxKey, _ := curve.Bounds()
		spec.duration = maxKey
	}

	if *verbose {
		log.Printf("Output: %s", outputPath)
		log.Printf("Curve: %d points, kind %s, modifier %s", curve.Len(), curve.Kind(), modName)
		log.Printf("Format: %d Hz, %d-bit mono", spec.sampleRate, spec.bitDepth)
	}

	start := time.Now()
	samples, err := writeEnvelopeWAV(outputPath, curve, spec)
	if err != nil {
		return err
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return err
	}

	rendered := time.Duration(spec.duration * float64(time.Second))
	_, err = fmt.Fprintf(w, "Wrote %s: %s samples, %s of audio, %s in %v\n",
		outputPath,
		humanize.Comma(int64(samples)),
		durafmt.Parse(rendered).LimitFirstN(2).String(),
		humanize.Bytes(uint64(info.Size())),
		time.Since(start).Round(time.Millisecond))

	return err
}

// loadCurve builds the curve from -file when given, else from the inline
// flags. It also returns the modifier name in effect.
func loadCurve(file, kind, modifier, pointsSpec string) (*keyframes.Curve, string, error) {
	if file == "" {
		curve, err := cliutil.BuildCurve(kind, modifier, pointsSpec)
		return curve, modifier, err
	}

	curve, f, err := cliutil.LoadCurve(file)
	if err != nil {
		return nil, "", err
	}
	return curve, f.Modifier, nil
}
