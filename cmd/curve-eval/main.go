// Command curve-eval evaluates a keyframe curve given on the command line.
//
// Usage:
//
//	curve-eval -points "1:1,2:2" -at 0,1,1.5,2,3
//	curve-eval -points "0:-60,2:0" -modifier db -from 0 -to 2 -n 21
//	curve-eval -points "0:0,1:1,2:0,3:1" -kind monotone -at 0.5,2.5
//	curve-eval -file fade.yaml -from 0 -to 2 -n 201 -plot fade.png
//
// Each output line is "key value in-slope out-slope", tab separated.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	keyframes "github.com/tphakala/go-keyframes"
	"github.com/tphakala/go-keyframes/internal/cliutil"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("curve-eval", flag.ContinueOnError)
	pointsSpec := fs.String("points", defaultPoints, "Control points as key:value,key:value,...")
	kind := fs.String("kind", defaultKind, "Interpolation: linear, step, hermite, akima, monotone, natural")
	modifier := fs.String("modifier", defaultModifier, "Value modifier: none, db, clamp, db-clamp")
	at := fs.String("at", "", "Comma-separated keys to evaluate")
	from := fs.Float64("from", 0, "Sweep start key")
	to := fs.Float64("to", 0, "Sweep end key")
	n := fs.Int("n", defaultSamples, "Number of sweep keys")
	file := fs.String("file", "", "YAML curve file (overrides -points, -kind and -modifier)")
	plotPath := fs.String("plot", "", "Also plot the evaluated keys to this image file (.png, .svg, .pdf)")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	curve, modName, err := loadCurve(*file, *kind, *modifier, *pointsSpec)
	if err != nil {
		return err
	}

	if *verbose {
		minKey, maxKey, _ := curve.Bounds()
		log.Printf("Curve: %d points, kind %s, modifier %s", curve.Len(), curve.Kind(), modName)
		log.Printf("Key range: [%g, %g]", minKey, maxKey)
	}

	keys, err := queryKeys(curve, *at, *from, *to, *n)
	if err != nil {
		return err
	}

	if err := printEvaluations(w, curve, keys); err != nil {
		return err
	}

	if *plotPath != "" {
		if err := plotCurve(*plotPath, curve, keys); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		if *verbose {
			log.Printf("Plot written to %s", *plotPath)
		}
	}

	return nil
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

// queryKeys returns the explicit -at keys, or the sweep grid when -from and
// -to differ. With neither, the control-point keys themselves are evaluated.
func queryKeys(curve *keyframes.Curve, at string, from, to float64, n int) ([]float64, error) {
	if at != "" {
		return cliutil.ParseKeys(at)
	}

	if from != to {
		keys, _, err := curve.Sample(from, to, n)
		return keys, err
	}

	pts := curve.Points()
	keys := make([]float64, len(pts))
	for i, p := range pts {
		keys[i] = p.Key
	}
	return keys, nil
}

func printEvaluations(w io.Writer, curve *keyframes.Curve, keys []float64) error {
	for _, k := range keys {
		v, in, out, err := curve.EvaluateWithSlopes(k)
		if err != nil {
			return fmt.Errorf("evaluate %v: %w", k, err)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", format(k), format(v), format(in), format(out)); err != nil {
			return err
		}
	}
	return nil
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', outputPrecision, 64)
}
