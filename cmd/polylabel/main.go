// Command polylabel computes label positions for the polygons in a GeoJSON
// document.
//
// Usage:
//
//	polylabel [flags] [file]
//
// The document is read from file, or from standard input if file is omitted
// or "-". Every Polygon and every member of a MultiPolygon is labelled. The
// labels are written as a GeoJSON FeatureCollection of points or as a KML
// document.
//
// Flags fall back to the environment variables POLYLABEL_TOLERANCE,
// POLYLABEL_FORMAT, and POLYLABEL_MAX_STEPS, which may be set in a .env file
// in the working directory. LOG_LEVEL and LOG_FORMAT control logging.
//
// With -equirect, longitudes are scaled by the cosine of each polygon's
// central latitude before searching, and distances are reported in degrees of
// latitude.
//
// Exit codes: 1 for usage and I/O errors, 2 for an invalid tolerance, 3 if a
// polygon was malformed or empty, and 4 if a search hit -max-steps.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"honnef.co/go/polylabel"
	"honnef.co/go/polylabel/internal/features"
	"honnef.co/go/polylabel/internal/kmlexport"
	"honnef.co/go/polylabel/internal/logger"
	"honnef.co/go/polylabel/internal/plotting"
)

const (
	exitOK = iota
	exitFailure
	exitTolerance
	exitGeometry
	exitNotConverged
)

var errNotConverged = errors.New("search did not converge")

type config struct {
	tolerance float64
	format    string
	maxSteps  int
	output    string
	plot      string
	outlines  bool
	equirect  bool
	input     string
}

func main() {
	_ = godotenv.Load(".env")
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	l := logger.Setup(stderr)

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		l.Error("invalid arguments", "err", err)
		return exitFailure
	}

	data, err := readInput(cfg.input, stdin)
	if err != nil {
		l.Error("read input", "err", err)
		return exitFailure
	}
	shapes, skipped, err := features.Decode(data)
	for _, s := range skipped {
		l.Warn("skipping feature without area", "feature", s.Feature, "type", s.Type)
	}
	if err != nil {
		l.Error("decode input", "input", cfg.input, "err", err)
		return exitFailure
	}

	code := exitOK
	labels := make([]features.Label, 0, len(shapes))
	for i, shape := range shapes {
		lbl, tr, err := label(l, shape, cfg)
		switch {
		case errors.Is(err, polylabel.ErrInvalidTolerance):
			l.Error("invalid tolerance", "tolerance", cfg.tolerance, "err", err)
			return exitTolerance
		case errors.Is(err, polylabel.ErrEmptyGeometry):
			l.Warn("skipping empty polygon", "feature", shape.Feature, "part", shape.Part, "err", err)
			code = max(code, exitGeometry)
			continue
		case errors.Is(err, polylabel.ErrMalformedRing):
			l.Warn("skipping malformed polygon", "feature", shape.Feature, "part", shape.Part, "err", err)
			code = max(code, exitGeometry)
			continue
		case errors.Is(err, errNotConverged):
			l.Warn("search stopped early", "feature", shape.Feature, "part", shape.Part, "max_steps", cfg.maxSteps)
			code = max(code, exitNotConverged)
		case err != nil:
			l.Error("label polygon", "feature", shape.Feature, "part", shape.Part, "err", err)
			return exitFailure
		}
		labels = append(labels, lbl)

		if cfg.plot != "" {
			tr.Title = kmlexport.Name(shape)
			path := plotPath(cfg.plot, i, len(shapes))
			if err := plotting.Save(path, tr); err != nil {
				l.Error("plot search", "path", path, "err", err)
				return exitFailure
			}
			l.Debug("wrote plot", "path", path)
		}
	}

	if err := writeOutput(cfg, labels, stdout); err != nil {
		l.Error("write output", "err", err)
		return exitFailure
	}
	return code
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("polylabel", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: polylabel [flags] [file]\n\n")
		fs.PrintDefaults()
	}

	var cfg config
	var err error
	defTolerance, defMaxSteps := 1.0, 0
	if v := os.Getenv("POLYLABEL_TOLERANCE"); v != "" {
		if defTolerance, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("POLYLABEL_TOLERANCE: %w", err)
		}
	}
	if v := os.Getenv("POLYLABEL_MAX_STEPS"); v != "" {
		if defMaxSteps, err = strconv.Atoi(v); err != nil {
			return cfg, fmt.Errorf("POLYLABEL_MAX_STEPS: %w", err)
		}
	}
	defFormat := os.Getenv("POLYLABEL_FORMAT")
	if defFormat == "" {
		defFormat = "geojson"
	}

	fs.Float64Var(&cfg.tolerance, "tolerance", defTolerance, "stop once no point can be more than `distance` further from the boundary than the best one")
	fs.StringVar(&cfg.format, "format", defFormat, "output `format`: geojson or kml")
	fs.IntVar(&cfg.maxSteps, "max-steps", defMaxSteps, "give up on a polygon after `n` cells (0 means no limit)")
	fs.StringVar(&cfg.output, "o", "", "write output to `file` instead of standard output")
	fs.StringVar(&cfg.plot, "plot", "", "plot each search to `file` (.png or .svg)")
	fs.BoolVar(&cfg.outlines, "outlines", false, "include polygon outlines in KML output")
	fs.BoolVar(&cfg.equirect, "equirect", false, "treat coordinates as longitude and latitude and label each polygon in a locally equirectangular projection")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.format = strings.ToLower(cfg.format)
	if cfg.format != "geojson" && cfg.format != "kml" {
		return cfg, fmt.Errorf("unknown format %q", cfg.format)
	}
	if cfg.maxSteps < 0 {
		return cfg, fmt.Errorf("negative -max-steps %d", cfg.maxSteps)
	}
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.input = fs.Arg(0)
	default:
		return cfg, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}
	return cfg, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// label runs the search for one shape. A search that hits the step limit
// returns its best label so far along with errNotConverged.
func label(l *slog.Logger, shape features.Shape, cfg config) (features.Label, plotting.Trace, error) {
	poly, aff := shape.Polygon, polylabel.Identity
	if cfg.equirect {
		aff = polylabel.Equirectangular(poly.BoundingBox().Center().Y)
		poly = poly.Transform(aff)
	}
	s, err := polylabel.NewSearch(poly, cfg.tolerance)
	if err != nil {
		return features.Label{}, plotting.Trace{}, err
	}
	start := time.Now()
	var tr plotting.Trace
	if cfg.plot != "" {
		tr = plotting.Record(poly, s, cfg.maxSteps)
	} else {
		for cfg.maxSteps == 0 || s.Steps() < cfg.maxSteps {
			if _, ok := s.Step(); !ok {
				break
			}
		}
	}
	best := s.Best()
	lbl := features.Label{
		Shape:    shape,
		Point:    best.Center.Transform(aff.Invert()),
		Distance: best.Distance,
	}
	l.Debug("labelled polygon",
		"feature", shape.Feature,
		"part", shape.Part,
		"steps", s.Steps(),
		"distance", best.Distance,
		"duration", time.Since(start))
	if !s.Converged() {
		return lbl, tr, fmt.Errorf("%w after %d steps (bound %g)", errNotConverged, s.Steps(), s.Bound())
	}
	return lbl, tr, nil
}

// plotPath numbers plot files when there is more than one shape.
func plotPath(path string, i, n int) string {
	if n <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i, ext)
}

func writeOutput(cfg config, labels []features.Label, stdout io.Writer) (err error) {
	w := stdout
	if cfg.output != "" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	switch cfg.format {
	case "kml":
		return kmlexport.Write(w, labels, kmlexport.Options{Name: "polylabel", Outlines: cfg.outlines})
	default:
		data, err := features.Encode(labels)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
}
