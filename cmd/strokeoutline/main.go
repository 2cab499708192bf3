// Command strokeoutline converts stroked SVG path data into filled outlines.
//
// Path data is taken from the arguments, or one path per line from standard
// input when there are none:
//
//	strokeoutline -width 20 -linecap round "M50,50 L350,350"
//	strokeoutline -config style.yaml < paths.txt
//
// With -svg each result is written as a preview document showing the
// source stroke over the filled outline.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gogpu/outline"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "strokeoutline:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("strokeoutline", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var fv flagValues
	fs.Float64Var(&fv.width, "width", 1, "stroke width")
	fs.StringVar(&fv.linecap, "linecap", "butt", "line cap: butt, round or square")
	fs.StringVar(&fv.linejoin, "linejoin", "miter", "line join: miter, round or bevel")
	fs.IntVar(&fv.precision, "precision", outline.DefaultPrecision, "decimals in the output")
	fs.Float64Var(&fv.tolerance, "tolerance", 0, "curve offset tolerance (0 for default)")
	fs.IntVar(&fv.maxDepth, "max-depth", 0, "curve subdivision limit (0 for default)")
	fs.IntVar(&fv.workers, "workers", 0, "worker goroutines (0 for GOMAXPROCS)")
	var (
		configPath = fs.String("config", "", "YAML style file")
		svg        = fs.Bool("svg", false, "write an SVG preview document per path")
		viewBox    = fs.String("viewbox", "0 0 400 400", "viewBox of the SVG preview")
		verbose    = fs.Bool("v", false, "log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			return err
		}
	}
	fv.apply(fs, &cfg)

	if *verbose {
		outline.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := cfg.Stroke.Stroke()
	if err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		if paths, err = readPaths(stdin); err != nil {
			return err
		}
	}
	if len(paths) == 0 {
		return errors.New("no path data given")
	}

	o, err := outline.NewOutliner(s, cfg.options()...)
	if err != nil {
		return err
	}
	defer o.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := o.OutlineAll(ctx, paths)
	for i, d := range results {
		if d == "" {
			continue
		}
		if *svg {
			writePreview(stdout, *viewBox, paths[i], s, d)
		} else {
			fmt.Fprintln(stdout, d)
		}
	}
	return err
}

// readPaths returns the non-blank lines of r.
func readPaths(r io.Reader) ([]string, error) {
	var paths []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			paths = append(paths, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}
	return paths, nil
}
