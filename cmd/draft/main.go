// Command draft builds parts from the catalog and renders them as SVG.
//
// Usage:
//
//	draft -list
//	draft -part humbucker [-set r=4] [-params file.yaml] [-refs] [-rotate 90] [-scale 0.5] [-o out.svg]
//	draft -part fender-headstock -dump
//
// Parameters are applied in order: the part's defaults, then the parameter
// file (YAML or TOML, chosen by extension), then -set flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/draft"
	"honnef.co/go/draft/parts"
	"honnef.co/go/draft/svg"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("draft", flag.ContinueOnError)
	fs.SetOutput(stderr)
	list := fs.Bool("list", false, "list the available parts")
	part := fs.String("part", "", "`name` of the part to build")
	paramFile := fs.String("params", "", "read parameter overrides from a YAML or TOML `file`")
	out := fs.String("o", "", "write the SVG document to `file` instead of stdout")
	refs := fs.Bool("refs", false, "mark and number reference points")
	rotate := fs.Float64("rotate", 0, "rotate the part counter-clockwise by `degrees`")
	scale := fs.Float64("scale", 1, "drawing `scale`, such as 0.5 for 1:2")
	dump := fs.Bool("dump", false, "print the primitives instead of rendering them")
	verbose := fs.Bool("v", false, "log construction steps")
	sets := overrides{}
	fs.Var(sets, "set", "override a parameter, as `name=value` (repeatable)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		if err := listParts(stdout); err != nil {
			logger.Error("listing parts", "err", err)
			return 1
		}
		return 0
	}
	if *part == "" {
		fmt.Fprintln(stderr, "draft: -part or -list is required")
		fs.Usage()
		return 2
	}

	tmpl, err := parts.Get(*part)
	if err != nil {
		logger.Error("looking up part", "err", err)
		return 1
	}
	params := map[string]float64{}
	if *paramFile != "" {
		params, err = loadParams(*paramFile)
		if err != nil {
			logger.Error("reading parameters", "file", *paramFile, "err", err)
			return 1
		}
	}
	for k, v := range sets {
		params[k] = v
	}

	g, err := draft.Build(tmpl, params, draft.WithLogger(logger))
	if err != nil {
		logger.Error("building part", "part", *part, "err", err)
		return 1
	}
	logger.Debug("built part", "part", *part, "primitives", g.Len(), "bbox", g.BoundingBox())

	if *dump {
		if err := dumpGraph(stdout, g); err != nil {
			logger.Error("dumping primitives", "err", err)
			return 1
		}
		return 0
	}

	if *scale <= 0 {
		logger.Error("invalid drawing scale", "scale", *scale)
		return 2
	}
	opts := svg.Options{ReferencePoints: *refs, Scale: *scale}
	pl := svg.Placement{Graph: g, Rotation: *rotate, Label: *part}
	if *out == "" {
		err = svg.Encode(stdout, opts, pl)
	} else {
		err = writeFile(*out, func(w io.Writer) error { return svg.Encode(w, opts, pl) })
	}
	if err != nil {
		logger.Error("writing SVG", "err", err)
		return 1
	}
	return 0
}

// writeFile creates name and passes it to fn, reporting errors from both fn
// and closing the file.
func writeFile(name string, fn func(w io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	return errors.Join(fn(f), f.Close())
}
