package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"honnef.co/go/draft"
	"honnef.co/go/draft/parts"
)

func listParts(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, name := range parts.Names() {
		t, err := parts.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, strings.Join(t.Defaults().Names(), " "))
	}
	return tw.Flush()
}

// dumpGraph prints the resolved parameters and one line per primitive, with
// the values a renderer would receive.
func dumpGraph(w io.Writer, g *draft.Graph) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, p := range g.Params() {
		fmt.Fprintf(tw, "param\t%s\t%s\n", p.Name, formatFloat(p.Value))
	}
	for name, p := range g.All() {
		var fields []string
		for _, d := range draft.Describe(p) {
			fields = append(fields, d.Name+"="+formatFloat(d.Value))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Kind(), name, strings.Join(fields, " "))
	}
	return tw.Flush()
}

// formatFloat formats f with at most four decimals.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		s = "0"
	}
	return s
}
