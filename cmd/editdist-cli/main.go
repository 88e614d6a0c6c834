// Command editdist-cli computes the weighted edit distance between two
// strings given as positional arguments and prints the result per the
// requested output mode. With no arguments it prints the sample
// comparison of "foo" vs. "fou" under the default cost model.
//
// Usage:
//
//	editdist-cli kitten sitting
//	editdist-cli --mode edits foolish fools
//	editdist-cli --sub-cost 3 --mode both a b
package main

import (
	"fmt"
	"os"

	"github.com/napalu/goopt"

	"github.com/katalvlaran/editdist"
)

type config struct {
	Mode      string  `goopt:"name:mode;short:m;desc:output mode: distance | edits | both;default:both"`
	MatchCost float64 `goopt:"name:match-cost;desc:cost of a character match;default:0"`
	InsCost   float64 `goopt:"name:ins-cost;desc:cost of an insertion;default:1"`
	DelCost   float64 `goopt:"name:del-cost;desc:cost of a deletion;default:1"`
	SubCost   float64 `goopt:"name:sub-cost;desc:cost of a substitution;default:1"`
	Help      bool    `goopt:"name:help;short:h;desc:show help"`
}

func main() {
	cfg := &config{}
	parser, err := goopt.NewParserFromStruct(cfg)
	must(err)

	if !parser.Parse(os.Args) {
		for _, perr := range parser.GetErrors() {
			fmt.Fprintln(os.Stderr, "editdist-cli:", perr)
		}
		os.Exit(1)
	}

	if cfg.Help {
		parser.PrintUsageWithGroups(os.Stdout)
		os.Exit(0)
	}

	mode, err := editdist.ParseMode(cfg.Mode)
	must(err)

	source, target := "foo", "fou"
	switch positional := parser.GetPositionalArgs(); len(positional) {
	case 0:
		fmt.Printf("no arguments given; comparing %q vs. %q:\n", source, target)
	case 2:
		source, target = positional[0].Value, positional[1].Value
	default:
		fmt.Fprintln(os.Stderr, "editdist-cli: expected exactly two positional arguments: source target")
		os.Exit(1)
	}

	opts := editdist.Options{
		Mode: mode,
		Costs: editdist.Costs{
			Match:      cfg.MatchCost,
			Insert:     cfg.InsCost,
			Delete:     cfg.DelCost,
			Substitute: cfg.SubCost,
		},
	}

	dist, edits, err := editdist.Distance(source, target, &opts)
	must(err)

	switch mode {
	case editdist.ModeDistance:
		fmt.Println(dist)
	case editdist.ModeEdits:
		fmt.Println(edits)
	default:
		fmt.Printf("distance=%v edits=%v\n", dist, edits)
	}
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "editdist-cli:", err)
		os.Exit(1)
	}
}
