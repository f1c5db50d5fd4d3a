/*
Command mrcfg builds a maximal-repeat context-free grammar from a text file,
prints statistics about it, and writes the grammar's expansion to stderr,
where it can be compared with the original text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 mr-cfg contributors

*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"

	mrcfg "github.com/alancleary/mr-cfg"
	"github.com/alancleary/mr-cfg/csa"
	"github.com/alancleary/mr-cfg/grammar"
	"github.com/alancleary/mr-cfg/internal/timing"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-trace level] [-legacy-exit] {OPTIMAL|ONLINE|FAST} <file>\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "       mrcfg explore {OPTIMAL|ONLINE|FAST} <file>")
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()

	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	legacyExit := flag.Bool("legacy-exit", false, "exit 1 on success, matching the original reference implementation's main()")
	flag.Parse()
	mrcfg.Tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	args := flag.Args()
	if len(args) > 0 && args[0] == "explore" {
		runExplore(args[1:])
		return
	}

	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	algorithm := grammar.Algorithm(args[0])
	switch algorithm {
	case grammar.Online, grammar.Optimal, grammar.Fast:
	default:
		usage()
		os.Exit(1)
	}
	filepath := args[1]

	timer := timing.New()

	timer.StartTask()
	pterm.Info.Println("loading file")
	text, err := os.ReadFile(filepath)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	reportTask(timer)

	timer.StartTask()
	pterm.Info.Println("building CSA")
	idx, err := csa.Build(text)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	fmt.Printf("\tcsa size: %d\n", idx.N())
	fmt.Printf("\talphabet: %d\n", idx.Sigma())
	reportTask(timer)

	timer.StartTask()
	pterm.Info.Println("computing CFG")
	g, _, err := grammar.Build(idx, algorithm)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	startProd, _ := g.Rule(g.Start)
	startSize := startProd.Len()
	totalSize := g.Sigma
	for _, id := range g.RuleIDs() {
		prod, _ := g.Rule(id)
		totalSize += prod.Len()
	}
	fmt.Printf("\tnumber of rules: %d\n", g.NumRules()+g.Sigma)
	fmt.Printf("\tstart rule size: %d\n", startSize)
	fmt.Printf("\ttotal non-start size: %d\n", totalSize-startSize)
	fmt.Printf("\ttotal size: %d\n", totalSize)
	reportTask(timer)

	timer.StartTask()
	pterm.Info.Println("printing CFG")
	var rendered []byte
	g.Expand(g.Start, idx.Comp2Char, &rendered)
	fmt.Fprint(os.Stderr, string(rendered))
	reportTask(timer)

	// gconf.GetBool reads the same flag from schuko's global configuration
	// scheme, so a deployment can force legacy-exit behavior without
	// touching the command line.
	if *legacyExit || gconf.GetBool("legacy-exit") {
		os.Exit(1)
	}
}

func reportTask(t *timing.Timer) {
	task, total := t.EndTask()
	fmt.Printf("task: %dms\n", task.Milliseconds())
	fmt.Printf("total: %dms\n", total.Milliseconds())
}
