package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	mrcfg "github.com/alancleary/mr-cfg"
	"github.com/alancleary/mr-cfg/csa"
	"github.com/alancleary/mr-cfg/grammar"
	"github.com/alancleary/mr-cfg/internal/xmin"
	"github.com/alancleary/mr-cfg/stabber"
)

// previewWidth bounds how much of a non-terminal's expansion explore's
// "expand" command prints, so browsing a rule that expands to the whole
// text doesn't flood the terminal.
const previewWidth = 80

// runExplore builds a grammar the same way the top-level command does, then
// drops into an interactive readline session for inspecting it: printing
// productions, expanding non-terminals, and stabbing suffix-array ranks.
func runExplore(args []string) {
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

	text, err := os.ReadFile(args[1])
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	idx, err := csa.Build(text)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	g, st, err := grammar.Build(idx, algorithm)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}

	pterm.Info.Printfln("grammar built: %d rules, start=%v", g.NumRules(), g.Start)
	pterm.Info.Println("commands: rule <id>, size <id>, expand <id>, stab <rank>, start, stats, quit")

	repl, err := readline.New("mrcfg> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	e := &explorer{g: g, idx: idx, st: st, repl: repl}
	e.loop()
}

type explorer struct {
	g    *grammar.Grammar
	idx  *csa.Index
	st   stabber.Stabber
	repl *readline.Instance
}

func (e *explorer) loop() {
	for {
		line, err := e.repl.Readline()
		if err != nil { // io.EOF on ctrl-D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if quit := e.dispatch(line); quit {
			break
		}
	}
	pterm.Info.Println("bye")
}

func (e *explorer) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd := fields[0]
	switch cmd {
	case "quit", "exit":
		return true
	case "start":
		pterm.Info.Printfln("start = %v", e.g.Start)
	case "stats":
		e.printStats()
	case "rule":
		e.printRule(fields)
	case "size":
		e.printSize(fields)
	case "expand":
		e.printExpand(fields)
	case "stab":
		e.printStab(fields)
	default:
		pterm.Error.Printfln("unknown command %q", cmd)
	}
	return false
}

func (e *explorer) parseID(fields []string) (mrcfg.ID, bool) {
	if len(fields) != 2 {
		pterm.Error.Println("expected exactly one ID argument")
		return 0, false
	}
	n, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		pterm.Error.Printfln("not a valid ID: %q", fields[1])
		return 0, false
	}
	return mrcfg.ID(n), true
}

func (e *explorer) printRule(fields []string) {
	id, ok := e.parseID(fields)
	if !ok {
		return
	}
	if int(id) < e.g.Sigma {
		pterm.Info.Printfln("%v is a terminal for byte %q", id, e.idx.Comp2Char(int(id)))
		return
	}
	prod, found := e.g.Rule(id)
	if !found {
		pterm.Error.Printfln("no rule for %v", id)
		return
	}
	pterm.Info.Printfln("%v -> %v", id, prod.IDs())
}

func (e *explorer) printSize(fields []string) {
	id, ok := e.parseID(fields)
	if !ok {
		return
	}
	size, found := e.g.Size(id)
	if !found {
		pterm.Error.Printfln("no recorded size for %v", id)
		return
	}
	pterm.Info.Printfln("size(%v) = %d", id, size)
}

func (e *explorer) printExpand(fields []string) {
	id, ok := e.parseID(fields)
	if !ok {
		return
	}
	var dst []byte
	e.g.Expand(id, e.idx.Comp2Char, &dst)
	width := xmin.Min(previewWidth, len(dst))
	suffix := ""
	if width < len(dst) {
		suffix = "..."
	}
	pterm.Info.Printfln("%v expands to %q%s (%d bytes)", id, string(dst[:width]), suffix, len(dst))
}

// printStab stabs the grammar's stabber at a suffix-array rank, reporting
// the deepest rule whose occurrence encloses that rank, if any.
func (e *explorer) printStab(fields []string) {
	if len(fields) != 2 {
		pterm.Error.Println("expected exactly one suffix-array rank argument")
		return
	}
	rank, err := strconv.Atoi(fields[1])
	if err != nil {
		pterm.Error.Printfln("not a valid rank: %q", fields[1])
		return
	}
	id, ok := e.st.Stab(rank)
	if !ok {
		pterm.Info.Printfln("rank %d is not enclosed by any rule occurrence", rank)
		return
	}
	pterm.Info.Printfln("rank %d is enclosed by %v", rank, id)
}

func (e *explorer) printStats() {
	total := e.g.Sigma
	for _, id := range e.g.RuleIDs() {
		prod, _ := e.g.Rule(id)
		total += prod.Len()
	}
	startProd, _ := e.g.Rule(e.g.Start)
	startSize := startProd.Len()
	fmt.Printf("rules: %d\n", e.g.NumRules()+e.g.Sigma)
	fmt.Printf("start rule size: %d\n", startSize)
	fmt.Printf("total size: %d\n", total)
}
