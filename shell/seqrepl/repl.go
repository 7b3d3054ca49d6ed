package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/numseq/rational"
	"github.com/npillmayer/numseq/shell"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("Seq.REPL"), where users may enter
// commands to enumerate sequences and evaluate derived algorithms.
// Seq.REPL will print out the result of each command.
//
// Please refer to package "shell" for the command language.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.New))
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to Seq.REPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	for _, key := range shell.TraceKeys {
		tracing.Select(key).SetTraceLevel(traceLevel(*tlevel))
	}
	//
	// set up interpreter
	interp, err := shell.NewInterpreter()
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	repl, err := readline.New("seq> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{
		interp: interp,
		repl:   repl,
	}
	//
	// load an init file, execute a command given on the command line,
	// then start receiving commands
	intp.loadInitFile(*initf)
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if quit, _ := intp.Eval(input); quit {
			return
		}
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interactive front end for a shell interpreter.
type Intp struct {
	interp *shell.Interpreter
	repl   *readline.Instance
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			lineno++
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a command, given on a line by itself, and prints the result.
//
func (intp *Intp) Eval(line string) (bool, error) {
	result, err := intp.interp.Eval(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	if result.Quit {
		return true, nil
	}
	intp.printResult(result)
	return false, nil
}

func (intp *Intp) printResult(result shell.Result) {
	switch v := result.Value.(type) {
	case nil:
		return
	case shell.Partition:
		printPartition(v)
	case []string:
		for _, s := range v {
			pterm.Println(s)
		}
	default:
		pterm.Info.Println(result.String())
	}
}

// printPartition displays the groups of rationals of a partition as a tree
// on a terminal.
func printPartition(p shell.Partition) {
	ll := pterm.LeveledList{
		pterm.LeveledListItem{Level: 0, Text: "with prime terms"},
	}
	ll = leveledRats(p.WithPrime, ll, 1)
	ll = append(ll, pterm.LeveledListItem{Level: 0, Text: "without"})
	ll = leveledRats(p.Rest, ll, 1)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	pterm.Println("partition")
	root := putils.TreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	pterm.Info.Println(p.Quotient.String())
}

func leveledRats(rs []rational.Rat, ll pterm.LeveledList, level int) pterm.LeveledList {
	if len(rs) == 0 {
		return append(ll, pterm.LeveledListItem{Level: level, Text: "nil"})
	}
	for _, r := range rs {
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: r.String()})
	}
	return ll
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
