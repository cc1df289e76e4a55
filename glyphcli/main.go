package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/glyphmeta"
	"github.com/npillmayer/glyphmeta/glyphs"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'glyphmeta.cli'
func tracer() tracing.Trace {
	return tracing.Select("glyphmeta.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.glyphmeta.cli":    "Info",
		"trace.glyphmeta.glyphs": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	ufodir := flag.String("ufo", "", "UFO directory to run the metadata tool on")
	input := flag.String("input", "", "Glyph metadata report (TSV) to load instead of running the metadata tool")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)              // will set the correct level later
	pterm.Info.Println("Welcome to the glyph metadata CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("glyphs > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load glyphs to use
	if err := intp.loadGlyphs(*ufodir, *input); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	source string // UFO directory or report file the glyphs came from
	glyphs []glyphs.GlyphRef
	sorted bool
	repl   *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.glyphs == nil {
		return "()"
	}
	order := "input order"
	if intp.sorted {
		order = "code point order"
	}
	return fmt.Sprintf("( %s: %d glyphs, %s )", intp.source, len(intp.glyphs), order)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	LOAD
	LIST
	SORT
	GLYPH
	CODEPOINT
	UNIQUE
	DUPS
	LINT
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"load":   LOAD,
	"list":   LIST,
	"sort":   SORT,
	"glyph":  GLYPH,
	"cp":     CODEPOINT,
	"unique": UNIQUE,
	"dups":   DUPS,
	"lint":   LINT,
}

var opNames = []string{
	"quit",
	"help",
	"load",
	"list",
	"sort",
	"glyph",
	"cp",
	"unique",
	"dups",
	"lint",
}

var command = Command{}

func resetCommand() {
	command.count = 0
	for i := range command.op {
		command.op[i].code = NOOP
		command.op[i].arg = ""
	}
}

// parseCommand splits a line into steps, e.g. "sort list:10" or "cp:0041".
// Unknown steps are treated as help requests.
func (intp *Intp) parseCommand(line string) (*Command, error) {
	resetCommand()
	steps := strings.Fields(line)
	if len(steps) > len(command.op) {
		return nil, fmt.Errorf("too many steps in command: %d", len(steps))
	}
	command.count = len(steps)
	for i, step := range steps {
		c := strings.SplitN(step, ":", 2) // e.g.  "glyph:A" or "list:5" or "help:cp"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		if code == QUIT {
			return &command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		if command.op[i].arg == "" {
			tracer().Debugf("%s", opNames[code])
		} else {
			tracer().Debugf("%s: looking for '%s'", opNames[code], command.op[i].arg)
		}
	}
	return &command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:      quitOp,
	HELP:      helpOp,
	LOAD:      loadOp,
	LIST:      listOp,
	SORT:      sortOp,
	GLYPH:     glyphOp,
	CODEPOINT: codepointOp,
	UNIQUE:    uniqueOp,
	DUPS:      dupsOp,
	LINT:      lintOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Glyph Loading ----------------------------------------------------

var errNoGlyphs = errors.New("no glyphs loaded")

func loadOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errors.New("usage: load:<report.tsv>"), false
	}
	return intp.loadGlyphs("", op.arg), false
}

// loadGlyphs reads glyph metadata either from a report file or by running
// the metadata tool on a UFO directory. With neither given, the interpreter
// starts empty.
func (intp *Intp) loadGlyphs(ufodir, reportfile string) error {
	var (
		gg     []glyphs.GlyphRef
		source string
		err    error
	)
	switch {
	case reportfile != "":
		var f *os.File
		if f, err = os.Open(reportfile); err != nil {
			return err
		}
		defer f.Close()
		gg, err = glyphs.DecodeReader(f)
		source = reportfile
	case ufodir != "":
		gg, err = glyphmeta.ForUFO(context.Background(), ufodir)
		source = ufodir
	default:
		pterm.Info.Println("No glyphs loaded, use load:<report.tsv>")
		return nil
	}
	if err != nil {
		return err
	}
	if gg == nil {
		gg = []glyphs.GlyphRef{}
	}
	intp.glyphs, intp.source, intp.sorted = gg, source, false
	tracer().Infof("loaded %d glyphs from %s", len(gg), intp.source)
	return nil
}

func (intp *Intp) checkGlyphs() error {
	if intp.glyphs == nil {
		return errNoGlyphs
	}
	return nil
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
