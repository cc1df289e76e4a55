package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/glyphmeta"
	"github.com/npillmayer/glyphmeta/glyphs"
	"github.com/npillmayer/glyphmeta/metadata"
	"github.com/npillmayer/glyphmeta/report"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'glyphmeta.tools'
func tracer() tracing.Trace {
	return tracing.Select("glyphmeta.tools")
}

var traceKeys = []string{
	"glyphmeta",
	"glyphmeta.glyphs",
	"glyphmeta.metadata",
	"glyphmeta.unicheck",
	"glyphmeta.cmapcheck",
	"glyphmeta.tools",
}

func main() {
	commando.
		SetExecutableName("glyph-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for inspecting the Unicode encodings of UFO font projects.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("glyphs").
		SetDescription("Decode the glyph metadata of a UFO and print one line per glyph.").
		SetShortDescription("list glyphs").
		AddArgument("ufo", "UFO directory", "").
		AddFlag("input,i", "read a metadata report from file instead of running "+metadata.DefaultTool, commando.String, "-").
		AddFlag("sort,s", "sort glyphs by code point, unencoded glyphs last", commando.Bool, nil).
		AddFlag("strict", "reject rows with misaligned name/code point/category lists", commando.Bool, nil).
		AddFlag("format,f", "output format: text|json|yaml", commando.String, "text").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runGlyphsCommand)

	commando.
		Register("unique").
		SetDescription("Print the distinct code points of a UFO and report duplicate encodings.").
		SetShortDescription("distinct code points").
		AddArgument("ufo", "UFO directory", "").
		AddFlag("input,i", "read a metadata report from file instead of running "+metadata.DefaultTool, commando.String, "-").
		AddFlag("strict", "reject rows with misaligned name/code point/category lists", commando.Bool, nil).
		AddFlag("format,f", "output format: text|json|yaml", commando.String, "text").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runUniqueCommand)

	commando.
		Register("lint").
		SetDescription("Compare Unicode names and categories of a UFO with the Unicode character database.").
		SetShortDescription("lint Unicode annotations").
		AddArgument("ufo", "UFO directory", "").
		AddFlag("input,i", "read a metadata report from file instead of running "+metadata.DefaultTool, commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runLintCommand)

	commando.
		Register("cmap").
		SetDescription("Check that a compiled font maps every code point of a UFO.").
		SetShortDescription("cross-check compiled font").
		AddArgument("ufo", "UFO directory", "").
		AddArgument("font", "compiled font file (TTF or OTF)", "").
		AddFlag("input,i", "read a metadata report from file instead of running "+metadata.DefaultTool, commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runCmapCommand)

	commando.Parse(nil)
}

func runGlyphsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagBool(flags["verbose"], "verbose"))
	format := mustFormat(flags["format"])
	gg := mustLoadGlyphs(args["ufo"], flags)
	if mustFlagBool(flags["sort"], "sort") {
		glyphs.SortGlyphs(gg)
	}
	if err := report.WriteGlyphs(os.Stdout, gg, format); err != nil {
		fatalf("%v", err)
	}
}

func runUniqueCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagBool(flags["verbose"], "verbose"))
	format := mustFormat(flags["format"])
	gg := mustLoadGlyphs(args["ufo"], flags)
	var dups []glyphs.Duplicate
	set := glyphs.UniqueCodepoints(gg, glyphs.OnDuplicate(func(d glyphs.Duplicate) {
		dups = append(dups, d)
	}))
	if err := report.WriteCodepoints(os.Stdout, set, format); err != nil {
		fatalf("%v", err)
	}
	// duplicates are advisory and must not end up in machine-readable output
	if err := report.WriteDuplicates(os.Stderr, dups); err != nil {
		fatalf("%v", err)
	}
}

// --- Helpers ---------------------------------------------------------------

func setupTracing(verbose bool) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	level := "Error"
	if verbose {
		level = "Info"
	}
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func mustLoadGlyphs(ufoArg commando.ArgValue, flags map[string]commando.FlagValue) []glyphs.GlyphRef {
	ufo := strings.TrimSpace(ufoArg.Value)
	if ufo == "" {
		fatalf("UFO directory is required")
	}
	var opts []glyphs.DecodeOption
	if flag, ok := flags["strict"]; ok && mustFlagBool(flag, "strict") {
		opts = append(opts, glyphs.StrictAlignment())
	}
	src, err := metadataSource(flags["input"])
	if err != nil {
		fatalf("%v", err)
	}
	ctx := context.Background()
	if src == nil {
		gg, err := glyphmeta.ForUFO(ctx, ufo, opts...)
		if err != nil {
			fatalf("%v", err)
		}
		return gg
	}
	gg, err := metadata.Load(ctx, src, ufo, opts...)
	if err != nil {
		fatalf("%v", err)
	}
	return gg
}

// metadataSource returns a static source for --input, or nil if the
// metadata tool has to be run.
func metadataSource(flag commando.FlagValue) (metadata.Source, error) {
	path, err := flag.GetString()
	if err != nil {
		return nil, fmt.Errorf("invalid --input flag: %w", err)
	}
	path = strings.TrimSpace(path)
	switch path {
	case "", "-":
		return nil, nil
	case "stdin":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("cannot read report from stdin: %w", err)
		}
		return metadata.Static(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read report: %w", err)
	}
	tracer().Debugf("read metadata report %s", path)
	return metadata.Static(b), nil
}

func mustFormat(flag commando.FlagValue) report.Format {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --format flag: %v", err)
	}
	format, err := report.ParseFormat(s)
	if err != nil {
		fatalf("%v", err)
	}
	return format
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "glyph-tools: "+format+"\n", args...)
	os.Exit(1)
}
