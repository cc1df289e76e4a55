package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/glyphmeta/cmapcheck"
	"github.com/npillmayer/glyphmeta/glyphs"
	"github.com/npillmayer/glyphmeta/unicheck"
	"github.com/thatisuday/commando"
)

func runLintCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagBool(flags["verbose"], "verbose"))
	gg := mustLoadGlyphs(args["ufo"], flags)
	findings := unicheck.CheckGlyphs(gg)
	for _, f := range findings {
		fmt.Println(f.String())
	}
	fmt.Printf("Findings: %d\n", len(findings))
	if len(findings) > 0 {
		os.Exit(2)
	}
}

func runCmapCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagBool(flags["verbose"], "verbose"))
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	gg := mustLoadGlyphs(args["ufo"], flags)
	set := glyphs.UniqueCodepoints(gg)
	res, err := cmapcheck.CompareFile(fontPath, set)
	if err != nil {
		fatalf("cmap check failed: %v", err)
	}
	fmt.Printf("Font: %s\n", res.Font)
	fmt.Printf("Code points: mapped=%d missing=%d\n", len(res.Mapped), len(res.Missing))
	for _, u := range res.Missing {
		fmt.Printf("missing: %s\n", u.String())
	}
	if !res.Complete() {
		os.Exit(2)
	}
}
