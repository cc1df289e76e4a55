package glyphmeta

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/npillmayer/glyphmeta/metadata"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeTool(t *testing.T, version string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake metadata tool is a shell script")
	}
	script := `#!/bin/sh
if [ "$1" = "--version" ]; then
	echo "MFEKmetadata ` + version + `"
	exit 0
fi
printf 'glifname\tuniname\tcodepoints\tunicat\n'
printf 'A\tLATIN CAPITAL LETTER A\t0041\tLu\n'
printf 'uni0041\tLATIN CAPITAL LETTER A\t0041\tLu\n'
printf 'B\tLATIN CAPITAL LETTER B\t0042\tLu\n'
`
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, metadata.DefaultTool), []byte(script), 0o755))
	t.Setenv("PATH", dir)
}

func TestUniqueCodepointsForUFO(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphmeta")
	defer teardown()
	//
	fakeTool(t, "0.0.4")
	set, dups, err := UniqueCodepointsForUFO(context.Background(), "Test.ufo")
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	require.Len(t, dups, 1)
	assert.Equal(t, "uni0041", dups[0].Glyph)
	assert.Equal(t, "A", dups[0].FirstGlyph)
}

func TestForUFORejectsOldTool(t *testing.T) {
	fakeTool(t, "0.0.3")
	_, err := ForUFO(context.Background(), "Test.ufo")
	assert.Error(t, err)
}

func TestForUFOWithoutTool(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	_, err := ForUFO(context.Background(), "Test.ufo")
	assert.Error(t, err)
}
