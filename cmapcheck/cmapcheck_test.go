package cmapcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/glyphmeta/glyphs"
	"github.com/npillmayer/glyphmeta/internal/fontload"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func goRegularSet() *glyphs.UnicodeSet {
	return glyphs.UniqueCodepoints([]glyphs.GlyphRef{
		{Name: "B", Unicode: []glyphs.UnicodeData{{Name: "LATIN CAPITAL LETTER B", Category: "Lu", Encoding: 'B'}}},
		{Name: "A", Unicode: []glyphs.UnicodeData{{Name: "LATIN CAPITAL LETTER A", Category: "Lu", Encoding: 'A'}}},
		{Name: "ka", Unicode: []glyphs.UnicodeData{{Name: "TIBETAN SYLLABLE OM", Category: "Lo", Encoding: 0x0F00}}},
		{Name: "A.alt"},
	})
}

func TestCompare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphmeta.cmapcheck")
	defer teardown()
	//
	f, err := fontload.Parse(goregular.TTF)
	require.NoError(t, err)
	res, err := Compare(f.SFNT, goRegularSet())
	require.NoError(t, err)
	require.Len(t, res.Mapped, 2)
	assert.Equal(t, rune('A'), res.Mapped[0].Encoding)
	assert.Equal(t, rune('B'), res.Mapped[1].Encoding)
	require.Len(t, res.Missing, 1)
	assert.Equal(t, rune(0x0F00), res.Missing[0].Encoding)
	assert.False(t, res.Complete())
}

func TestCompareEmptySet(t *testing.T) {
	f, err := fontload.Parse(goregular.TTF)
	require.NoError(t, err)
	res, err := Compare(f.SFNT, glyphs.NewUnicodeSet())
	require.NoError(t, err)
	assert.True(t, res.Complete())
	assert.Empty(t, res.Mapped)
}

func TestCompareFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	res, err := CompareFile(path, goRegularSet())
	require.NoError(t, err)
	assert.Contains(t, res.Font, "Go")
	assert.Len(t, res.Missing, 1)

	_, err = CompareFile(filepath.Join(t.TempDir(), "missing.ttf"), goRegularSet())
	assert.Error(t, err)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o644))
	_, err := fontload.Load(path)
	assert.Error(t, err)
}
