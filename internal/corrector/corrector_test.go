package corrector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOracle is a deterministic stand-in for the dictionary.
type fakeOracle struct {
	known map[string]bool
	cands map[string][]Candidate
}

func (f fakeOracle) IsKnown(word string) bool           { return f.known[word] }
func (f fakeOracle) Candidates(word string) []Candidate { return f.cands[word] }

func testOracle() fakeOracle {
	return fakeOracle{
		known: map[string]bool{
			"is": true, "the": true, "this": true, "simple": true,
			"launched": true, "a": true, "rocket": true, "wonderful": true,
			"trick": true,
		},
		cands: map[string][]Candidate{
			"ths": {
				{Word: "this", EditDistance: 1, Frequency: 90},
				{Word: "the", EditDistance: 1, Frequency: 100},
			},
			"smple": {
				{Word: "simple", EditDistance: 1, Frequency: 80},
			},
			"wonderfull": {
				{Word: "wonderful", EditDistance: 1, Frequency: 40},
			},
			"nasa": {
				{Word: "nascar", EditDistance: 2, Frequency: 5},
			},
		},
	}
}

func newTestCorrector() *Corrector {
	return New(DefaultConfig(), testOracle())
}

func TestCorrectText(t *testing.T) {
	c := newTestCorrector()
	out, corrections, unresolved := c.CorrectText("Ths is smple.")
	assert.Equal(t, "The is simple.", out)
	assert.Empty(t, unresolved)
	require.Len(t, corrections, 2)
	assert.Equal(t, "Ths", corrections[0].Original)
	assert.Equal(t, "The", corrections[0].Replacement)
	assert.Equal(t, 1, corrections[0].Token.Line)
	assert.Equal(t, 0, corrections[0].Token.Col)
	assert.Equal(t, "smple", corrections[1].Original)
	assert.Equal(t, "simple", corrections[1].Replacement)
	assert.Equal(t, 7, corrections[1].Token.Col)
}

func TestCorrectTextSkipsAcronyms(t *testing.T) {
	c := newTestCorrector()
	out, corrections, unresolved := c.CorrectText("NASA launched a rocket.")
	assert.Equal(t, "NASA launched a rocket.", out)
	assert.Empty(t, corrections)
	assert.Empty(t, unresolved)
}

func TestCorrectTextAllCapsCheckedWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SkipAllCaps = false
	c := New(cfg, fakeOracle{
		known: map[string]bool{"the": true},
		cands: map[string][]Candidate{"ths": {{Word: "the", EditDistance: 1, Frequency: 1}}},
	})
	out, corrections, _ := c.CorrectText("THS")
	assert.Equal(t, "THE", out)
	assert.Len(t, corrections, 1)
}

func TestCorrectTextUnresolved(t *testing.T) {
	c := newTestCorrector()
	out, corrections, unresolved := c.CorrectText("the xyzzyx trick")
	assert.Equal(t, "the xyzzyx trick", out)
	assert.Empty(t, corrections)
	require.Len(t, unresolved, 1)
	assert.Equal(t, "xyzzyx", unresolved[0].Text)
	assert.Equal(t, 4, unresolved[0].Col)
}

func TestCorrectTextShortWordsSkipped(t *testing.T) {
	c := New(Config{MinWordLength: 4, SkipAllCaps: true}, testOracle())
	out, corrections, unresolved := c.CorrectText("Ths is the")
	assert.Equal(t, "Ths is the", out)
	assert.Empty(t, corrections)
	assert.Empty(t, unresolved)
}

func TestCorrectTextPreservesLayout(t *testing.T) {
	c := newTestCorrector()
	in := "  Ths,\tsmple...\n\n\twonderfull!  "
	out, corrections, _ := c.CorrectText(in)
	assert.Equal(t, "  The,\tsimple...\n\n\twonderful!  ", out)
	assert.Len(t, corrections, 3)
}

func TestCorrectTextCasing(t *testing.T) {
	c := newTestCorrector()
	out, _, _ := c.CorrectText("Wonderfull wonderfull")
	assert.Equal(t, "Wonderful wonderful", out)
}

func TestCorrectTextIdempotent(t *testing.T) {
	c := newTestCorrector()
	once, _, _ := c.CorrectText("Ths is smple.\nThe wonderfull trick\n")
	twice, corrections, _ := c.CorrectText(once)
	assert.Equal(t, once, twice)
	assert.Empty(t, corrections)
}

func TestCorrectTextOrderedCorrections(t *testing.T) {
	c := newTestCorrector()
	_, corrections, _ := c.CorrectText("smple ths\nths smple")
	require.Len(t, corrections, 4)
	for i := 1; i < len(corrections); i++ {
		prev, cur := corrections[i-1].Token, corrections[i].Token
		assert.True(t, prev.Line < cur.Line || (prev.Line == cur.Line && prev.Col < cur.Col))
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessFileApply(t *testing.T) {
	c := newTestCorrector()
	path := writeTemp(t, "in.txt", "Ths is smple.\n")

	res := c.ProcessFile(path, false)
	require.NoError(t, res.Err)
	assert.True(t, res.Scanned)
	assert.Len(t, res.Corrections, 2)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "The is simple.\n", string(data))

	// second pass finds nothing
	res = c.ProcessFile(path, false)
	require.NoError(t, res.Err)
	assert.Empty(t, res.Corrections)
}

func TestProcessFileDryRunDoesNotWrite(t *testing.T) {
	c := newTestCorrector()
	const original = "Ths is smple.\n"
	path := writeTemp(t, "in.txt", original)

	res := c.ProcessFile(path, true)
	require.NoError(t, res.Err)
	assert.Len(t, res.Corrections, 2)
	assert.Equal(t, "The is simple.\n", res.Corrected)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data), "dry run must leave the file byte-identical")
}

func TestProcessFileCleanFileNotRewritten(t *testing.T) {
	c := newTestCorrector()
	path := writeTemp(t, "in.txt", "the simple trick\n")
	before, err := os.Stat(path)
	require.NoError(t, err)

	res := c.ProcessFile(path, false)
	require.NoError(t, res.Err)
	assert.Empty(t, res.Corrections)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestProcessFileMissing(t *testing.T) {
	c := newTestCorrector()
	res := c.ProcessFile(filepath.Join(t.TempDir(), "nope.txt"), false)
	assert.Error(t, res.Err)
	assert.False(t, res.Scanned)
}

func TestProcessFileInvalidUTF8(t *testing.T) {
	c := newTestCorrector()
	path := filepath.Join(t.TempDir(), "bin.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x41}, 0o644))
	res := c.ProcessFile(path, false)
	assert.Error(t, res.Err)
	assert.False(t, res.Scanned)
}

func TestProcessDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("smple\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("ths\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.md"), []byte("ths\n"), 0o644))
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "c.txt"), []byte("wonderfull\n"), 0o644))

	c := newTestCorrector()

	results, err := c.ProcessDirectory(dir, true, true)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, filepath.Join(dir, "a.txt"), results[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.txt"), results[1].Path)
	assert.Equal(t, filepath.Join(sub, "c.txt"), results[2].Path)

	results, err = c.ProcessDirectory(dir, false, true)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestProcessDirectoryContinuesPastBadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.txt"), []byte{0xff, 0xfe}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.txt"), []byte("ths\n"), 0o644))

	c := newTestCorrector()
	results, err := c.ProcessDirectory(dir, false, true)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	require.NoError(t, results[1].Err)
	assert.Len(t, results[1].Corrections, 1)
}
