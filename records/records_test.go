package records

import (
	"regexp"
	"testing"

	"github.com/SLASH2NL/selectiter"
	"github.com/SLASH2NL/selectiter/cursors"
	"github.com/SLASH2NL/selectiter/tuple"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type row = tuple.T3[int, string, bool]

func TestLoadAllNoMatches(t *testing.T) {
	fs := afero.NewBasePathFs(afero.NewOsFs(), "./testdata/no_matches")

	sets, err := LoadAllFromFs[row](fs)
	require.NoError(t, err)
	require.Empty(t, sets)
}

func TestLoadAllInvalidFile(t *testing.T) {
	fs := afero.NewBasePathFs(afero.NewOsFs(), "./testdata/invalid-file")

	_, err := LoadAllFromFs[row](fs)
	t.Log(err)
	require.Error(t, err)
}

func TestLoadAllDuplicateDataset(t *testing.T) {
	fs := afero.NewBasePathFs(afero.NewOsFs(), "./testdata/duplicate")

	_, err := LoadAllFromFs[row](fs)
	t.Log(err)
	require.ErrorContains(t, err, "duplicate dataset")
}

func TestLoadAllValid(t *testing.T) {
	fs := afero.NewBasePathFs(afero.NewOsFs(), "./testdata/valid")

	sets, err := LoadAllFromFs[row](fs)
	require.NoError(t, err)

	require.Len(t, sets, 3)
	require.Contains(t, sets, "greetings")
	require.Contains(t, sets, "farewells")
	require.Empty(t, sets["empty"])

	greetings := sets["greetings"]
	require.Len(t, greetings, 3)
	require.Equal(t, tuple.New3(6, "hi1", false), greetings[1])

	it := selectiter.NewRandom(selectiter.MustFieldOf[row, string](), cursors.Begin(greetings))
	var labels []string
	for label := range it.Values(cursors.End(greetings)) {
		labels = append(labels, label)
	}
	require.Equal(t, []string{"hi0", "hi1", "hi2"}, labels)
}

func TestLoadAllCustomMatcher(t *testing.T) {
	fs := afero.NewBasePathFs(afero.NewOsFs(), "./testdata/valid")

	sets, err := LoadAll[row](fs, NewRegexMatcher(regexp.MustCompile(`^(greet)ings\.yaml$`)))
	require.NoError(t, err)
	require.Len(t, sets, 1)
	require.Len(t, sets["greet"], 3)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load[row](afero.NewMemMapFs(), "missing.yaml")
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	rows := []row{
		tuple.New3(5, "hi0", true),
		tuple.New3(6, "hi1", false),
	}

	err := Save(fs, "out.yaml", rows)
	require.NoError(t, err)

	raw, err := afero.ReadFile(fs, "out.yaml")
	require.NoError(t, err)
	require.Equal(t, "- [5, hi0, true]\n- [6, hi1, false]\n", string(raw))

	loaded, err := Load[row](fs, "out.yaml")
	require.NoError(t, err)
	require.Equal(t, rows, loaded)
}

func TestSaveWriteThrough(t *testing.T) {
	fs := afero.NewMemMapFs()
	mustWriteYaml(t, fs, "counts.yaml", `
- [1, a, true]
- [2, b, false]
`)

	rows, err := Load[row](fs, "counts.yaml")
	require.NoError(t, err)

	it := selectiter.NewRandom(selectiter.MustFieldAt[row, int](0), cursors.Begin(rows))
	for n := range it.Refs(cursors.End(rows)) {
		*n *= 10
	}

	require.NoError(t, Save(fs, "counts.yaml", rows))

	raw, err := afero.ReadFile(fs, "counts.yaml")
	require.NoError(t, err)
	require.Equal(t, "- [10, a, true]\n- [20, b, false]\n", string(raw))
}

func TestRegexMatcherWithoutGroup(t *testing.T) {
	m := NewRegexMatcher(regexp.MustCompile(`\.yaml$`))

	require.True(t, m.IsMatch("a.yaml"))
	_, err := m.Dataset("a.yaml")
	require.Error(t, err)
}

func mustWriteYaml(t *testing.T, fs afero.Fs, name string, content string) {
	f, err := fs.Create(name)
	require.NoError(t, err)

	_, err = f.Write([]byte(content))
	require.NoError(t, err)

	err = f.Close()
	require.NoError(t, err)
}
