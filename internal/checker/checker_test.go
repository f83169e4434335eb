package checker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidelint/guidelint/internal/cache"
	"github.com/guidelint/guidelint/internal/pattern"
	"github.com/guidelint/guidelint/internal/report"
)

func mustID(t *testing.T, token string) pattern.ID {
	t.Helper()
	id, ok := pattern.ParseID(token)
	require.True(t, ok)
	return id
}

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func countKind(rep *report.Report, kind report.Kind) int {
	n := 0
	for _, v := range rep.Violations {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

func TestCheckEmptyCorpus(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"readme.md": "# Nothing patterned here\n\nJust prose.\n",
	})

	result, err := New(Options{}, nil).Check(root)
	require.NoError(t, err)

	assert.Empty(t, result.Report.Violations)
	assert.False(t, result.Report.Failed(false))
	assert.False(t, result.Report.Failed(true))
	assert.Equal(t, 0, result.Table.Len())
}

func TestCheckMissingRootIsFatal(t *testing.T) {
	_, err := New(Options{}, nil).Check(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestCheckCleanCorpus(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"cli.md": "## CLI-1: One\n**Strength**: MUST\n\n" +
			"## CLI-2: Two\n**Strength**: SHOULD\n\n**See also**: CLI-1\n",
		"cargo.md": "## CG-P-1: Cargo one\n**Strength**: CONSIDER\n\n**See also**: CLI-2\n",
	})

	result, err := New(Options{}, nil).Check(root)
	require.NoError(t, err)

	assert.Empty(t, result.Report.Violations)
	assert.Equal(t, 3, result.Table.Len())
	assert.Equal(t, 2, result.Report.FilesSeen)
}

// TestCheckDuplicateIDs verifies N occurrences yield N-1 violations and
// the first occurrence in file order wins
func TestCheckDuplicateIDs(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"a.md": "## CLI-1: First\n**Strength**: MUST\n",
		"b.md": "## CLI-1: Second\n**Strength**: MUST\n",
		"c.md": "## CLI-01: Third\n**Strength**: MUST\n",
	})

	result, err := New(Options{}, nil).Check(root)
	require.NoError(t, err)

	assert.Equal(t, 2, countKind(result.Report, report.KindDuplicateID))
	assert.Equal(t, 1, result.Table.Len())

	p, ok := result.Table.Lookup(mustID(t, "CLI-1"))
	require.True(t, ok)
	assert.Equal(t, "a.md", p.File)

	for _, v := range result.Report.Violations {
		if v.Kind == report.KindDuplicateID {
			assert.Contains(t, v.Message, "a.md:1")
		}
	}
}

func TestCheckDanglingReference(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"cli.md": "## CLI-9: Nine\n**Strength**: MUST\n\n" +
			"## CLI-10: Ten\n**Strength**: MUST\n\n**See also**: CLI-09, CLI-999\n",
	})

	result, err := New(Options{}, nil).Check(root)
	require.NoError(t, err)

	require.Equal(t, 1, countKind(result.Report, report.KindDanglingReference))
	for _, v := range result.Report.Violations {
		if v.Kind == report.KindDanglingReference {
			assert.Contains(t, v.Message, "CLI-999")
		}
	}
	assert.True(t, result.Report.Failed(false))
}

func TestCheckNumberingGap(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"cargo.md": "## CG-P-1: A\n**Strength**: MUST\n\n" +
			"## CG-P-2: B\n**Strength**: MUST\n\n" +
			"## CG-P-3: C\n**Strength**: MUST\n\n" +
			"## CG-P-5: E\n**Strength**: MUST\n",
	})

	result, err := New(Options{}, nil).Check(root)
	require.NoError(t, err)

	require.Equal(t, 1, countKind(result.Report, report.KindNumberingGap))
	for _, v := range result.Report.Violations {
		if v.Kind == report.KindNumberingGap {
			assert.Equal(t, report.Warning, v.Severity)
			assert.Contains(t, v.Message, "missing number 4")
		}
	}

	// Gaps are warnings: exit clean unless strict
	assert.False(t, result.Report.Failed(false))
	assert.True(t, result.Report.Failed(true))
}

func TestCheckFencedExampleIgnored(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"cli.md": "## CLI-5: Foo\n**Strength**: MUST\n\n" +
			"```markdown\n## CLI-99: Bar\n**Strength**: MUST\n```\n",
	})

	result, err := New(Options{}, nil).Check(root)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Table.Len())
	assert.Empty(t, result.Report.Violations)
}

// TestCheckIdempotent verifies re-running on an unchanged corpus yields
// an identical report
func TestCheckIdempotent(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"a.md": "## CLI-1: One\n**Strength**: MUST\n\n**See also**: CLI-7\n",
		"b.md": "## CLI-1: Dup\n**Strength**: BOGUS\n\n## CLI-3: Gap\n**Strength**: MUST\n",
	})

	first, err := New(Options{}, nil).Check(root)
	require.NoError(t, err)
	second, err := New(Options{}, nil).Check(root)
	require.NoError(t, err)

	assert.Equal(t, first.Report.Violations, second.Report.Violations)
}

// TestCheckDeletedFileBecomesDangling simulates the corpus losing a file
// between two runs
func TestCheckDeletedFileBecomesDangling(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"a.md": "## CLI-1: One\n**Strength**: MUST\n\n**See also**: CLI-2\n",
		"b.md": "## CLI-2: Two\n**Strength**: MUST\n",
	})

	result, err := New(Options{}, nil).Check(root)
	require.NoError(t, err)
	assert.Equal(t, 0, countKind(result.Report, report.KindDanglingReference))

	require.NoError(t, os.Remove(filepath.Join(root, "b.md")))

	result, err = New(Options{}, nil).Check(root)
	require.NoError(t, err)
	assert.Equal(t, 1, countKind(result.Report, report.KindDanglingReference))
}

func TestCheckWithCacheMatchesUncached(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"a.md": "## CLI-1: One\n**Strength**: MUST\n\n**See also**: CLI-999\n",
		"b.md": "## CLI-3: Gap after two\n**Strength**: MUST\n",
	})

	ec := cache.New()
	cached := New(Options{}, nil).WithCache(ec)

	first, err := cached.Check(root)
	require.NoError(t, err)
	assert.Equal(t, 2, ec.Len())

	// Second run hits the cache for every file
	second, err := cached.Check(root)
	require.NoError(t, err)
	assert.Equal(t, first.Report.Violations, second.Report.Violations)

	plain, err := New(Options{}, nil).Check(root)
	require.NoError(t, err)
	assert.Equal(t, plain.Report.Violations, second.Report.Violations)
}

func TestCheckViolationOrdering(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"b.md": "## CLI-2: Later file\n",
		"a.md": "## CLI-1: Earlier file\n",
	})

	result, err := New(Options{}, nil).Check(root)
	require.NoError(t, err)

	// One missing-strength per file, sorted by file regardless of
	// extraction order
	require.Len(t, result.Report.Violations, 2)
	assert.Equal(t, "a.md", result.Report.Violations[0].File)
	assert.Equal(t, "b.md", result.Report.Violations[1].File)
}
