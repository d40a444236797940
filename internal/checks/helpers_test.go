package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spboyer/doccheck/internal/corpus"
)

// makeCorpus writes files under a fresh docs root and returns its Source.
func makeCorpus(t *testing.T, files map[string]string) corpus.Source {
	t.Helper()
	root := filepath.Join(t.TempDir(), "docs")
	require.NoError(t, os.MkdirAll(root, 0o755))
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	return corpus.Source{Root: root, Extension: ".md"}
}

func runCheck(t *testing.T, c Checker, src corpus.Source) *CheckResult {
	t.Helper()
	r, err := c.Check(context.Background(), src)
	require.NoError(t, err)
	require.NotNil(t, r)
	require.Equal(t, c.Name(), r.Name)
	return r
}

func messages(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Message)
	}
	return out
}

// makeCorpusAt adds files to an existing corpus root.
func makeCorpusAt(t *testing.T, src corpus.Source, files map[string]string) corpus.Source {
	t.Helper()
	for rel, content := range files {
		abs := filepath.Join(src.Root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	return src
}
