package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	return root
}

func TestDocuments_Recursive(t *testing.T) {
	root := writeTree(t, map[string]string{
		"index.md":           "# Home",
		"guide/setup.md":     "# Setup",
		"guide/deep/faq.md":  "# FAQ",
		"guide/notes.txt":    "not markdown",
		"assets/diagram.png": "png",
	})

	docs, err := Source{Root: root, Extension: ".md"}.Documents()
	require.NoError(t, err)
	require.Len(t, docs, 3)

	var rels []string
	for _, d := range docs {
		rels = append(rels, d.Rel)
	}
	assert.Equal(t, []string{"guide/deep/faq.md", "guide/setup.md", "index.md"}, rels)

	assert.Equal(t, "faq", docs[0].Stem)
	assert.Equal(t, "# FAQ", docs[0].Content)
	assert.Equal(t, filepath.Join(root, "guide", "deep"), docs[0].Dir())
}

func TestDocuments_ExtensionIsCaseSensitive(t *testing.T) {
	root := writeTree(t, map[string]string{
		"upper.MD": "x",
		"lower.md": "y",
	})

	docs, err := Source{Root: root, Extension: ".md"}.Documents()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "lower.md", docs[0].Rel)
}

func TestDocuments_SkipsDirectoriesMatchingExtension(t *testing.T) {
	root := writeTree(t, map[string]string{
		"odd.md/inner.md": "inside",
	})

	docs, err := Source{Root: root, Extension: ".md"}.Documents()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "odd.md/inner.md", docs[0].Rel)
}

func TestDocuments_MissingRootIsEmpty(t *testing.T) {
	docs, err := Source{Root: filepath.Join(t.TempDir(), "nope"), Extension: ".md"}.Documents()
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocuments_RootIsFile(t *testing.T) {
	root := writeTree(t, map[string]string{"single.md": "x"})

	docs, err := Source{Root: filepath.Join(root, "single.md"), Extension: ".md"}.Documents()
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocuments_Rediscovers(t *testing.T) {
	root := writeTree(t, map[string]string{"a.md": "a"})
	src := Source{Root: root, Extension: ".md"}

	docs, err := src.Documents()
	require.NoError(t, err)
	require.Len(t, docs, 1)

	require.NoError(t, os.WriteFile(filepath.Join(root, "b.md"), []byte("b"), 0o644))

	docs, err = src.Documents()
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"faq.md", "faq"},
		{"guide/setup.md", "setup"},
		{"../other/install.md", "install"},
		{"release.notes.md", "release.notes"},
		{"README", "README"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.path))
		})
	}
}

func TestStems(t *testing.T) {
	docs := []*Document{{Stem: "index"}, {Stem: "setup"}, {Stem: "index"}}
	assert.Equal(t, map[string]bool{"index": true, "setup": true}, Stems(docs))
}
