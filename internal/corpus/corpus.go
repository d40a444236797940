// Package corpus discovers the documents under a documentation root.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Document is one discovered file of the corpus.
type Document struct {
	// Path is the filesystem path of the document (Root joined with Rel).
	Path string
	// Rel is the slash-separated path relative to the corpus root.
	Rel string
	// Stem is the file name without its extension; cross references match on it.
	Stem string
	// Content is the raw text of the document.
	Content string
}

// Dir returns the directory relative links in the document resolve against.
func (d *Document) Dir() string {
	return filepath.Dir(d.Path)
}

// Source locates the corpus: every file under Root whose name ends in Extension.
type Source struct {
	Root      string
	Extension string
}

// Documents walks the root and loads every matching document, sorted by Rel.
// The corpus is rediscovered on every call. A root that does not exist (or is
// not a directory) yields an empty corpus.
func (s Source) Documents() ([]*Document, error) {
	paths, err := s.discover()
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		rel, err := filepath.Rel(s.Root, p)
		if err != nil {
			rel = p
		}
		docs = append(docs, &Document{
			Path:    p,
			Rel:     filepath.ToSlash(rel),
			Stem:    Stem(p),
			Content: string(data),
		})
	}
	return docs, nil
}

func (s Source) discover() ([]string, error) {
	info, err := os.Stat(s.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %q: %w", s.Root, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	var result []string
	err = filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
			return nil
		}
		if strings.HasSuffix(d.Name(), s.Extension) {
			result = append(result, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", s.Root, err)
	}

	sort.Strings(result)
	return result, nil
}

// Stem returns the base name of path without its final extension.
func Stem(path string) string {
	base := filepath.Base(filepath.FromSlash(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Stems returns the set of document stems.
func Stems(docs []*Document) map[string]bool {
	stems := make(map[string]bool, len(docs))
	for _, d := range docs {
		stems[d.Stem] = true
	}
	return stems
}
