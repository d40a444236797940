// Package projectconfig provides the run options for doccheck and the loader
// for the MkDocs project configuration the site builder consumes.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for run options. These are the single source of truth —
// New() references them and no other code should duplicate them.
const (
	DefaultDocsDir     = "docs_mkdocs"
	DefaultExtension   = ".md"
	DefaultLinter      = "markdownlint"
	DefaultBuilder     = "mkdocs"
	DefaultToolTimeout = 5 * time.Minute

	// DefaultMkDocsDocsDir is what mkdocs assumes when docs_dir is unset.
	DefaultMkDocsDocsDir = "docs"
)

// maxConfigSearchDepth bounds the upward search for mkdocs.yml.
const maxConfigSearchDepth = 10

var mkdocsConfigNames = []string{"mkdocs.yml", "mkdocs.yaml"}

// Options configures a documentation check run.
type Options struct {
	// DocsDir is the root of the document corpus.
	DocsDir string
	// Extension selects corpus members by file suffix.
	Extension string
	// Linter is the executable name of the external Markdown linter.
	Linter string
	// Builder is the executable name of the external site builder.
	Builder string
	// ToolTimeout bounds each external tool invocation. Zero disables it.
	ToolTimeout time.Duration
}

// New returns Options with all hard-coded defaults populated.
func New() *Options {
	return &Options{
		DocsDir:     DefaultDocsDir,
		Extension:   DefaultExtension,
		Linter:      DefaultLinter,
		Builder:     DefaultBuilder,
		ToolTimeout: DefaultToolTimeout,
	}
}

// MkDocsConfig is the subset of mkdocs.yml that doccheck inspects.
type MkDocsConfig struct {
	SiteName string `yaml:"site_name"`
	DocsDir  string `yaml:"docs_dir,omitempty"`

	// Path is the file the config was read from.
	Path string `yaml:"-"`
}

// Dir returns the project directory, where the builder must run.
func (c *MkDocsConfig) Dir() string {
	return filepath.Dir(c.Path)
}

// EffectiveDocsDir returns docs_dir as written, or the mkdocs default.
func (c *MkDocsConfig) EffectiveDocsDir() string {
	if c.DocsDir == "" {
		return DefaultMkDocsDocsDir
	}
	return c.DocsDir
}

// ResolvedDocsDir returns docs_dir resolved against the project directory.
func (c *MkDocsConfig) ResolvedDocsDir() string {
	d := filepath.FromSlash(c.EffectiveDocsDir())
	if filepath.IsAbs(d) {
		return filepath.Clean(d)
	}
	return filepath.Join(c.Dir(), d)
}

// ServesDocsDir reports whether docs_dir resolves to root.
func (c *MkDocsConfig) ServesDocsDir(root string) (bool, error) {
	want, err := filepath.Abs(root)
	if err != nil {
		return false, fmt.Errorf("resolving path %q: %w", root, err)
	}
	got, err := filepath.Abs(c.ResolvedDocsDir())
	if err != nil {
		return false, fmt.Errorf("resolving path %q: %w", c.ResolvedDocsDir(), err)
	}
	return got == want, nil
}

// FindMkDocsConfig walks up from startDir (max 10 levels) and returns the
// path of the first mkdocs.yml or mkdocs.yaml found. Returns os.ErrNotExist
// if there is none. Real I/O errors (e.g. permission denied) are returned.
func FindMkDocsConfig(startDir string) (string, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", startDir, err)
	}

	for i := 0; i < maxConfigSearchDepth; i++ {
		for _, name := range mkdocsConfigNames {
			p := filepath.Join(dir, name)
			info, err := os.Stat(p)
			if err == nil && !info.IsDir() {
				return p, nil
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("reading %q: %w", p, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadMkDocsConfig reads and parses the mkdocs config at path. Keys doccheck
// does not inspect are ignored, including ones carrying custom YAML tags
// such as !!python/name.
func LoadMkDocsConfig(path string) (*MkDocsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filepath.Base(path), err)
	}

	var cfg MkDocsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	cfg.Path = path
	return &cfg, nil
}
