package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spboyer/doccheck/internal/projectconfig"
	"github.com/spboyer/doccheck/internal/toolrunner"
	"github.com/spboyer/doccheck/internal/toolrunner/mocks"
)

func writeDocs(t *testing.T, files map[string]string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "docs_mkdocs")
	require.NoError(t, os.MkdirAll(root, 0o755))
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	return root
}

func runRoot(t *testing.T, tools toolrunner.Runner, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(tools)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_FlagDefaults(t *testing.T) {
	cmd := newRootCommand(mocks.NewMockRunner(gomock.NewController(t)))

	docsDir, err := cmd.Flags().GetString("docs-dir")
	require.NoError(t, err)
	assert.Equal(t, projectconfig.DefaultDocsDir, docsDir)

	timeout, err := cmd.Flags().GetDuration("timeout")
	require.NoError(t, err)
	assert.Equal(t, projectconfig.DefaultToolTimeout, timeout)

	noColor, err := cmd.Flags().GetBool("no-color")
	require.NoError(t, err)
	assert.False(t, noColor)

	debug, err := cmd.PersistentFlags().GetBool("debug")
	require.NoError(t, err)
	assert.False(t, debug)
}

func TestRootCommand_AllChecksPass(t *testing.T) {
	root := writeDocs(t, map[string]string{
		"index.md":       "# Home\n\nSee the [guide](guide/setup.md).\n",
		"guide/setup.md": "---\ntitle: Setup\n---\n# Setup\n\n```bash\nmake\n```\n\nBack [home](../index.md).\n",
	})

	runner := mocks.NewMockRunner(gomock.NewController(t))
	runner.EXPECT().Discover(gomock.Any()).DoAndReturn(func(name string) toolrunner.Availability {
		return toolrunner.Availability{Name: name, Path: "/usr/bin/" + name, Found: true}
	}).Times(2)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv toolrunner.Invocation) (*toolrunner.Result, error) {
			assert.Equal(t, 30*time.Second, inv.Timeout)
			return &toolrunner.Result{}, nil
		}).Times(2)

	out, err := runRoot(t, runner, "--docs-dir", root, "--timeout", "30s", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "🧪 Running Documentation Tests")
	assert.Contains(t, out, "Results: 9 passed, 0 failed")
	assert.NotContains(t, out, "\x1b[")
}

func TestRootCommand_FailingChecks(t *testing.T) {
	root := writeDocs(t, map[string]string{
		"index.md": "[missing](nowhere.md)\n",
	})

	runner := mocks.NewMockRunner(gomock.NewController(t))
	runner.EXPECT().Discover(gomock.Any()).DoAndReturn(func(name string) toolrunner.Availability {
		return toolrunner.Availability{Name: name}
	}).Times(2)

	out, err := runRoot(t, runner, "--docs-dir", root)
	require.Error(t, err)

	var failed *ChecksFailedError
	require.True(t, errors.As(err, &failed))
	// Link Validation, MkDocs Build and Cross References.
	assert.Equal(t, 3, failed.Failed)
	assert.Equal(t, ExitChecksFailed, exitCode(err))
	assert.Contains(t, out, "Broken link: index.md: nowhere.md")
	assert.Contains(t, out, "Broken reference: index.md: references nowhere.md")
	assert.Contains(t, out, "mkdocs not installed")
}

func TestRootCommand_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "positional argument", args: []string{"docs"}},
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "bad duration", args: []string{"--timeout", "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: the suite must not start.
			runner := mocks.NewMockRunner(gomock.NewController(t))

			_, err := runRoot(t, runner, tt.args...)
			require.Error(t, err)

			var failed *ChecksFailedError
			assert.False(t, errors.As(err, &failed))
		})
	}
}

func TestRootCommand_Version(t *testing.T) {
	out, err := runRoot(t, mocks.NewMockRunner(gomock.NewController(t)), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "doccheck version dev")
}
