package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/columnize"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// A nil slice makes cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin string
		args  []string
		want  string
	}{
		"arguments": {
			args: []string{"a", "bb", "ccc"},
			want: "a  bb  ccc\n",
		},
		"narrow": {
			args: []string{"--width", "5", "--spacing", "1", "aa", "bb", "cc", "d"},
			want: "aa cc\nbb d\n",
		},
		"short flags": {
			args: []string{"-w", "4", "-s", "2", "a", "b", "c"},
			want: "a  c\nb\n",
		},
		"stdin": {
			stdin: "x\n\ny\r\n",
			want:  "x  y\n",
		},
		"nothing to show": {
			want: "\n",
		},
		"sorted": {
			args: []string{"--sort", "c", "a", "b"},
			want: "a  b  c\n",
		},
		"pairs": {
			args: []string{"--pairs", "name=Alice", "age=30", "flag"},
			want: "name  Alice\nage   30\nflag  \n",
		},
		"overlong": {
			args: []string{"--width", "3", "abcdef"},
			want: "abc\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, _, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRootCommandPlan(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "", "--plan", "--width", "5", "--spacing", "1", "aa", "bb", "cc", "d")
	require.NoError(t, err)
	assert.Contains(t, out, "widths:")
	assert.Contains(t, out, "spacing: 1")
}

func TestRootCommandPairsPlan(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "", "--pairs", "--plan", "--width", "20", "key=value")
	require.NoError(t, err)
	assert.Contains(t, out, "spacing: 2")
}

func TestRootCommandConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "columnize.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spacing: 1\nwidth: 5\n"), 0o600))

	out, _, err := execute(t, "", "--config", path, "aa", "bb", "cc", "d")
	require.NoError(t, err)
	assert.Equal(t, "aa cc\nbb d\n", out)

	// Flags override the file.
	out, _, err = execute(t, "", "--config", path, "--width", "80", "aa", "bb", "cc", "d")
	require.NoError(t, err)
	assert.Equal(t, "aa bb cc d\n", out)
}

func TestRootCommandErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colour: red\n"), 0o600))

	tests := map[string]struct {
		args    []string
		wantErr error
	}{
		"negative spacing": {args: []string{"--spacing=-1", "a"}, wantErr: columnize.ErrInvalidArgument},
		"negative width":   {args: []string{"--width=-1", "a"}, wantErr: columnize.ErrInvalidArgument},
		"bad config":       {args: []string{"--config", bad, "a"}, wantErr: columnize.ErrInvalidArgument},
		"missing config":   {args: []string{"--config", filepath.Join(dir, "missing.yaml"), "a"}, wantErr: os.ErrNotExist},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, _, err := execute(t, "", tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out)
		})
	}
}

func TestRootCommandVerbose(t *testing.T) {
	t.Parallel()
	_, stderr, err := execute(t, "", "--verbose", "a", "b")
	require.NoError(t, err)
	assert.Contains(t, stderr, "planned layout")
	assert.Contains(t, stderr, `"columns":2`)
}

func TestRootCommandQuiet(t *testing.T) {
	t.Parallel()
	_, stderr, err := execute(t, "", "a", "b")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestTerminalWidth(t *testing.T) {
	orig := termGetSize
	defer func() { termGetSize = orig }()

	termGetSize = func(int) (int, int, error) { return 42, 10, nil }
	assert.Equal(t, 42, terminalWidth(os.Stdout))

	termGetSize = func(int) (int, int, error) { return 0, 0, errors.New("not a terminal") }
	assert.Equal(t, columnize.DefaultWidth, terminalWidth(os.Stdout))

	assert.Equal(t, columnize.DefaultWidth, terminalWidth(&bytes.Buffer{}))
}

func TestResolveOptionsConfigWithoutWidth(t *testing.T) {
	orig := termGetSize
	defer func() { termGetSize = orig }()
	termGetSize = func(int) (int, int, error) { return 200, 50, nil }

	path := filepath.Join(t.TempDir(), "columnize.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spacing: 1\n"), 0o600))

	tests := map[string]struct {
		args []string
		want columnize.Options
	}{
		"detects width":     {args: []string{"--config", path}, want: columnize.Options{Spacing: 1, Width: 200}},
		"width flag wins":   {args: []string{"--config", path, "--width", "30"}, want: columnize.Options{Spacing: 1, Width: 30}},
		"no config detects": {args: nil, want: columnize.Options{Spacing: 2, Width: 200}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var f flags
			cmd := &cobra.Command{}
			cmd.SetOut(os.Stdout)
			f.bind(cmd.Flags())
			require.NoError(t, cmd.ParseFlags(tt.args))

			got, err := resolveOptions(cmd, &f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadItems(t *testing.T) {
	t.Parallel()
	items, err := readItems(strings.NewReader("one\r\n\ntwo\nthree"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, items)
}

func TestSplitPairs(t *testing.T) {
	t.Parallel()
	got := splitPairs([]string{"a=1", "b=x=y", "c"})
	assert.Equal(t, []columnize.KeyValue{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "x=y"},
		{Key: "c", Value: ""},
	}, got)
}
